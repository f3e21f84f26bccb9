// internal/handlers/member_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"learn-english-api/internal/model"
	"learn-english-api/internal/service"
	"learn-english-api/internal/webutil"
)

var signupMessages = map[string]string{
	"required":     "input fields must not be empty",
	"account_name": "name must not contain spaces or special characters",
	"member_email": "please enter a valid email format",
}

// ログインでは「どちらが間違っているか」を返さない。
// 形式エラーも照合失敗と同じメッセージにまとめます。
var loginMessages = map[string]string{
	"required":     "input fields must not be empty",
	"account_name": "email or name incorrect",
	"member_email": "email or name incorrect",
}

type MemberHandler struct {
	service service.MemberService
	logger  *slog.Logger
}

func NewMemberHandler(s service.MemberService, logger *slog.Logger) *MemberHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemberHandler{
		service: s,
		logger:  logger,
	}
}

// Signup は新規アカウントを作成するハンドラ
func (h *MemberHandler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Signup"))

	var req model.SignupRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.Any("error", err))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "invalid request body", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, validationAppError(err, signupMessages))
		return
	}

	if err := h.service.Signup(r.Context(), &req); err != nil {
		logger.Warn("Error signing up in service", slog.Any("error", err), slog.String("email", req.Email))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Member signed up successfully", slog.String("email", req.Email))
	webutil.RespondSuccess(w, "signup successful", logger)
}

// Login は email+name の照合を行うハンドラ。トークン等は発行しません。
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.Any("error", err))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "invalid request body", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, validationAppError(err, loginMessages))
		return
	}

	if err := h.service.Login(r.Context(), &req); err != nil {
		logger.Warn("Login failed in service", slog.Any("error", err), slog.String("email", req.Email))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Member logged in successfully", slog.String("email", req.Email))
	webutil.RespondSuccess(w, "login successful", logger)
}
