// internal/handlers/word_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"learn-english-api/internal/middleware"
	"learn-english-api/internal/model"
	"learn-english-api/internal/service"
	"learn-english-api/internal/webutil"
)

// createWordMessages はバリデーションタグごとのクライアント向けメッセージです。
var createWordMessages = map[string]string{
	"required":     "input fields must not be empty",
	"english_word": "please enter valid english format",
	"chinese_text": "please enter valid chinese format (words may be separated by spaces or 、)",
}

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// validationAppError はvalidatorのエラーをクライアント向けの AppError に変換します。
// 最初に失敗したタグのメッセージを代表として返します。
func validationAppError(err error, messages map[string]string) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	first := validationErrors[0]
	msg, ok := messages[first.Tag()]
	if !ok {
		msg = "invalid input"
	}
	return model.NewAppError("VALIDATION_ERROR", msg, model.ErrInvalidInput)
}

// GetWords はアカウントの全単語一覧を返すハンドラ
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	words, err := h.service.GetWords(r.Context(), account)
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words listed successfully", slog.Int("count", len(words)))
	webutil.RespondSuccess(w, words, logger)
}

// GetImportantWords は収蔵済みの単語一覧を返すハンドラ
func (h *WordHandler) GetImportantWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetImportantWords"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	words, err := h.service.GetImportantWords(r.Context(), account)
	if err != nil {
		logger.Error("Error listing important words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Important words listed successfully", slog.Int("count", len(words)))
	webutil.RespondSuccess(w, words, logger)
}

// GetWord はクエリパラメータで指定された単語を1件返すハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWord"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	english := r.URL.Query().Get("english")
	word, err := h.service.GetWord(r.Context(), account, english)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found", slog.String("english", english))
		} else {
			logger.Warn("Error getting word in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word retrieved successfully", slog.String("english", english))
	webutil.RespondSuccess(w, word, logger)
}

// GetImportantWord は収蔵済みの単語を1件検索して返すハンドラ
func (h *WordHandler) GetImportantWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetImportantWord"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	english := r.URL.Query().Get("english")
	word, err := h.service.GetImportantWord(r.Context(), account, english)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Important word not found", slog.String("english", english))
		} else {
			logger.Warn("Error getting important word in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Important word retrieved successfully", slog.String("english", english))
	webutil.RespondSuccess(w, word, logger)
}

// PostWord は新しい単語を登録するハンドラ
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWord"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	var req model.CreateWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.Any("error", err))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "invalid request body", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, validationAppError(err, createWordMessages))
		return
	}

	if err := h.service.CreateWord(r.Context(), account, &req); err != nil {
		logger.Warn("Error creating word in service", slog.Any("error", err), slog.String("english", req.English))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word created successfully", slog.String("english", req.English))
	webutil.RespondSuccess(w, "word created successfully", logger)
}

// PutWord は既存単語の chinese を上書きするハンドラ。
// 元の仕様どおり存在チェックは行わず、無い単語への更新は成功として扱います。
func (h *WordHandler) PutWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutWord"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	var req model.UpdateWordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.Any("error", err))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "invalid request body", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.UpdateWord(r.Context(), account, &req); err != nil {
		logger.Warn("Error updating word in service", slog.Any("error", err), slog.String("english", req.English))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word updated successfully", slog.String("english", req.English))
	webutil.RespondSuccess(w, "word updated successfully", logger)
}

// DeleteWord は単語を削除するハンドラ。存在しない単語の削除も成功になります。
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteWord"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	var req model.WordKeyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.Any("error", err))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "invalid request body", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteWord(r.Context(), account, req.English); err != nil {
		logger.Warn("Error deleting word in service", slog.Any("error", err), slog.String("english", req.English))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully", slog.String("english", req.English))
	webutil.RespondSuccess(w, "word deleted successfully", logger)
}

// ToggleImportant は単語の収蔵フラグを反転するハンドラ
func (h *WordHandler) ToggleImportant(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleImportant"))

	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		logger.Error("Account missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("account", account))

	var req model.WordKeyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.Any("error", err))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "invalid request body", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	nowImportant, err := h.service.ToggleImportant(r.Context(), account, req.English)
	if err != nil {
		logger.Warn("Error toggling important flag in service", slog.Any("error", err), slog.String("english", req.English))
		webutil.HandleError(w, logger, err)
		return
	}

	message := "removed from favorites"
	if nowImportant {
		message = "added to favorites"
	}
	logger.Info("Important flag toggled", slog.String("english", req.English), slog.Bool("important", nowImportant))
	webutil.RespondSuccess(w, message, logger)
}
