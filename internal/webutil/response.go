// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"learn-english-api/internal/model"
)

// HandleError はエラーを解釈し、共通エンベロープでエラーレスポンスを返します。
// アプリケーションのエラーハンドリングはここに集約されます。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	var message string
	if errors.As(err, &appErr) {
		// AppError はクライアントに返して良いメッセージを持っている
		message = appErr.Message
	} else {
		// 予期せぬエラー。詳細はログのみに出し、クライアントには汎用メッセージを返す
		logger.Error("Unhandled error", slog.Any("error", err))
		message = "server error"
	}

	RespondWithJSON(w, statusCode, model.APIResponse{
		Status:  model.StatusError,
		Message: message,
	}, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードに対応付けます。
// このAPIの契約では、クライアント起因のエラーはすべて400にまとめられます。
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrConflict),
		errors.Is(err, model.ErrMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondSuccess は成功エンベロープ {status:"success", message:payload} を200で返します。
func RespondSuccess(w http.ResponseWriter, payload any, logger *slog.Logger) {
	RespondWithJSON(w, http.StatusOK, model.APIResponse{
		Status:  model.StatusSuccess,
		Message: payload,
	}, logger)
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload any, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":"error","message":"server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
