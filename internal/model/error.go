// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrMismatch       = errors.New("credential mismatch")
	ErrInternalServer = errors.New("internal server error")
)

// AppError はクライアントに返して良いメッセージと、
// ステータスコード判定用のラップ済みエラーを持つアプリケーションエラーです。
type AppError struct {
	Code    string // ログ・デバッグ用の識別子 (例: "WORD_NOT_FOUND")
	Message string // クライアントにそのまま返すメッセージ
	Err     error  // ステータスコード判定用のsentinelエラー
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
