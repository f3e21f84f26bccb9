// internal/middleware/account.go
package middleware

import (
	"context"
	"net/http"

	"learn-english-api/internal/model"
	"learn-english-api/internal/webutil"
)

// AccountHeader はリクエスト元が自分のアカウントを名乗るためのヘッダー名です。
// サーバー側セッションは存在せず、各リクエストはこの値をそのまま信用します。
const AccountHeader = "X-User-Account"

// AccountContext は X-User-Account ヘッダーの値をコンテキストに載せるミドルウェアです。
// Firestoreのドキュメントパスに空のセグメントは使えないため、空の場合は400を返します。
func AccountContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		account := r.Header.Get(AccountHeader)
		if account == "" {
			logger.Warn("Account header missing", "header", AccountHeader)
			appErr := model.NewAppError("MISSING_ACCOUNT", "missing account header", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.AccountKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccountFromContext はコンテキストからアカウントIDを取り出します。
func GetAccountFromContext(ctx context.Context) (string, error) {
	value, ok := ctx.Value(model.AccountKey).(string)
	if !ok || value == "" {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "server error", model.ErrInternalServer)
	}
	return value, nil
}
