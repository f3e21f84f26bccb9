// internal/middleware/account_test.go
package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learn-english-api/internal/middleware"
	"learn-english-api/internal/model"
)

func TestAccountContext(t *testing.T) {
	var gotAccount string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := middleware.GetAccountFromContext(r.Context())
		require.NoError(t, err)
		gotAccount = account
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.AccountContext(next)

	t.Run("正常系: ヘッダーの値がコンテキストに入る", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/english-list", nil)
		req.Header.Set(middleware.AccountHeader, "alice@example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice@example.com", gotAccount)
	})

	t.Run("異常系: ヘッダーなしは400でハンドラに到達しない", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/english-list", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp model.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.StatusError, resp.Status)
		assert.Equal(t, "missing account header", resp.Message)
	})
}

func TestGetAccountFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := middleware.GetAccountFromContext(req.Context())
	require.Error(t, err)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, err, model.ErrInternalServer)
}
