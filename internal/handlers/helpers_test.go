// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"learn-english-api/internal/model"
)

// testLogger はテスト中のログを捨てるためのロガーです。
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}

// sendRequest はテスト用ルーターにリクエストを流し、レスポンスレコーダーを返します。
func sendRequest(t *testing.T, router http.Handler, details httpRequestDetails) *httptest.ResponseRecorder {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req := httptest.NewRequest(details.Method, details.Path, reqBodyReader)
	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope はレスポンスボディを共通エンベロープとして読み取ります。
func decodeEnvelope(t *testing.T, body []byte) model.APIResponse {
	t.Helper()
	var resp model.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp), "response body is not a valid envelope: %s", string(body))
	return resp
}
