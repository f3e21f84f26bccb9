// internal/handlers/word_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"learn-english-api/internal/handlers"
	"learn-english-api/internal/middleware"
	"learn-english-api/internal/model"
	"learn-english-api/internal/service/mocks"
)

const testAccount = "alice@example.com"

// newWordRouter は本番と同じミドルウェア構成で単語ルートを組み立てます。
func newWordRouter(svc *mocks.WordService) http.Handler {
	h := handlers.NewWordHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.AccountContext)
		r.Get("/api/english-list", h.GetWords)
		r.Get("/api/important-english-list", h.GetImportantWords)
		r.Get("/api/english", h.GetWord)
		r.Get("/api/english-important", h.GetImportantWord)
		r.Post("/api/english", h.PostWord)
		r.Put("/api/english", h.PutWord)
		r.Delete("/api/english", h.DeleteWord)
		r.Put("/api/important", h.ToggleImportant)
	})
	return r
}

func accountHeader() map[string]string {
	return map[string]string{middleware.AccountHeader: testAccount}
}

func TestWordHandler_GetWords(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		setupMock      func(svc *mocks.WordService)
		expectedStatus int
		expectedMsg    any
	}{
		{
			name:    "正常系: 単語一覧を返す",
			headers: accountHeader(),
			setupMock: func(svc *mocks.WordService) {
				svc.On("GetWords", mock.Anything, testAccount).
					Return([]*model.Word{{English: "apple", Chinese: "蘋果"}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: アカウントヘッダーなしは400",
			headers:        nil,
			setupMock:      func(svc *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "missing account header",
		},
		{
			name:    "異常系: ストア障害は500の汎用メッセージ",
			headers: accountHeader(),
			setupMock: func(svc *mocks.WordService) {
				svc.On("GetWords", mock.Anything, testAccount).
					Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewWordService(t)
			tt.setupMock(svc)
			router := newWordRouter(svc)

			rec := sendRequest(t, router, httpRequestDetails{
				Method:  http.MethodGet,
				Path:    "/api/english-list",
				Headers: tt.headers,
			})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeEnvelope(t, rec.Body.Bytes())
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, model.StatusSuccess, resp.Status)
			} else {
				assert.Equal(t, model.StatusError, resp.Status)
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestWordHandler_GetWord(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(svc *mocks.WordService)
		expectedStatus int
		expectedMsg    any
	}{
		{
			name: "正常系: 単語を1件返す",
			path: "/api/english?english=apple",
			setupMock: func(svc *mocks.WordService) {
				svc.On("GetWord", mock.Anything, testAccount, "apple").
					Return(&model.Word{English: "apple", Chinese: "蘋果"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 空クエリは400",
			path: "/api/english?english=",
			setupMock: func(svc *mocks.WordService) {
				svc.On("GetWord", mock.Anything, testAccount, "").
					Return(nil, model.NewAppError("EMPTY_SEARCH_WORD", "please enter a word to search", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "please enter a word to search",
		},
		{
			name: "異常系: 存在しない単語は400",
			path: "/api/english?english=missing",
			setupMock: func(svc *mocks.WordService) {
				svc.On("GetWord", mock.Anything, testAccount, "missing").
					Return(nil, model.NewAppError("WORD_NOT_FOUND", "word not found", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "word not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewWordService(t)
			tt.setupMock(svc)
			router := newWordRouter(svc)

			rec := sendRequest(t, router, httpRequestDetails{
				Method:  http.MethodGet,
				Path:    tt.path,
				Headers: accountHeader(),
			})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeEnvelope(t, rec.Body.Bytes())
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, model.StatusSuccess, resp.Status)
			} else {
				assert.Equal(t, model.StatusError, resp.Status)
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestWordHandler_PostWord(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(svc *mocks.WordService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "正常系: 単語を作成",
			requestBody: model.CreateWordRequest{English: "apple", Chinese: "蘋果"},
			setupMock: func(svc *mocks.WordService) {
				svc.On("CreateWord", mock.Anything, testAccount, mock.AnythingOfType("*model.CreateWordRequest")).
					Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "word created successfully",
		},
		{
			name:           "異常系: 空フィールドは400",
			requestBody:    model.CreateWordRequest{English: "", Chinese: ""},
			setupMock:      func(svc *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "input fields must not be empty",
		},
		{
			name:           "異常系: 英語形式エラーは400",
			requestBody:    model.CreateWordRequest{English: "apple1", Chinese: "蘋果"},
			setupMock:      func(svc *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "please enter valid english format",
		},
		{
			name:           "異常系: 中国語形式エラーは400",
			requestBody:    model.CreateWordRequest{English: "apple", Chinese: "apple"},
			setupMock:      func(svc *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "please enter valid chinese format (words may be separated by spaces or 、)",
		},
		{
			name:           "異常系: JSON構文エラーは400",
			requestBody:    `{"english": "apple"`,
			setupMock:      func(svc *mocks.WordService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request body",
		},
		{
			name:        "異常系: 重複は400",
			requestBody: model.CreateWordRequest{English: "apple", Chinese: "蘋果"},
			setupMock: func(svc *mocks.WordService) {
				svc.On("CreateWord", mock.Anything, testAccount, mock.AnythingOfType("*model.CreateWordRequest")).
					Return(model.NewAppError("WORD_EXISTS", "word already exists", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "word already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewWordService(t)
			tt.setupMock(svc)
			router := newWordRouter(svc)

			rec := sendRequest(t, router, httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/english",
				Body:    tt.requestBody,
				Headers: accountHeader(),
			})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeEnvelope(t, rec.Body.Bytes())
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}

func TestWordHandler_PutWord(t *testing.T) {
	svc := mocks.NewWordService(t)
	svc.On("UpdateWord", mock.Anything, testAccount, mock.AnythingOfType("*model.UpdateWordRequest")).
		Return(nil).Once()
	router := newWordRouter(svc)

	rec := sendRequest(t, router, httpRequestDetails{
		Method:  http.MethodPut,
		Path:    "/api/english",
		Body:    model.UpdateWordRequest{English: "apple", Chinese: "水果"},
		Headers: accountHeader(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, model.StatusSuccess, resp.Status)
	assert.Equal(t, "word updated successfully", resp.Message)
}

func TestWordHandler_DeleteWord(t *testing.T) {
	svc := mocks.NewWordService(t)
	// 存在しないキーでも削除は成功として返る (冪等)
	svc.On("DeleteWord", mock.Anything, testAccount, "missing").Return(nil).Once()
	router := newWordRouter(svc)

	rec := sendRequest(t, router, httpRequestDetails{
		Method:  http.MethodDelete,
		Path:    "/api/english",
		Body:    model.WordKeyRequest{English: "missing"},
		Headers: accountHeader(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, model.StatusSuccess, resp.Status)
	assert.Equal(t, "word deleted successfully", resp.Message)
}

func TestWordHandler_ToggleImportant(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(svc *mocks.WordService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "正常系: 収蔵に追加",
			setupMock: func(svc *mocks.WordService) {
				svc.On("ToggleImportant", mock.Anything, testAccount, "apple").Return(true, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "added to favorites",
		},
		{
			name: "正常系: 収蔵から解除",
			setupMock: func(svc *mocks.WordService) {
				svc.On("ToggleImportant", mock.Anything, testAccount, "apple").Return(false, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "removed from favorites",
		},
		{
			name: "異常系: 存在しない単語は400",
			setupMock: func(svc *mocks.WordService) {
				svc.On("ToggleImportant", mock.Anything, testAccount, "apple").
					Return(false, model.NewAppError("WORD_NOT_FOUND", "word not found", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "word not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewWordService(t)
			tt.setupMock(svc)
			router := newWordRouter(svc)

			rec := sendRequest(t, router, httpRequestDetails{
				Method:  http.MethodPut,
				Path:    "/api/important",
				Body:    model.WordKeyRequest{English: "apple"},
				Headers: accountHeader(),
			})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeEnvelope(t, rec.Body.Bytes())
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}
