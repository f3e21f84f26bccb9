// internal/model/response.go
package model

// レスポンスのstatusフィールドに入る値
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse は全エンドポイント共通のレスポンスエンベロープです。
// 成功時は message にデータまたは確認メッセージ、
// 失敗時は message に理由の文字列が入ります。
type APIResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}
