// internal/model/member.go
package model

// Member はアカウントの基本情報。Firestoreの users/{email} ドキュメントに対応し、
// メールアドレスがドキュメントIDになります。
type Member struct {
	Email string `firestore:"email" json:"email"`
	Name  string `firestore:"name" json:"name"`
}

// 新規登録リクエストDTO
type SignupRequest struct {
	Email string `json:"email" validate:"required,member_email"`
	Name  string `json:"name" validate:"required,account_name"`
}

// ログインリクエストDTO。パスワードは存在せず、email+name の照合のみ
type LoginRequest struct {
	Email string `json:"email" validate:"required,member_email"`
	Name  string `json:"name" validate:"required,account_name"`
}

type ContextKey string

const (
	// AccountKey はリクエストコンテキストに格納されるアカウントIDのキー
	AccountKey ContextKey = "account"
)
