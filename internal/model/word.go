// internal/model/word.go
package model

// Word は1つの英単語とその中国語訳を表します。
// Firestore上では users/{account}/vocab/{english} のドキュメントに対応し、
// 英単語のつづりがそのままドキュメントIDになります。
type Word struct {
	English   string `firestore:"english" json:"english"`
	Chinese   string `firestore:"chinese" json:"chinese"`
	Important bool   `firestore:"important,omitempty" json:"important,omitempty"`
}

// 単語作成リクエストDTO
type CreateWordRequest struct {
	English string `json:"english" validate:"required,english_word"`
	Chinese string `json:"chinese" validate:"required,chinese_text"`
}

// 単語更新リクエストDTO。chinese の上書きのみ行う
type UpdateWordRequest struct {
	English string `json:"english"`
	Chinese string `json:"chinese"`
}

// 削除・収蔵トグルで共通のキー指定DTO
type WordKeyRequest struct {
	English string `json:"english"`
}
