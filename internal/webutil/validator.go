// internal/webutil/validator.go
package webutil

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 入力検証に使う正規表現。元のフロントエンド仕様と揃えてあります。
//   - 中国語: CJK統合漢字 (U+4E00〜U+9FA5)・空白・頓号「、」のみ
//   - 英語:   ASCII英字のみ
//   - 名前:   漢字・英字・数字のみ (空文字も通る点に注意)
//   - メール: local@domain.tld 形式の簡易チェック (RFC 5322完全準拠ではない)
var (
	chineseRegexp = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}\s、]+$`)
	englishRegexp = regexp.MustCompile(`^[a-zA-Z]+$`)
	nameRegexp    = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}a-zA-Z0-9]*$`)
	emailRegexp   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsChineseText は s が中国語訳として妥当な文字列かを返します。
func IsChineseText(s string) bool {
	return chineseRegexp.MatchString(s)
}

// IsEnglishWord は s が英単語として妥当な文字列かを返します。
func IsEnglishWord(s string) bool {
	return englishRegexp.MatchString(s)
}

// IsAccountName は s がアカウント名として妥当な文字列かを返します。
// 正規表現が `*` のため空文字列も true になります。
func IsAccountName(s string) bool {
	return nameRegexp.MatchString(s)
}

// IsEmail は s がメールアドレスとして妥当な文字列かを返します。
func IsEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
// 上記の述語をカスタムタグとして登録してあり、DTO側で
// `validate:"required,english_word"` のように宣言できます。
var Validator *validator.Validate

func init() {
	Validator = validator.New()

	// エラーメッセージでJSONタグ名を使えるようにする
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// カスタムタグの登録。述語は純粋関数なのでそのまま包むだけ
	Validator.RegisterValidation("chinese_text", func(fl validator.FieldLevel) bool {
		return IsChineseText(fl.Field().String())
	})
	Validator.RegisterValidation("english_word", func(fl validator.FieldLevel) bool {
		return IsEnglishWord(fl.Field().String())
	})
	Validator.RegisterValidation("account_name", func(fl validator.FieldLevel) bool {
		return IsAccountName(fl.Field().String())
	})
	Validator.RegisterValidation("member_email", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
}
