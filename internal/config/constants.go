// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "learn-english-api"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
	DefaultStaticDir  = "public"
)

// CORSで許可するオリジンのデフォルト。フロントエンドの開発サーバーと本番URL
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://learn-english-react.vercel.app",
}
