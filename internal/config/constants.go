// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "AI Flash Card"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort            = ":8080"
	DefaultLogLevel              = "info"
	DefaultGeminiModel           = "gemini-2.0-flash"
	DefaultGeminiTemperature     = 0.3
	DefaultGeminiMaxOutputTokens = 800
	DefaultAccessTokenTTL        = 24 * time.Hour
	DefaultAuthEnabled           = false
)
