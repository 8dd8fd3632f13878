package proxy

import "os"

// Config はプロキシサーバーの設定。プロセス環境を直接参照せず、
// 明示的な値としてNewServerに注入する。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// APIURL はバックエンドのワークフロー管理APIのベースURL。
	APIURL string
	// SessionSecret は認証プロバイダのセッショントークン検証用秘密鍵。
	SessionSecret string
	// BackendSecret はバックエンドと共有する資格情報署名用秘密鍵。
	BackendSecret string
	// FrontendURL はCORSで許可するUIページのオリジン。
	FrontendURL string
}

// ConfigFromEnv は環境変数からConfigを構築する。
// 未設定の項目には開発用のデフォルト値を使用する。
func ConfigFromEnv() Config {
	return Config{
		Port:          getEnvOr("PORT", "8080"),
		APIURL:        getEnvOr("API_URL", "http://localhost:8000"),
		SessionSecret: getEnvOr("SESSION_SECRET", "dev-session-secret"),
		BackendSecret: getEnvOr("BACKEND_SECRET", "dev-backend-secret"),
		FrontendURL:   getEnvOr("FRONTEND_URL", "http://localhost:3000"),
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
