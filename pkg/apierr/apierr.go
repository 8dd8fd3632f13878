// Package apierr はプロキシがローカルで生成するエラーレスポンスの
// 構造化エンベロープを提供する。
//
// バックエンド由来のエラーはステータスコードとボディをそのまま中継するため、
// このエンベロープはセッション検証失敗と内部エラーの2種類にのみ使用する。
package apierr

import "github.com/google/uuid"

// エラーコード定数。
const (
	// CodeUnauthorized はセッションが存在しない、または無効な場合のエラーコード。
	CodeUnauthorized = "UNAUTHORIZED"
	// CodeInternal はプロキシ内部で例外が発生した場合のエラーコード。
	CodeInternal = "INTERNAL_ERROR"
)

// Envelope はローカルエラーのレスポンスボディ。
type Envelope struct {
	// Error はエラー詳細。
	Error Detail `json:"error"`
}

// Detail はエラーの詳細情報。
type Detail struct {
	// Code は機械可読なエラーコード。
	Code string `json:"code"`
	// Message は人間可読なエラーメッセージ。
	Message string `json:"message"`
	// RequestID はトレーシング用に新規生成されるリクエスト識別子。
	RequestID string `json:"request_id"`
}

// New は新しいリクエストIDを払い出してエンベロープを生成する。
func New(code, message string) Envelope {
	return Envelope{
		Error: Detail{
			Code:      code,
			Message:   message,
			RequestID: uuid.New().String(),
		},
	}
}

// Unauthorized は認証エラーのエンベロープを生成する。
func Unauthorized() Envelope {
	return New(CodeUnauthorized, "Authentication required")
}

// Internal は内部エラーのエンベロープを生成する。
func Internal(message string) Envelope {
	return New(CodeInternal, message)
}
