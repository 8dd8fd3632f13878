// Package middleware はGinベースのプロキシHTTP APIで使用する共通ミドルウェアを提供する。
//
// セッションガード（注入されたAuthenticatorによる認証）、パニックリカバリ、
// CORS設定を含む。ローカルで生成するエラーレスポンスはすべて
// pkg/apierrのエンベロープ形式に統一する。
package middleware
