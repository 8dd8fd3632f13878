// Package httpclient はバックエンドのワークフロー管理APIへの転送クライアントを提供する。
//
// プロキシはバックエンドのレスポンスを解釈しないため、このクライアントは
// ステータスコードとボディを変換せずそのまま返す。非2xxレスポンスも
// エラーとして扱わず、呼び出し元がそのまま中継できる形で返却する。
package httpclient
