// Package session は外部認証プロバイダが発行するセッションの解決を提供する。
//
// セッションはリクエストごとに認証プロバイダから供給される一時的な値であり、
// プロキシ側では一切永続化しない。Authenticatorインターフェースを介して
// ハンドラに注入することで、テスト時に偽造セッションを差し込める。
package session
