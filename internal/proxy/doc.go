// Package proxy はワークフロー管理APIの前段に立つ認証付きプロキシの内部実装を提供する。
//
// セッション検証、バックエンド資格情報の発行、リクエスト転送を担当する。
// 各リクエストはセッションガード→資格情報発行→転送の一方向の流れで処理され、
// リクエスト間で共有される状態は持たない。バックエンドのレスポンスは
// ステータスコード・ボディともに変換せずそのまま呼び出し元へ中継する。
package proxy
