// ワークフロー管理APIの前段に立つ認証付きプロキシのエントリポイント。
// セッション検証、バックエンド資格情報の発行、リクエスト転送を担当する。
// 外部からアクセス可能な唯一の面であり、セキュリティの境界線となる。
package main

import (
	"log"

	"github.com/nao1215/flowgate/internal/proxy"
)

func main() {
	cfg := proxy.ConfigFromEnv()

	server := proxy.NewServer(cfg)
	log.Printf("プロキシサービスを起動します: :%s (backend=%s)", cfg.Port, cfg.APIURL)
	if err := server.Run(); err != nil {
		log.Fatalf("プロキシサービスの起動に失敗: %v", err)
	}
}
