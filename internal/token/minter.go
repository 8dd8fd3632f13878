// Package token はセッションからバックエンド向けの署名付き資格情報を導出する。
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nao1215/flowgate/pkg/session"
)

// issuer はバックエンドトークンの発行者名。
const issuer = "flowgate-proxy"

// ttl はバックエンドトークンの有効期間。バックエンド呼び出し1回分を
// カバーできれば十分なため短命にする。
const ttl = 5 * time.Minute

// Claims はバックエンドが検証する資格情報トークンのクレーム。
type Claims struct {
	jwt.RegisteredClaims
	// UserID は認証済みユーザーの一意識別子。
	UserID string `json:"user_id"`
	// OrgID はユーザーが属する組織の識別子。バックエンドはこの値で
	// テナント分離を強制する。
	OrgID string `json:"org_id"`
}

// Minter はバックエンドと共有する秘密鍵で資格情報トークンを発行する。
type Minter struct {
	// secret はバックエンドと共有するHS256署名用の秘密鍵。
	secret string
}

// New は新しいMinterを生成する。
func New(secret string) *Minter {
	return &Minter{secret: secret}
}

// Mint はセッションの識別情報から短命なHS256署名付きトークンを生成する。
// 生成したトークンはログや呼び出し元へのレスポンスに含めてはならない。
func (m *Minter) Mint(s *session.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
		UserID: s.UserID,
		OrgID:  s.OrgID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", fmt.Errorf("バックエンドトークンの署名に失敗: %w", err)
	}
	return signed, nil
}
