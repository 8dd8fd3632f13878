package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session は認証プロバイダが発行した、現在の呼び出し元の認証済みコンテキスト。
// プロキシはこれを保持・永続化せず、1リクエストの処理中のみ参照する。
type Session struct {
	// UserID は認証済みユーザーの一意識別子。
	UserID string
	// OrgID はユーザーが属する組織（テナント）の識別子。
	OrgID string
	// Email はユーザーのメールアドレス。
	Email string
}

// ErrNoSession はリクエストに有効なセッションが含まれていない場合のエラー。
var ErrNoSession = errors.New("セッションが存在しないか無効です")

// Authenticator はリクエストからセッションを解決する能力を表す。
// ハンドラには具象実装を注入することで、テスト時に任意のセッションを
// 差し込めるようにする。
type Authenticator interface {
	// Authenticate はリクエストからセッションを解決する。
	// 有効なセッションが無い場合はErrNoSessionを返す。
	Authenticate(r *http.Request) (*Session, error)
}

// Claims は認証プロバイダが発行するセッショントークンのクレーム。
type Claims struct {
	jwt.RegisteredClaims
	// UserID は認証済みユーザーの一意識別子。
	UserID string `json:"user_id"`
	// OrgID はユーザーが属する組織の識別子。
	OrgID string `json:"org_id"`
	// Email はユーザーのメールアドレス。
	Email string `json:"email"`
}

// JWTAuthenticator は認証プロバイダと共有する秘密鍵でセッショントークンを
// 検証するAuthenticator実装。
type JWTAuthenticator struct {
	// secret はセッショントークン検証用の秘密鍵。
	secret string
}

// NewJWTAuthenticator は新しいJWTAuthenticatorを生成する。
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret}
}

// Authenticate はAuthorizationヘッダーのBearerトークンを検証してセッションを返す。
// ヘッダーが無い、形式が不正、署名が無効、ユーザーが特定できない場合は
// いずれもErrNoSessionを返す。
func (a *JWTAuthenticator) Authenticate(r *http.Request) (*Session, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrNoSession
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return nil, ErrNoSession
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(a.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}
	if claims.UserID == "" {
		return nil, ErrNoSession
	}

	return &Session{
		UserID: claims.UserID,
		OrgID:  claims.OrgID,
		Email:  claims.Email,
	}, nil
}

// Sign は指定したセッション内容でHS256署名付きセッショントークンを生成する。
// 開発環境やテストで認証プロバイダの代わりにセッションを作り出すために使用する。
func Sign(secret string, s Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: s.UserID,
		OrgID:  s.OrgID,
		Email:  s.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("セッショントークンの署名に失敗: %w", err)
	}
	return signed, nil
}
