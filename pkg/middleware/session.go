package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/flowgate/pkg/apierr"
	"github.com/nao1215/flowgate/pkg/session"
)

// contextKeySession はGinコンテキストに解決済みセッションを格納するためのキー。
const contextKeySession = "session"

// SessionGuard は注入されたAuthenticatorでセッションを解決するGinミドルウェアを返す。
// セッションが解決できない場合は401とローカルエラーエンベロープを返して
// バックエンド呼び出しの前に処理を打ち切る。
func SessionGuard(auth session.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := auth.Authenticate(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierr.Unauthorized())
			return
		}

		c.Set(contextKeySession, sess)
		c.Next()
	}
}

// GetSession はGinコンテキストから解決済みセッションを取得する。
// SessionGuardミドルウェアが事前に適用されている必要がある。
func GetSession(c *gin.Context) *session.Session {
	v, _ := c.Get(contextKeySession)
	if sess, ok := v.(*session.Session); ok {
		return sess
	}
	return nil
}
