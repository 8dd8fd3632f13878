package proxy

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/flowgate/internal/token"
	"github.com/nao1215/flowgate/pkg/apierr"
	"github.com/nao1215/flowgate/pkg/httpclient"
	"github.com/nao1215/flowgate/pkg/middleware"
	"github.com/nao1215/flowgate/pkg/session"
)

// workflowsPath はバックエンドのワークフローリソースの固定パス。
const workflowsPath = "/v1/workflows"

// Server は認証付きプロキシのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// auth はリクエストからセッションを解決するAuthenticator。
	auth session.Authenticator
	// minter はセッションからバックエンド資格情報を発行するMinter。
	minter *token.Minter
	// backend はバックエンドへの転送クライアント。
	backend *httpclient.Client
}

// NewServer は新しいプロキシサーバーを生成する。
func NewServer(cfg Config) *Server {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))

	s := &Server{
		router:  router,
		port:    cfg.Port,
		auth:    session.NewJWTAuthenticator(cfg.SessionSecret),
		minter:  token.New(cfg.BackendSecret),
		backend: httpclient.New(cfg.APIURL),
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 認証必須のプロキシエンドポイント
	api := s.router.Group("/v1")
	api.Use(middleware.SessionGuard(s.auth))
	{
		api.POST("/workflows", s.handleForward(workflowsPath))
		api.GET("/workflows", s.handleForward(workflowsPath))
		api.GET("/workflows/:id", s.handleForwardWithParam(workflowsPath+"/", "id"))
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "proxy"})
	})
}

// handleForward は固定パスへの転送ハンドラを返す。
func (s *Server) handleForward(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := path
		if c.Request.URL.RawQuery != "" {
			target += "?" + c.Request.URL.RawQuery
		}
		s.forward(c, c.Request.Method, target)
	}
}

// handleForwardWithParam はURLパラメータをパスに埋め込む転送ハンドラを返す。
// 識別子の認可はバックエンドに委譲する。バックエンドはテナント分離を強制し、
// 他テナントのリソースには404を返す。
func (s *Server) handleForwardWithParam(pathPrefix, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := pathPrefix + c.Param(paramName)
		if c.Request.URL.RawQuery != "" {
			target += "?" + c.Request.URL.RawQuery
		}
		s.forward(c, c.Request.Method, target)
	}
}

// forward はセッションからバックエンド資格情報を発行し、リクエストを
// バックエンドへ転送してレスポンスをそのまま中継する共通処理。
// バックエンドの呼び出しは受信リクエストのコンテキストを引き継ぐため、
// 呼び出し元の切断で転送中のリクエストも中断される。
func (s *Server) forward(c *gin.Context, method, path string) {
	sess := middleware.GetSession(c)
	if sess == nil {
		// SessionGuardを通過していればここには到達しない
		s.internalError(c, errors.New("セッションがコンテキストに存在しません"))
		return
	}

	credential, err := s.minter.Mint(sess)
	if err != nil {
		s.internalError(c, err)
		return
	}

	resp, err := s.backend.Forward(c.Request.Context(), method, path, credential,
		c.GetHeader("Content-Type"), c.Request.Body)
	if err != nil {
		s.internalError(c, err)
		return
	}

	// バックエンドのステータスコードとボディは変換せずそのまま返す
	c.Data(resp.StatusCode, resp.ContentType, resp.Body)
}

// internalError は内部エラーをリクエストIDとともにログへ記録し、
// 500のローカルエンベロープを返す。
func (s *Server) internalError(c *gin.Context, err error) {
	env := apierr.Internal(err.Error())
	log.Printf("内部エラー: %s %s request_id=%s: %v",
		c.Request.Method, c.Request.URL.Path, env.Error.RequestID, err)
	c.JSON(http.StatusInternalServerError, env)
}
