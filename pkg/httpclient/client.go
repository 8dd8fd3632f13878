package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client はバックエンドサービスへの転送を行うHTTPクライアント。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先バックエンドのベースURL。
	baseURL string
}

// New は新しい転送用HTTPクライアントを生成する。
// baseURLには接続先バックエンドのベースURL（例: "http://localhost:8000"）を指定する。
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// Response はバックエンドからの応答を解釈せずそのまま保持する。
type Response struct {
	// StatusCode はバックエンドが返したHTTPステータスコード。
	StatusCode int
	// ContentType はレスポンスのContent-Typeヘッダー。
	ContentType string
	// Body はレスポンスボディ。
	Body []byte
}

// Forward は指定のメソッド・パスでバックエンドへリクエストを転送し、
// ステータスコードとボディを変換せずそのまま返す。
// tokenはAuthorization: Bearerヘッダーとして付与される。
// 非2xxレスポンスはエラーではなく、そのままResponseとして返る。
func (c *Client) Forward(ctx context.Context, method, path, token, contentType string, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("転送リクエストの作成に失敗: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("バックエンドへのリクエスト送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("バックエンドレスポンスの読み取りに失敗: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: ct,
		Body:        respBody,
	}, nil
}
