package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"

	"github.com/douhashi/issue-transfer/internal/logger"
)

const defaultGraphQLPath = "graphql"

// Client はgo-githubクライアントのラッパー。GraphQLの実行とREST APIの補助的な呼び出しを行う
type Client struct {
	github     *gogithub.Client
	graphqlURL string
	logger     logger.Logger
}

// ClientOption はClientの設定オプション
type ClientOption func(*clientOptions)

type clientOptions struct {
	baseURL    string
	graphqlURL string
	logger     logger.Logger
	transport  http.RoundTripper
}

// WithBaseURL はREST APIのベースURLを設定する（GitHub Enterpriseやテスト用）
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithGraphQLURL はGraphQLエンドポイントを設定する。相対パスはベースURLから解決される
func WithGraphQLURL(graphqlURL string) ClientOption {
	return func(o *clientOptions) {
		o.graphqlURL = graphqlURL
	}
}

// WithLogger はHTTPリクエスト/レスポンスのデバッグログを有効にする
func WithLogger(log logger.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = log
	}
}

// WithTransport は下位のHTTPトランスポートを差し替える
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// NewClient は新しいGitHub APIクライアントを作成する
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}

	options := &clientOptions{graphqlURL: defaultGraphQLPath}
	for _, opt := range opts {
		opt(options)
	}

	base := options.transport
	if base == nil {
		base = http.DefaultTransport
	}
	if options.logger != nil {
		base = newLoggingRoundTripper(base, options.logger)
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   base,
		},
	}

	gh := gogithub.NewClient(httpClient)
	if options.baseURL != "" {
		u, err := url.Parse(ensureTrailingSlash(options.baseURL))
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", options.baseURL, err)
		}
		gh.BaseURL = u
	}

	log := options.logger
	if log == nil {
		log = logger.NewNop()
	}

	graphqlURL := options.graphqlURL
	if graphqlURL == "" {
		graphqlURL = defaultGraphQLPath
	}

	return &Client{
		github:     gh,
		graphqlURL: graphqlURL,
		logger:     log,
	}, nil
}

// Run はGraphQLのクエリ/ミューテーションを実行し、dataをoutにデコードする
func (c *Client) Run(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	req, err := c.github.NewRequest(http.MethodPost, c.graphqlURL, &graphQLRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return fmt.Errorf("failed to create GraphQL request: %w", err)
	}

	var resp graphQLResponse
	if _, err := c.github.Do(ctx, req, &resp); err != nil {
		return ClassifyError(err)
	}

	return resp.decode(out)
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// Runnerインターフェースを実装していることをコンパイル時に確認
var _ Runner = (*Client)(nil)
