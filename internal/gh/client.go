// Package gh はghコマンドの認証情報を使ってGitHub GraphQL APIを呼び出す
package gh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/douhashi/issue-transfer/internal/github"
)

// Client はghコマンドを使用してGraphQLを実行するクライアント
type Client struct {
	executor CommandExecutor
	hostname string
}

// NewClient は新しいClientを作成する
// hostnameが空の場合はghの既定のホスト (github.com) を使う
func NewClient(executor CommandExecutor, hostname string) (*Client, error) {
	if executor == nil {
		return nil, errors.New("executor is required")
	}
	return &Client{
		executor: executor,
		hostname: hostname,
	}, nil
}

// ValidatePrerequisites はghコマンドの前提条件を検証する
func (c *Client) ValidatePrerequisites(ctx context.Context) error {
	installed, err := CheckInstalled(ctx, c.executor)
	if err != nil {
		return fmt.Errorf("failed to check gh installation: %w", err)
	}
	if !installed {
		return errors.New("gh command is not installed")
	}

	authenticated, err := CheckAuth(ctx, c.executor)
	if err != nil {
		return fmt.Errorf("failed to check gh authentication: %w", err)
	}
	if !authenticated {
		return errors.New("gh command is not authenticated. Run 'gh auth login' first")
	}

	return nil
}

// Run は `gh api graphql` でクエリ/ミューテーションを実行し、dataをoutにデコードする
//
// ghはGraphQLのerrorsを含むレスポンスでも終了コード1を返すため、
// 標準出力にレスポンスがあればそちらを優先して解釈する。
func (c *Client) Run(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := github.EncodeGraphQLRequest(query, variables)
	if err != nil {
		return err
	}

	args := []string{"api", "graphql", "--input", "-"}
	if c.hostname != "" {
		args = append(args, "--hostname", c.hostname)
	}

	stdout, err := c.executor.Execute(ctx, bytes.NewReader(body), "gh", args...)
	if err != nil {
		var execErr *ExecError
		if errors.As(err, &execErr) && strings.HasPrefix(strings.TrimSpace(execErr.Stdout), "{") {
			return github.DecodeGraphQLResponse([]byte(execErr.Stdout), out)
		}
		return fmt.Errorf("gh api graphql failed: %w", err)
	}

	return github.DecodeGraphQLResponse([]byte(stdout), out)
}

// github.Runnerインターフェースを実装していることをコンパイル時に確認
var _ github.Runner = (*Client)(nil)
