package gh

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douhashi/issue-transfer/internal/github"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient(nil, "")
	assert.EqualError(t, err, "executor is required")
}

func TestClient_ValidatePrerequisites(t *testing.T) {
	tests := []struct {
		name    string
		execute func(ctx context.Context, stdin []byte, command string, args ...string) (string, error)
		wantErr string
	}{
		{
			name: "正常系: インストール済みかつ認証済み",
			execute: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				return "ok", nil
			},
		},
		{
			name: "異常系: ghがインストールされていない",
			execute: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				return "", &ExecError{Command: command, Args: args, ExitCode: -1}
			},
			wantErr: "gh command is not installed",
		},
		{
			name: "異常系: 未認証",
			execute: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				if len(args) > 0 && args[0] == "auth" {
					return "", &ExecError{Command: command, Args: args, ExitCode: 1}
				}
				return "gh version 2.40.0", nil
			},
			wantErr: "gh auth login",
		},
		{
			name: "異常系: 予期しないエラー",
			execute: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				return "", errors.New("boom")
			},
			wantErr: "failed to check gh installation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(&mockCommandExecutor{executeFunc: tt.execute}, "")
			require.NoError(t, err)

			err = client.ValidatePrerequisites(context.Background())
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestClient_Run(t *testing.T) {
	t.Run("正常系: 標準入力でリクエストを渡しdataをデコードする", func(t *testing.T) {
		var request map[string]interface{}
		executor := &mockCommandExecutor{
			executeFunc: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				require.NoError(t, json.Unmarshal(stdin, &request))
				return `{"data":{"repository":{"id":"R_1"}}}`, nil
			},
		}
		client, err := NewClient(executor, "")
		require.NoError(t, err)

		svc, err := github.NewService(client)
		require.NoError(t, err)

		id, err := svc.RepositoryID(context.Background(), github.RepositoryRef{Owner: "acme", Name: "new-repo"})
		require.NoError(t, err)
		assert.Equal(t, "R_1", id)

		assert.Equal(t, [][]string{{"gh", "api", "graphql", "--input", "-"}}, executor.calls)
		assert.Contains(t, request["query"], "repository(owner: $owner, name: $name)")
		assert.Equal(t, map[string]interface{}{"owner": "acme", "name": "new-repo"}, request["variables"])
	})

	t.Run("正常系: ホスト名を指定できる", func(t *testing.T) {
		executor := &mockCommandExecutor{
			executeFunc: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				return `{"data":{}}`, nil
			},
		}
		client, err := NewClient(executor, "github.example.com")
		require.NoError(t, err)

		require.NoError(t, client.Run(context.Background(), "query { viewer { login } }", nil, nil))
		assert.Equal(t, []string{"gh", "api", "graphql", "--input", "-", "--hostname", "github.example.com"}, executor.calls[0])
	})

	t.Run("異常系: 終了コード1でも標準出力のGraphQLエラーを分類する", func(t *testing.T) {
		executor := &mockCommandExecutor{
			executeFunc: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				return "", &ExecError{
					Command:  command,
					Args:     args,
					ExitCode: 1,
					Stdout:   `{"data":{"repository":{"issue":null}},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to an Issue"}]}`,
					Stderr:   "gh: Could not resolve to an Issue",
				}
			},
		}
		client, err := NewClient(executor, "")
		require.NoError(t, err)

		err = client.Run(context.Background(), "query { x }", nil, nil)
		require.Error(t, err)
		assert.True(t, github.IsNotFoundError(err))
	})

	t.Run("異常系: レスポンスのない失敗", func(t *testing.T) {
		executor := &mockCommandExecutor{
			executeFunc: func(ctx context.Context, stdin []byte, command string, args ...string) (string, error) {
				return "", &ExecError{Command: command, Args: args, ExitCode: 4, Stderr: "gh: To get started with GitHub CLI, please run:  gh auth login"}
			},
		}
		client, err := NewClient(executor, "")
		require.NoError(t, err)

		err = client.Run(context.Background(), "query { x }", nil, nil)
		assert.ErrorContains(t, err, "gh api graphql failed")
	})
}
