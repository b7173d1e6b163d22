package utils

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/douhashi/issue-transfer/internal/github"
)

// DetectRepositoryError は詳細なエラー情報を持つエラー型
type DetectRepositoryError struct {
	Step    string // どの段階で失敗したか
	Cause   error  // 根本的な原因
	Message string // ユーザー向けメッセージ
}

func (e *DetectRepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *DetectRepositoryError) Unwrap() error {
	return e.Cause
}

// DetectRepository はdirのGitリポジトリのoriginリモートからGitHubリポジトリを特定する
// dirが空の場合はカレントディレクトリを使う
func DetectRepository(ctx context.Context, dir string) (github.RepositoryRef, error) {
	args := []string{"remote", "get-url", "origin"}
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return github.RepositoryRef{}, &DetectRepositoryError{
			Step:    "remote_url",
			Cause:   fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String())),
			Message: "リモートURL取得に失敗しました。'origin' リモートが設定されているか確認してください",
		}
	}

	remoteURL := strings.TrimSpace(stdout.String())
	repo, err := ParseGitHubURL(remoteURL)
	if err != nil {
		return github.RepositoryRef{}, &DetectRepositoryError{
			Step:    "url_parsing",
			Cause:   err,
			Message: fmt.Sprintf("GitHub URL解析に失敗しました。URL: %s", remoteURL),
		}
	}
	return repo, nil
}
