package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/douhashi/issue-transfer/internal/config"
	"github.com/douhashi/issue-transfer/internal/gh"
	"github.com/douhashi/issue-transfer/internal/github"
	"github.com/douhashi/issue-transfer/internal/logger"
	"github.com/douhashi/issue-transfer/internal/project"
	"github.com/douhashi/issue-transfer/internal/transfer"
	"github.com/douhashi/issue-transfer/internal/utils"
)

// addSelectionFlags は転送対象の選択に関するフラグを追加する
func addSelectionFlags(flags *pflag.FlagSet) {
	flags.String("source", "", "転送元リポジトリ (owner/name)")
	flags.String("project", "", "GitHub ProjectsのノードID")
	flags.String("status", "", "転送対象とするステータス (空の場合は全てのIssue)")
	flags.String("status-field", "", "ステータスを判定するsingle-selectフィールド名")
	flags.IntSlice("issue", nil, "プロジェクトを検索せずに転送するIssue番号")
	flags.String("graphql-url", "", "GraphQLエンドポイント (GitHub Enterprise用)")
	flags.Bool("use-gh", false, "トークンの代わりにghコマンドの認証を使う")
}

// loadConfig は設定を読み込む
// 転送元が指定されていない場合はカレントディレクトリのoriginリモートを使う
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Transfer.Source.IsZero() {
		repo, err := utils.DetectRepository(cmd.Context(), "")
		if err != nil {
			currentLogger().Debug("Could not detect source repository from git remote", "error", err)
		} else {
			cfg.Transfer.Source = repo
			currentLogger().Info("Using origin remote as source repository", "source", repo.String())
		}
	}
	return cfg, nil
}

// currentLogger はPersistentPreRunEで初期化されたロガーを返す
func currentLogger() logger.Logger {
	if appLog == nil {
		return logger.NewNop()
	}
	return appLog
}

// newGitHubClient は設定からGitHubクライアントを作成する
func newGitHubClient(cfg *config.Config, log logger.Logger) (*github.Client, error) {
	opts := []github.ClientOption{github.WithLogger(log)}
	if cfg.GitHub.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHub.BaseURL))
	}
	if cfg.GitHub.GraphQLURL != "" {
		opts = append(opts, github.WithGraphQLURL(cfg.GitHub.GraphQLURL))
	}
	return github.NewClient(cfg.GitHub.Token, opts...)
}

// services はコマンドが使うGitHub操作の組み合わせ
type services struct {
	github  *github.Service
	project *project.Client
	// rateLimit はトークン認証の場合のみ設定される
	rateLimit transfer.RateLimitReporter
}

// newRunner は設定に応じてGraphQLの実行方法を選ぶ
// use_gh_commandが有効な場合はghコマンドの認証を使い、それ以外はトークンでAPIを直接呼び出す
func newRunner(ctx context.Context, cfg *config.Config, log logger.Logger) (github.Runner, transfer.RateLimitReporter, error) {
	if cfg.GitHub.UseGHCommand {
		client, err := gh.NewClient(gh.NewRealCommandExecutor(), cfg.GitHub.Hostname)
		if err != nil {
			return nil, nil, err
		}
		if err := client.ValidatePrerequisites(ctx); err != nil {
			return nil, nil, err
		}
		log.Debug("Using gh command for GitHub API access")
		return client, nil, nil
	}

	client, err := newGitHubClient(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("GitHubクライアントの作成に失敗: %w", err)
	}
	return client, client, nil
}

// newServices はGraphQLの実行方法とその上のサービスを組み立てる
func newServices(ctx context.Context, cfg *config.Config, log logger.Logger) (*services, error) {
	runner, rateLimit, err := newRunner(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	svc, err := github.NewService(runner)
	if err != nil {
		return nil, err
	}
	fetcher, err := project.NewClient(svc)
	if err != nil {
		return nil, err
	}
	return &services{github: svc, project: fetcher, rateLimit: rateLimit}, nil
}

func statusFilter(cfg *config.Config) project.StatusFilter {
	return project.StatusFilter{
		Status: cfg.Transfer.Status,
		Field:  cfg.Transfer.StatusField,
	}
}
