package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/douhashi/issue-transfer/internal/config"
	"github.com/douhashi/issue-transfer/internal/transfer"
)

func newRunCmd() *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Issueを転送してラベルを付与",
		Long: `プロジェクトで指定したステータスのIssueを転送元から転送先へ移動し、
転送先のIssueにラベルを付与します。--dry-runでは読み取りのみ行い、何も変更しません。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd, reportPath)
		},
	}

	addSelectionFlags(cmd.Flags())
	cmd.Flags().String("target", "", "転送先リポジトリ (owner/name)")
	cmd.Flags().Bool("dry-run", false, "変更を行わずに処理内容だけを表示")
	cmd.Flags().String("label", "", "転送後に付与するラベル名")
	cmd.Flags().String("label-color", "", "ラベルを作成する場合の色 (例: b60205)")
	cmd.Flags().String("label-description", "", "ラベルを作成する場合の説明")
	cmd.Flags().StringVar(&reportPath, "report", "", "実行結果を書き出すファイル (.jsonならJSON、それ以外はYAML)")

	return cmd
}

func runTransfer(cmd *cobra.Command, reportPath string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := currentLogger()
	svcs, err := newServices(ctx, cfg, log)
	if err != nil {
		return err
	}

	var opts []transfer.RunnerOption
	if svcs.rateLimit != nil {
		opts = append(opts, transfer.WithRateLimitReporter(svcs.rateLimit))
	}
	runner, err := transfer.NewRunner(svcs.github, svcs.project, runOptions(cfg), log, opts...)
	if err != nil {
		return err
	}

	report, runErr := runner.Run(ctx)
	if reportPath != "" && report != nil {
		if err := report.WriteFile(reportPath); err != nil {
			log.Error("Failed to write report", "path", reportPath, "error", err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "レポートを書き出しました: %s\n", reportPath)
		}
	}
	if runErr != nil {
		return runErr
	}

	prefix := "完了"
	if cfg.Transfer.DryRun {
		prefix = "完了 (dry-run)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", prefix, report.Summary())
	return nil
}

func runOptions(cfg *config.Config) transfer.Options {
	return transfer.Options{
		Source:    cfg.Transfer.Source,
		Target:    cfg.Transfer.Target,
		ProjectID: cfg.Transfer.ProjectID,
		Filter:    statusFilter(cfg),
		Issues:    cfg.Transfer.Issues,
		DryRun:    cfg.Transfer.DryRun,
		Label:     cfg.LabelDefinition(),
	}
}
