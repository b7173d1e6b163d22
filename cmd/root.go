package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/douhashi/issue-transfer/internal/logger"
	"github.com/douhashi/issue-transfer/internal/version"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	rootCmd  *cobra.Command
	appLog   logger.Logger
)

func init() {
	rootCmd = NewRootCmd()
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue-transfer",
		Short: "GitHub ProjectsのステータスでIssueを別リポジトリへ転送",
		Long: `issue-transferは、GitHub Projects (v2) のボードで指定したステータスのIssueを
別のリポジトリへ転送し、転送先で目印のラベルを付与するCLIツールです。`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
			switch {
			case logLevel != "":
				opts = append(opts, logger.WithLevel(logLevel))
			case verbose:
				opts = append(opts, logger.WithLevel("debug"))
			}

			var err error
			appLog, err = logger.NewFromEnv(opts...)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")
	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "ログレベル (debug, info, warn, error)")

	return cmd
}

// Execute はルートコマンドを実行する。致命的なエラーの場合は終了コード1で終了する
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
