package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "転送対象のIssue番号を表示",
		Long:  `プロジェクトを検索し、runで転送されるIssue番号を表示します。何も変更しません。`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}

	addSelectionFlags(cmd.Flags())

	return cmd
}

func runList(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateSource(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cfg.Transfer.Issues) > 0 {
		fmt.Fprintln(out, "指定されたIssue:")
		for _, n := range cfg.Transfer.Issues {
			fmt.Fprintf(out, "  #%d\n", n)
		}
		return nil
	}

	svcs, err := newServices(cmd.Context(), cfg, currentLogger())
	if err != nil {
		return err
	}

	filter := statusFilter(cfg)
	issues, err := svcs.project.FetchIssuesToTransfer(cmd.Context(), cfg.Transfer.ProjectID, filter)
	if err != nil {
		return fmt.Errorf("failed to fetch issues to transfer: %w", err)
	}

	if len(issues) == 0 {
		fmt.Fprintf(out, "ステータス %s のIssueはありません\n", filter)
		return nil
	}

	fmt.Fprintf(out, "ステータス %s のIssue (%d件):\n", filter, len(issues))
	for _, n := range issues {
		fmt.Fprintf(out, "  #%d\n", n)
	}
	return nil
}
