package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name               string
		args               []string
		wantErr            bool
		wantOutputContains []string
	}{
		{
			name:    "正常系: ヘルプ表示",
			args:    []string{"--help"},
			wantErr: false,
			wantOutputContains: []string{
				"issue-transfer",
				"別のリポジトリへ転送",
				"run",
				"list",
			},
		},
		{
			name:    "正常系: バージョン表示",
			args:    []string{"--version"},
			wantErr: false,
			wantOutputContains: []string{
				"issue-transfer version",
			},
		},
		{
			name:    "異常系: 不正なフラグ",
			args:    []string{"--invalid-flag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown flag")
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutputContains {
				assert.Contains(t, stdout, want)
			}
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want string
	}{
		{name: "config フラグ", args: []string{"--config", "test.yaml"}, flag: "config", want: "test.yaml"},
		{name: "config 短縮形", args: []string{"-c", "test.yaml"}, flag: "config", want: "test.yaml"},
		{name: "verbose フラグ", args: []string{"--verbose"}, flag: "verbose", want: "true"},
		{name: "log-level フラグ", args: []string{"--log-level", "debug"}, flag: "log-level", want: "debug"},
		{name: "log-level 短縮形", args: []string{"-l", "warn"}, flag: "log-level", want: "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd = newRootCmd()
			require.NoError(t, rootCmd.ParseFlags(tt.args))

			flag := rootCmd.Flags().Lookup(tt.flag)
			require.NotNil(t, flag)
			assert.Equal(t, tt.want, flag.Value.String())
		})
	}
}

func TestInvalidLogLevel(t *testing.T) {
	newFakeGitHub(t)

	_, _, err := executeCommand("list", "--log-level", "verbose", "--source", "acme/old-repo", "--issue", "1")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to initialize logger"))
}
