package gh

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCommandExecutor_Execute(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}
	executor := NewRealCommandExecutor()

	t.Run("正常系: 標準入力を渡して標準出力を返す", func(t *testing.T) {
		out, err := executor.Execute(context.Background(), strings.NewReader("hello"), "sh", "-c", "cat")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("異常系: 終了コードと出力を保持する", func(t *testing.T) {
		_, err := executor.Execute(context.Background(), nil, "sh", "-c", "echo out; echo err >&2; exit 3")

		var execErr *ExecError
		require.True(t, errors.As(err, &execErr))
		assert.Equal(t, 3, execErr.ExitCode)
		assert.Equal(t, "out\n", execErr.Stdout)
		assert.Equal(t, "err\n", execErr.Stderr)
		assert.Contains(t, execErr.Error(), "exit code 3")
	})

	t.Run("異常系: コンテキストがキャンセルされる", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := executor.Execute(ctx, nil, "sh", "-c", "sleep 5")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("異常系: 存在しないコマンド", func(t *testing.T) {
		_, err := executor.Execute(context.Background(), nil, "issue-transfer-no-such-command")

		var execErr *ExecError
		require.True(t, errors.As(err, &execErr))
		assert.Equal(t, -1, execErr.ExitCode)
	})
}
