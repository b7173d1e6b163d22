package gh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CommandExecutor はコマンド実行の抽象化インターフェース
type CommandExecutor interface {
	// Execute はstdinを標準入力に渡してコマンドを実行し、標準出力を返す。stdinはnilでもよい
	Execute(ctx context.Context, stdin io.Reader, command string, args ...string) (string, error)
}

// ExecError はコマンド実行エラーを表す
type ExecError struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Error はエラーメッセージを返す
func (e *ExecError) Error() string {
	cmdStr := e.Command
	if len(e.Args) > 0 {
		cmdStr = fmt.Sprintf("%s %s", e.Command, strings.Join(e.Args, " "))
	}
	return fmt.Sprintf("command '%s' failed with exit code %d: %s", cmdStr, e.ExitCode, strings.TrimSpace(e.Stderr))
}

// RealCommandExecutor は実際のコマンドを実行する実装
type RealCommandExecutor struct{}

// NewRealCommandExecutor は新しいRealCommandExecutorを作成する
func NewRealCommandExecutor() CommandExecutor {
	return &RealCommandExecutor{}
}

// Execute はコマンドを実行し、標準出力を返す
func (r *RealCommandExecutor) Execute(ctx context.Context, stdin io.Reader, command string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		exitCode := -1
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			exitCode = exitError.ExitCode()
		}
		return "", &ExecError{
			Command:  command,
			Args:     args,
			ExitCode: exitCode,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}

	return stdout.String(), nil
}
