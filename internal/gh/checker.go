package gh

import (
	"context"
	"errors"
)

// CheckInstalled はghコマンドがインストールされているかチェックする
func CheckInstalled(ctx context.Context, executor CommandExecutor) (bool, error) {
	_, err := executor.Execute(ctx, nil, "gh", "--version")
	if err != nil {
		var execErr *ExecError
		if errors.As(err, &execErr) {
			// コマンドが見つからない場合は、インストールされていないと判断
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckAuth はghコマンドが認証済みかチェックする
func CheckAuth(ctx context.Context, executor CommandExecutor) (bool, error) {
	_, err := executor.Execute(ctx, nil, "gh", "auth", "status")
	if err != nil {
		var execErr *ExecError
		if errors.As(err, &execErr) && execErr.ExitCode == 1 {
			// ExitCode 1 は未認証を示す
			return false, nil
		}
		return false, err
	}
	return true, nil
}
