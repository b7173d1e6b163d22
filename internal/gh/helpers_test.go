package gh

import (
	"context"
	"io"
)

// mockCommandExecutor はテスト用のモック実装
type mockCommandExecutor struct {
	executeFunc func(ctx context.Context, stdin []byte, command string, args ...string) (string, error)
	calls       [][]string
}

func (m *mockCommandExecutor) Execute(ctx context.Context, stdin io.Reader, command string, args ...string) (string, error) {
	m.calls = append(m.calls, append([]string{command}, args...))

	var input []byte
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		input = data
	}
	if m.executeFunc != nil {
		return m.executeFunc(ctx, input, command, args...)
	}
	return "", nil
}
