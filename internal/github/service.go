package github

import "errors"

// Service はIssue転送に必要なGraphQL操作をまとめたもの。実行はRunnerに委譲する
type Service struct {
	runner Runner
}

// NewService は新しいServiceを作成する
func NewService(runner Runner) (*Service, error) {
	if runner == nil {
		return nil, errors.New("runner is required")
	}
	return &Service{runner: runner}, nil
}
