package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/douhashi/issue-transfer/internal/github"
)

// IssueTransferer はtransferIssueミューテーションを実行する
type IssueTransferer interface {
	TransferIssue(ctx context.Context, issueID, targetRepositoryID string) (*github.TransferResult, error)
}

// LabelApplier は転送後のIssueにラベルを付与する
type LabelApplier interface {
	Apply(ctx context.Context, labelableID string) LabelOutcome
}

// Executor は1件のIssueを転送し、転送先のIssueにラベルを付与する
type Executor struct {
	transferer IssueTransferer
	labels     LabelApplier
	dryRun     bool
}

// NewExecutor は新しいExecutorを作成する
func NewExecutor(transferer IssueTransferer, labels LabelApplier, dryRun bool) (*Executor, error) {
	if transferer == nil {
		return nil, errors.New("transferer is required")
	}
	if labels == nil {
		return nil, errors.New("label applier is required")
	}
	return &Executor{
		transferer: transferer,
		labels:     labels,
		dryRun:     dryRun,
	}, nil
}

// Transfer はissueをtargetRepoIDのリポジトリへ転送する
//
// dry-runではミューテーションもラベル付与も行わない。
// ラベルは転送先で新しく採番されたIssueのIDに対して付与する。
func (e *Executor) Transfer(ctx context.Context, issue github.IssueRef, targetRepoID string) Outcome {
	if e.dryRun {
		return Outcome{
			Status: OutcomeSimulated,
			Label:  LabelOutcome{Status: LabelSimulated},
		}
	}

	if issue.ID == "" {
		return Outcome{Status: OutcomeFailed, Err: fmt.Errorf("issue #%d has no node ID", issue.Number)}
	}

	result, err := e.transferer.TransferIssue(ctx, issue.ID, targetRepoID)
	if err != nil {
		return Outcome{
			Status: OutcomeFailed,
			Err:    fmt.Errorf("failed to transfer issue #%d: %w", issue.Number, err),
		}
	}

	return Outcome{
		Status: OutcomeTransferred,
		Result: result,
		Label:  e.labels.Apply(ctx, result.ID),
	}
}
