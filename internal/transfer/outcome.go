// Package transfer はIssueの転送とラベル付与、その一連の流れの実行を担う
package transfer

import "github.com/douhashi/issue-transfer/internal/github"

// OutcomeStatus は1件のIssue転送の結果種別
type OutcomeStatus int

const (
	// OutcomeSimulated はdry-runのため何も変更しなかったことを示す
	OutcomeSimulated OutcomeStatus = iota
	// OutcomeTransferred は転送に成功したことを示す
	OutcomeTransferred
	// OutcomeFailed は転送ミューテーションが失敗したことを示す
	OutcomeFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeSimulated:
		return "simulated"
	case OutcomeTransferred:
		return "transferred"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome はExecutor.Transferの結果
type Outcome struct {
	Status OutcomeStatus
	// Result は転送先で作られたIssue。OutcomeTransferredの場合のみ設定される
	Result *github.TransferResult
	Label  LabelOutcome
	Err    error
}

// LabelStatus はラベル付与の結果種別
type LabelStatus int

const (
	// LabelNotAttempted は転送が行われなかったためラベル付与を試みていないことを示す
	LabelNotAttempted LabelStatus = iota
	// LabelSimulated はdry-runのためラベルを解決・付与していないことを示す
	LabelSimulated
	// LabelAttached は既存のラベルを付与したことを示す
	LabelAttached
	// LabelCreated はラベルを作成してから付与したことを示す
	LabelCreated
	// LabelFailed はラベルの解決・作成・付与のいずれかが失敗したことを示す
	LabelFailed
)

func (s LabelStatus) String() string {
	switch s {
	case LabelNotAttempted:
		return "none"
	case LabelSimulated:
		return "simulated"
	case LabelAttached:
		return "attached"
	case LabelCreated:
		return "created"
	case LabelFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LabelOutcome はLabelManager.Applyの結果
type LabelOutcome struct {
	Status  LabelStatus
	LabelID string
	Err     error
}
