package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/douhashi/issue-transfer/internal/github"
)

// LabelAPI はラベルの検索・作成・付与に必要なGitHub操作
type LabelAPI interface {
	LabelID(ctx context.Context, repo github.RepositoryRef, name string) (string, bool, error)
	CreateLabel(ctx context.Context, repositoryID string, label github.LabelDefinition) (string, error)
	AddLabels(ctx context.Context, labelableID string, labelIDs ...string) error
}

// LabelTarget はラベルを管理するリポジトリ
type LabelTarget struct {
	Repo github.RepositoryRef
	// ID はcreateLabelに渡すリポジトリのノードID
	ID string
}

// LabelManager は転送されたIssueに設定済みのラベルを付与する
//
// ラベルは必ず検索してから作成する。解決したラベルIDは同じLabelManagerの間は使い回す。
type LabelManager struct {
	api    LabelAPI
	target LabelTarget
	label  github.LabelDefinition
	dryRun bool

	labelID string
}

// NewLabelManager は新しいLabelManagerを作成する
func NewLabelManager(api LabelAPI, target LabelTarget, label github.LabelDefinition, dryRun bool) (*LabelManager, error) {
	if api == nil {
		return nil, errors.New("label API is required")
	}
	if label.Name == "" {
		return nil, errors.New("label name is required")
	}
	if target.Repo.IsZero() {
		return nil, errors.New("label target repository is required")
	}
	return &LabelManager{
		api:    api,
		target: target,
		label:  label,
		dryRun: dryRun,
	}, nil
}

// Apply はlabelableIDで示されるIssueにラベルを付与する。エラーは結果として返し、呼び出し元には伝播しない
func (m *LabelManager) Apply(ctx context.Context, labelableID string) LabelOutcome {
	if m.dryRun {
		return LabelOutcome{Status: LabelSimulated}
	}

	labelID, created, err := m.resolve(ctx)
	if err != nil {
		return LabelOutcome{Status: LabelFailed, Err: err}
	}

	if err := m.api.AddLabels(ctx, labelableID, labelID); err != nil {
		return LabelOutcome{
			Status:  LabelFailed,
			LabelID: labelID,
			Err:     fmt.Errorf("failed to add label %q to %s: %w", m.label.Name, labelableID, err),
		}
	}

	status := LabelAttached
	if created {
		status = LabelCreated
	}
	return LabelOutcome{Status: status, LabelID: labelID}
}

func (m *LabelManager) resolve(ctx context.Context) (string, bool, error) {
	if m.labelID != "" {
		return m.labelID, false, nil
	}

	id, found, err := m.api.LabelID(ctx, m.target.Repo, m.label.Name)
	if err != nil {
		return "", false, err
	}
	if found {
		m.labelID = id
		return id, false, nil
	}

	if m.target.ID == "" {
		return "", false, fmt.Errorf("cannot create label %q: repository ID of %s is unknown", m.label.Name, m.target.Repo)
	}
	id, err = m.api.CreateLabel(ctx, m.target.ID, m.label)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", m.target.Repo, err)
	}
	m.labelID = id
	return id, true, nil
}
