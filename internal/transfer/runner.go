package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/douhashi/issue-transfer/internal/github"
	"github.com/douhashi/issue-transfer/internal/logger"
	"github.com/douhashi/issue-transfer/internal/project"
)

// lowRateLimitThreshold を下回る残量で開始した場合は警告を出す
const lowRateLimitThreshold = 100

// GitHubAPI はRunnerが必要とするGitHub操作
type GitHubAPI interface {
	RepositoryID(ctx context.Context, repo github.RepositoryRef) (string, error)
	IssueID(ctx context.Context, repo github.RepositoryRef, number int) (string, error)
	IssueTransferer
	LabelAPI
}

// CandidateFetcher はプロジェクトから転送候補のIssue番号を取得する
type CandidateFetcher interface {
	FetchIssuesToTransfer(ctx context.Context, projectID string, filter project.StatusFilter) ([]int, error)
}

// RateLimitReporter はGraphQL APIのレート制限の残量を返す
type RateLimitReporter interface {
	GetGraphQLRateLimit(ctx context.Context) (*github.RateLimit, error)
}

// Options は1回の実行内容
type Options struct {
	Source    github.RepositoryRef
	Target    github.RepositoryRef
	ProjectID string
	Filter    project.StatusFilter
	// Issues が空でなければプロジェクトを検索せずにこの順で処理する
	Issues []int
	DryRun bool
	Label  github.LabelDefinition
}

// RunnerOption はRunnerの設定オプション
type RunnerOption func(*Runner)

// WithRateLimitReporter は開始前にレート制限の残量をログに出す
func WithRateLimitReporter(reporter RateLimitReporter) RunnerOption {
	return func(r *Runner) {
		r.rateLimit = reporter
	}
}

// WithClock はテスト用に時刻の取得方法を差し替える
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

// Runner は対象Issueの取得から転送・ラベル付与までを順に実行する
type Runner struct {
	api        GitHubAPI
	candidates CandidateFetcher
	rateLimit  RateLimitReporter
	opts       Options
	logger     logger.Logger
	now        func() time.Time
}

// NewRunner は新しいRunnerを作成する
func NewRunner(api GitHubAPI, candidates CandidateFetcher, opts Options, log logger.Logger, options ...RunnerOption) (*Runner, error) {
	if api == nil {
		return nil, errors.New("GitHub API is required")
	}
	if candidates == nil && len(opts.Issues) == 0 {
		return nil, errors.New("candidate fetcher is required when no issue numbers are given")
	}
	if opts.Source.IsZero() || opts.Target.IsZero() {
		return nil, errors.New("source and target repository are required")
	}
	if log == nil {
		log = logger.NewNop()
	}

	r := &Runner{
		api:        api,
		candidates: candidates,
		opts:       opts,
		logger:     log,
		now:        time.Now,
	}
	for _, o := range options {
		o(r)
	}
	return r, nil
}

// Run は転送を実行する
//
// 返すエラーは続行できない場合だけ。Issue単位の失敗はReportに記録して次に進む。
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	log := r.logger.WithFields("run_id", runID)

	report := &Report{
		RunID:     runID,
		Source:    r.opts.Source.String(),
		Target:    r.opts.Target.String(),
		ProjectID: r.opts.ProjectID,
		Status:    r.opts.Filter.String(),
		DryRun:    r.opts.DryRun,
		StartedAt: r.now(),
	}
	defer func() {
		report.FinishedAt = r.now()
	}()

	r.logSummary(log)

	targetID, err := r.api.RepositoryID(ctx, r.opts.Target)
	if err != nil {
		log.Error("Failed to resolve target repository",
			"target", r.opts.Target.String(),
			"error", err)
		return report, fmt.Errorf("failed to resolve target repository %s: %w", r.opts.Target, err)
	}
	log.Debug("Resolved target repository", "target", r.opts.Target.String(), "repository_id", targetID)

	r.checkRateLimit(ctx, log)

	candidates, err := r.fetchCandidates(ctx)
	if err != nil {
		log.Error("Failed to fetch issues to transfer",
			"project_id", r.opts.ProjectID,
			"error", err)
		return report, fmt.Errorf("failed to fetch issues to transfer: %w", err)
	}
	report.Candidates = candidates

	if len(candidates) == 0 {
		log.Info("No issues to transfer", "status", r.opts.Filter.String())
		return report, nil
	}
	log.Info("Found issues to transfer",
		"count", len(candidates),
		"issues", candidates)

	labels, err := NewLabelManager(r.api, LabelTarget{Repo: r.opts.Target, ID: targetID}, r.opts.Label, r.opts.DryRun)
	if err != nil {
		return report, err
	}
	executor, err := NewExecutor(r.api, labels, r.opts.DryRun)
	if err != nil {
		return report, err
	}

	for i, number := range candidates {
		if err := ctx.Err(); err != nil {
			log.Warn("Transfer interrupted",
				"processed", i,
				"remaining", len(candidates)-i)
			return report, err
		}
		report.add(r.processIssue(ctx, log, executor, number, targetID))
	}

	log.Info("Transfer finished", "summary", report.Summary().String())
	return report, nil
}

func (r *Runner) fetchCandidates(ctx context.Context) ([]int, error) {
	if len(r.opts.Issues) > 0 {
		issues := make([]int, len(r.opts.Issues))
		copy(issues, r.opts.Issues)
		return issues, nil
	}
	return r.candidates.FetchIssuesToTransfer(ctx, r.opts.ProjectID, r.opts.Filter)
}

func (r *Runner) processIssue(ctx context.Context, log logger.Logger, executor *Executor, number int, targetID string) IssueReport {
	log = log.WithFields("issue", number)

	issueID, err := r.api.IssueID(ctx, r.opts.Source, number)
	if err != nil {
		log.Warn("Issue not found in source repository, skipping",
			"source", r.opts.Source.String(),
			"error", err)
		return IssueReport{
			Number: number,
			Status: IssueSkipped,
			Label:  LabelNotAttempted.String(),
			Error:  err.Error(),
		}
	}

	if r.opts.DryRun {
		log.Info("Dry run: would transfer issue",
			"from", r.opts.Source.String(),
			"to", r.opts.Target.String(),
			"label", r.opts.Label.Name)
	} else {
		log.Info("Transferring issue",
			"from", r.opts.Source.String(),
			"to", r.opts.Target.String())
	}

	outcome := executor.Transfer(ctx, github.IssueRef{Number: number, ID: issueID}, targetID)
	entry := IssueReport{
		Number: number,
		Label:  outcome.Label.Status.String(),
	}

	switch outcome.Status {
	case OutcomeSimulated:
		entry.Status = IssueSimulated
	case OutcomeFailed:
		entry.Status = IssueFailed
		entry.Error = outcome.Err.Error()
		log.Error("Failed to transfer issue", "error", outcome.Err)
	case OutcomeTransferred:
		entry.Status = IssueTransferred
		entry.NewNumber = outcome.Result.Number
		entry.URL = outcome.Result.URL
		log.Info("Successfully transferred issue",
			"new_number", outcome.Result.Number,
			"url", outcome.Result.URL)
		r.logLabelOutcome(log, outcome.Label, &entry)
	}

	return entry
}

func (r *Runner) logLabelOutcome(log logger.Logger, outcome LabelOutcome, entry *IssueReport) {
	switch outcome.Status {
	case LabelCreated:
		log.Info("Created label and attached it",
			"label", r.opts.Label.Name,
			"label_id", outcome.LabelID)
	case LabelAttached:
		log.Info("Attached label", "label", r.opts.Label.Name)
	case LabelFailed:
		entry.Error = outcome.Err.Error()
		log.Error("Failed to label transferred issue",
			"label", r.opts.Label.Name,
			"error", outcome.Err)
	}
}

func (r *Runner) logSummary(log logger.Logger) {
	mode := "live"
	if r.opts.DryRun {
		mode = "dry-run"
	}

	fields := []interface{}{
		"mode", mode,
		"source", r.opts.Source.String(),
		"target", r.opts.Target.String(),
		"label", r.opts.Label.Name,
		"label_color", r.opts.Label.Color,
	}
	if len(r.opts.Issues) > 0 {
		fields = append(fields, "issues", r.opts.Issues)
	} else {
		fields = append(fields,
			"project_id", r.opts.ProjectID,
			"status", r.opts.Filter.String())
	}
	log.Info("Starting issue transfer", fields...)
}

func (r *Runner) checkRateLimit(ctx context.Context, log logger.Logger) {
	if r.rateLimit == nil {
		return
	}

	limit, err := r.rateLimit.GetGraphQLRateLimit(ctx)
	if err != nil {
		log.Warn("Failed to get GraphQL rate limit", "error", err)
		return
	}

	fields := []interface{}{
		"remaining", limit.Remaining,
		"limit", limit.Limit,
		"reset", limit.Reset.Format(time.RFC3339),
	}
	if limit.Remaining < lowRateLimitThreshold {
		log.Warn("GraphQL rate limit is running low", fields...)
		return
	}
	log.Debug("GraphQL rate limit", fields...)
}
