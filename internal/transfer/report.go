package transfer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// IssueStatus は1件のIssueの処理結果
type IssueStatus string

const (
	IssueSkipped     IssueStatus = "skipped"
	IssueSimulated   IssueStatus = "simulated"
	IssueTransferred IssueStatus = "transferred"
	IssueFailed      IssueStatus = "failed"
)

// IssueReport は1件のIssueの処理結果を記録する
type IssueReport struct {
	Number    int         `yaml:"number" json:"number"`
	Status    IssueStatus `yaml:"status" json:"status"`
	NewNumber int         `yaml:"new_number,omitempty" json:"new_number,omitempty"`
	URL       string      `yaml:"url,omitempty" json:"url,omitempty"`
	Label     string      `yaml:"label" json:"label"`
	Error     string      `yaml:"error,omitempty" json:"error,omitempty"`
}

// Report は1回の実行結果
type Report struct {
	RunID      string        `yaml:"run_id" json:"run_id"`
	Source     string        `yaml:"source" json:"source"`
	Target     string        `yaml:"target" json:"target"`
	ProjectID  string        `yaml:"project_id,omitempty" json:"project_id,omitempty"`
	Status     string        `yaml:"status" json:"status"`
	DryRun     bool          `yaml:"dry_run" json:"dry_run"`
	StartedAt  time.Time     `yaml:"started_at" json:"started_at"`
	FinishedAt time.Time     `yaml:"finished_at" json:"finished_at"`
	Candidates []int         `yaml:"candidates" json:"candidates"`
	Issues     []IssueReport `yaml:"issues" json:"issues"`
}

// Summary は結果種別ごとの件数
type Summary struct {
	Candidates  int
	Transferred int
	Simulated   int
	Skipped     int
	Failed      int
	LabelFailed int
}

func (s Summary) String() string {
	return fmt.Sprintf("candidates=%d transferred=%d simulated=%d skipped=%d failed=%d label_failed=%d",
		s.Candidates, s.Transferred, s.Simulated, s.Skipped, s.Failed, s.LabelFailed)
}

// Summary は結果を集計する
func (r *Report) Summary() Summary {
	s := Summary{Candidates: len(r.Candidates)}
	for _, issue := range r.Issues {
		switch issue.Status {
		case IssueTransferred:
			s.Transferred++
		case IssueSimulated:
			s.Simulated++
		case IssueSkipped:
			s.Skipped++
		case IssueFailed:
			s.Failed++
		}
		if issue.Label == LabelFailed.String() {
			s.LabelFailed++
		}
	}
	return s
}

func (r *Report) add(issue IssueReport) {
	r.Issues = append(r.Issues, issue)
}

// WriteFile はレポートをファイルに書き出す。拡張子が.jsonならJSON、それ以外はYAML
func (r *Report) WriteFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = yaml.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
