package builders

import (
	"fmt"

	"github.com/douhashi/issue-transfer/internal/github"
)

// DefaultStatusField はビルダーが使うステータスフィールド名
const DefaultStatusField = "Status"

// ProjectPageBuilder builds github.ProjectItemsPage instances for testing
type ProjectPageBuilder struct {
	page *github.ProjectItemsPage
}

// NewProjectPageBuilder creates a new builder for a final (no next page) page
func NewProjectPageBuilder() *ProjectPageBuilder {
	return &ProjectPageBuilder{page: &github.ProjectItemsPage{}}
}

// WithIssue adds an issue item whose Status field has the given value.
// An empty status adds the issue without any single-select value.
func (b *ProjectPageBuilder) WithIssue(number int, status string) *ProjectPageBuilder {
	item := github.ProjectItem{
		Issue: &github.IssueRef{Number: number, ID: fmt.Sprintf("I_%d", number)},
	}
	if status != "" {
		item.StatusValues = []github.FieldValue{{Name: status, FieldName: DefaultStatusField}}
	}
	b.page.Items = append(b.page.Items, item)
	return b
}

// WithItem adds an arbitrary item
func (b *ProjectPageBuilder) WithItem(item github.ProjectItem) *ProjectPageBuilder {
	b.page.Items = append(b.page.Items, item)
	return b
}

// WithNonIssue adds an item without issue content (draft issue, pull request, ...)
func (b *ProjectPageBuilder) WithNonIssue(status string) *ProjectPageBuilder {
	return b.WithItem(github.ProjectItem{
		StatusValues: []github.FieldValue{{Name: status, FieldName: DefaultStatusField}},
	})
}

// WithNextPage marks the page as having a following page
func (b *ProjectPageBuilder) WithNextPage(cursor string) *ProjectPageBuilder {
	b.page.HasNextPage = true
	b.page.EndCursor = cursor
	return b
}

// Build returns the built page
func (b *ProjectPageBuilder) Build() *github.ProjectItemsPage {
	return b.page
}
