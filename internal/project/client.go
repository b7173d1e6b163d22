// Package project はGitHub Projects (v2) のボードから転送対象のIssue番号を抽出する
package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/douhashi/issue-transfer/internal/github"
)

// ErrProjectNotFound はプロジェクトが存在しないかアクセスできないことを示す
var ErrProjectNotFound = github.ErrProjectNotFound

// ItemsPager はProjectV2のアイテムをページ単位で取得する
type ItemsPager interface {
	ProjectItems(ctx context.Context, projectID, after string) (*github.ProjectItemsPage, error)
}

// Client はプロジェクトのアイテムを全ページ走査してIssue番号を抽出する
type Client struct {
	pager ItemsPager
}

// NewClient は新しいClientを作成する
func NewClient(pager ItemsPager) (*Client, error) {
	if pager == nil {
		return nil, errors.New("pager is required")
	}
	return &Client{pager: pager}, nil
}

// FetchIssuesToTransfer はフィルタに一致するIssue番号をボード上の順序で返す
//
// サーバーがhasNextPage=falseを返すまでページを辿る。
// 同じIssueが複数回現れた場合は最初の1件だけを残す。
func (c *Client) FetchIssuesToTransfer(ctx context.Context, projectID string, filter StatusFilter) ([]int, error) {
	if projectID == "" {
		return nil, errors.New("project ID is required")
	}

	var (
		issues []int
		seen   = make(map[int]bool)
		after  string
	)

	for {
		page, err := c.pager.ProjectItems(ctx, projectID, after)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.Issue == nil || !filter.Matches(item) {
				continue
			}
			if seen[item.Issue.Number] {
				continue
			}
			seen[item.Issue.Number] = true
			issues = append(issues, item.Issue.Number)
		}

		if !page.HasNextPage {
			return issues, nil
		}
		if page.EndCursor == "" || page.EndCursor == after {
			return nil, fmt.Errorf("project %s reported a next page without advancing the cursor", projectID)
		}
		after = page.EndCursor
	}
}
