package github

import (
	"context"
	"errors"
	"fmt"
)

const transferIssueMutation = `
mutation($issueId: ID!, $repositoryId: ID!) {
  transferIssue(input: {issueId: $issueId, repositoryId: $repositoryId}) {
    issue {
      id
      number
      title
      url
    }
  }
}`

// TransferIssue はIssueを別リポジトリへ転送し、転送先のIssueを返す
func (s *Service) TransferIssue(ctx context.Context, issueID, targetRepositoryID string) (*TransferResult, error) {
	if issueID == "" || targetRepositoryID == "" {
		return nil, errors.New("issue ID and target repository ID are required")
	}

	var result struct {
		TransferIssue *struct {
			Issue *struct {
				ID     string `json:"id"`
				Number int    `json:"number"`
				Title  string `json:"title"`
				URL    string `json:"url"`
			} `json:"issue"`
		} `json:"transferIssue"`
	}

	err := s.runner.Run(ctx, transferIssueMutation, map[string]interface{}{
		"issueId":      issueID,
		"repositoryId": targetRepositoryID,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("transferIssue mutation failed: %w", err)
	}

	if result.TransferIssue == nil || result.TransferIssue.Issue == nil || result.TransferIssue.Issue.ID == "" {
		return nil, errors.New("transferIssue returned no issue")
	}

	issue := result.TransferIssue.Issue
	return &TransferResult{
		ID:     issue.ID,
		Number: issue.Number,
		Title:  issue.Title,
		URL:    issue.URL,
	}, nil
}
