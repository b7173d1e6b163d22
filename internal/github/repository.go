package github

import (
	"context"
	"fmt"
)

const repositoryIDQuery = `
query($owner: String!, $name: String!) {
  repository(owner: $owner, name: $name) {
    id
  }
}`

const issueIDQuery = `
query($owner: String!, $name: String!, $number: Int!) {
  repository(owner: $owner, name: $name) {
    issue(number: $number) {
      id
    }
  }
}`

// RepositoryID はリポジトリのnode IDを取得する
func (s *Service) RepositoryID(ctx context.Context, repo RepositoryRef) (string, error) {
	if repo.Owner == "" || repo.Name == "" {
		return "", fmt.Errorf("owner and name are required")
	}

	var result struct {
		Repository *struct {
			ID string `json:"id"`
		} `json:"repository"`
	}

	err := s.runner.Run(ctx, repositoryIDQuery, map[string]interface{}{
		"owner": repo.Owner,
		"name":  repo.Name,
	}, &result)
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository %s: %w", repo, err)
	}

	if result.Repository == nil || result.Repository.ID == "" {
		return "", newNotFoundError("repository %s not found", repo)
	}

	return result.Repository.ID, nil
}

// IssueID はリポジトリ内のIssue番号からnode IDを取得する
func (s *Service) IssueID(ctx context.Context, repo RepositoryRef, number int) (string, error) {
	if number <= 0 {
		return "", fmt.Errorf("invalid issue number: %d", number)
	}

	var result struct {
		Repository *struct {
			Issue *struct {
				ID string `json:"id"`
			} `json:"issue"`
		} `json:"repository"`
	}

	err := s.runner.Run(ctx, issueIDQuery, map[string]interface{}{
		"owner":  repo.Owner,
		"name":   repo.Name,
		"number": number,
	}, &result)
	if err != nil {
		return "", fmt.Errorf("failed to resolve issue %s#%d: %w", repo, number, err)
	}

	if result.Repository == nil || result.Repository.Issue == nil || result.Repository.Issue.ID == "" {
		return "", newNotFoundError("issue %s#%d not found", repo, number)
	}

	return result.Repository.Issue.ID, nil
}
