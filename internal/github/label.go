package github

import (
	"context"
	"errors"
	"fmt"
)

const labelIDQuery = `
query($owner: String!, $name: String!, $labelName: String!) {
  repository(owner: $owner, name: $name) {
    label(name: $labelName) {
      id
    }
  }
}`

const createLabelMutation = `
mutation($repositoryId: ID!, $name: String!, $color: String!, $description: String) {
  createLabel(input: {repositoryId: $repositoryId, name: $name, color: $color, description: $description}) {
    label {
      id
    }
  }
}`

const addLabelsMutation = `
mutation($labelableId: ID!, $labelIds: [ID!]!) {
  addLabelsToLabelable(input: {labelableId: $labelableId, labelIds: $labelIds}) {
    clientMutationId
  }
}`

// LabelID は名前でラベルを検索する。存在しない場合はfound=falseを返す
func (s *Service) LabelID(ctx context.Context, repo RepositoryRef, name string) (id string, found bool, err error) {
	var result struct {
		Repository *struct {
			Label *struct {
				ID string `json:"id"`
			} `json:"label"`
		} `json:"repository"`
	}

	err = s.runner.Run(ctx, labelIDQuery, map[string]interface{}{
		"owner":     repo.Owner,
		"name":      repo.Name,
		"labelName": name,
	}, &result)
	if err != nil {
		return "", false, fmt.Errorf("failed to look up label %q in %s: %w", name, repo, err)
	}

	if result.Repository == nil {
		return "", false, newNotFoundError("repository %s not found", repo)
	}
	if result.Repository.Label == nil || result.Repository.Label.ID == "" {
		return "", false, nil
	}

	return result.Repository.Label.ID, true, nil
}

// CreateLabel はリポジトリに新しいラベルを作成し、そのIDを返す
func (s *Service) CreateLabel(ctx context.Context, repositoryID string, label LabelDefinition) (string, error) {
	var result struct {
		CreateLabel *struct {
			Label *struct {
				ID string `json:"id"`
			} `json:"label"`
		} `json:"createLabel"`
	}

	variables := map[string]interface{}{
		"repositoryId": repositoryID,
		"name":         label.Name,
		"color":        label.Color,
		"description":  nil,
	}
	if label.Description != "" {
		variables["description"] = label.Description
	}

	if err := s.runner.Run(ctx, createLabelMutation, variables, &result); err != nil {
		return "", fmt.Errorf("failed to create label %q: %w", label.Name, err)
	}

	if result.CreateLabel == nil || result.CreateLabel.Label == nil || result.CreateLabel.Label.ID == "" {
		return "", fmt.Errorf("createLabel returned no label for %q", label.Name)
	}

	return result.CreateLabel.Label.ID, nil
}

// AddLabels はラベル付け可能なエンティティにラベルを付与する
func (s *Service) AddLabels(ctx context.Context, labelableID string, labelIDs ...string) error {
	if labelableID == "" {
		return errors.New("labelable ID is required")
	}
	if len(labelIDs) == 0 {
		return errors.New("labels cannot be empty")
	}

	err := s.runner.Run(ctx, addLabelsMutation, map[string]interface{}{
		"labelableId": labelableID,
		"labelIds":    labelIDs,
	}, nil)
	if err != nil {
		return fmt.Errorf("addLabelsToLabelable mutation failed: %w", err)
	}
	return nil
}
