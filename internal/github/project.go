package github

import (
	"context"
	"fmt"
)

// ProjectItemsPageSize はProjectV2アイテムの1ページあたりの取得件数
const ProjectItemsPageSize = 100

const (
	typeNameIssue             = "Issue"
	typeNameSingleSelectValue = "ProjectV2ItemFieldSingleSelectValue"
)

const projectItemsQuery = `
query($projectId: ID!, $first: Int!, $after: String) {
  node(id: $projectId) {
    ... on ProjectV2 {
      items(first: $first, after: $after) {
        nodes {
          content {
            __typename
            ... on Issue {
              number
              id
            }
          }
          fieldValues(first: 100) {
            nodes {
              __typename
              ... on ProjectV2ItemFieldSingleSelectValue {
                name
                field {
                  ... on ProjectV2FieldCommon {
                    name
                  }
                }
              }
            }
          }
        }
        pageInfo {
          endCursor
          hasNextPage
        }
      }
    }
  }
}`

type projectItemsResponse struct {
	Node *struct {
		Items *struct {
			Nodes []struct {
				Content *struct {
					TypeName string `json:"__typename"`
					Number   int    `json:"number"`
					ID       string `json:"id"`
				} `json:"content"`
				FieldValues struct {
					Nodes []struct {
						TypeName string `json:"__typename"`
						Name     string `json:"name"`
						Field    *struct {
							Name string `json:"name"`
						} `json:"field"`
					} `json:"nodes"`
				} `json:"fieldValues"`
			} `json:"nodes"`
			PageInfo struct {
				EndCursor   string `json:"endCursor"`
				HasNextPage bool   `json:"hasNextPage"`
			} `json:"pageInfo"`
		} `json:"items"`
	} `json:"node"`
}

// ProjectItems はProjectV2のアイテムを1ページ取得する。afterが空の場合は先頭から取得する
//
// ノードやアイテム一覧が存在しない場合はErrProjectNotFoundを返す
func (s *Service) ProjectItems(ctx context.Context, projectID, after string) (*ProjectItemsPage, error) {
	variables := map[string]interface{}{
		"projectId": projectID,
		"first":     ProjectItemsPageSize,
		"after":     nil,
	}
	if after != "" {
		variables["after"] = after
	}

	var result projectItemsResponse
	if err := s.runner.Run(ctx, projectItemsQuery, variables, &result); err != nil {
		if IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrProjectNotFound, projectID, err)
		}
		return nil, fmt.Errorf("failed to fetch items of project %s: %w", projectID, err)
	}

	if result.Node == nil || result.Node.Items == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	page := &ProjectItemsPage{
		Items:       make([]ProjectItem, 0, len(result.Node.Items.Nodes)),
		EndCursor:   result.Node.Items.PageInfo.EndCursor,
		HasNextPage: result.Node.Items.PageInfo.HasNextPage,
	}

	for _, node := range result.Node.Items.Nodes {
		item := ProjectItem{}
		if node.Content != nil && node.Content.TypeName == typeNameIssue {
			item.Issue = &IssueRef{Number: node.Content.Number, ID: node.Content.ID}
		}
		for _, value := range node.FieldValues.Nodes {
			if value.TypeName != typeNameSingleSelectValue {
				continue
			}
			fv := FieldValue{Name: value.Name}
			if value.Field != nil {
				fv.FieldName = value.Field.Name
			}
			item.StatusValues = append(item.StatusValues, fv)
		}
		page.Items = append(page.Items, item)
	}

	return page, nil
}
