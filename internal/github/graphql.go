package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Runner はGraphQLのクエリ/ミューテーションを実行できるもの
type Runner interface {
	Run(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors GraphQLErrors   `json:"errors,omitempty"`
}

// decode はerrorsがあれば分類したエラーを返し、なければdataをoutにデコードする
func (r *graphQLResponse) decode(out interface{}) error {
	if len(r.Errors) > 0 {
		return ClassifyError(r.Errors)
	}

	if out == nil || len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(r.Data, out); err != nil {
		return fmt.Errorf("failed to parse GraphQL response: %w", err)
	}
	return nil
}

// EncodeGraphQLRequest はGraphQLリクエストのボディを作る
func EncodeGraphQLRequest(query string, variables map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(&graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode GraphQL request: %w", err)
	}
	return body, nil
}

// DecodeGraphQLResponse はGraphQLレスポンスのボディを解釈し、dataをoutにデコードする
func DecodeGraphQLResponse(body []byte, out interface{}) error {
	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse GraphQL response: %w", err)
	}
	return resp.decode(out)
}

// GraphQLError はGraphQLレスポンスのerrors要素
type GraphQLError struct {
	Type    string        `json:"type"`
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// GraphQLErrors はGraphQLレスポンスに含まれるエラーの集合
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, gqlErr := range e {
		messages = append(messages, gqlErr.Message)
	}
	return "GraphQL error: " + strings.Join(messages, "; ")
}

// hasType は指定されたtypeのエラーが含まれるか
func (e GraphQLErrors) hasType(errType string) bool {
	for _, gqlErr := range e {
		if gqlErr.Type == errType {
			return true
		}
	}
	return false
}
