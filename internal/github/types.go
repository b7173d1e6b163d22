package github

import (
	"fmt"
	"strings"
)

// RepositoryRef は owner/name で表されるリポジトリ参照
type RepositoryRef struct {
	Owner string
	Name  string
}

// ParseRepositoryRef は "owner/name" 形式の文字列をRepositoryRefに変換する
func ParseRepositoryRef(s string) (RepositoryRef, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return RepositoryRef{}, fmt.Errorf("invalid repository %q: expected 'owner/name'", s)
	}
	owner, name := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if owner == "" || name == "" {
		return RepositoryRef{}, fmt.Errorf("invalid repository %q: owner and name cannot be empty", s)
	}
	return RepositoryRef{Owner: owner, Name: name}, nil
}

// String は "owner/name" 形式で返す
func (r RepositoryRef) String() string {
	if r.IsZero() {
		return ""
	}
	return r.Owner + "/" + r.Name
}

// IsZero は未設定かどうかを返す
func (r RepositoryRef) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// IssueRef はリポジトリ内のIssue番号とGraphQLのnode IDの組
type IssueRef struct {
	Number int
	ID     string
}

// FieldValue はプロジェクトアイテムのsingle-selectフィールド値
type FieldValue struct {
	// Name は選択されているオプションの表示名
	Name string
	// FieldName はフィールド自体の名前（例: "Status"）
	FieldName string
}

// ProjectItem はProjectV2のアイテム。Issue以外のコンテンツではIssueはnil
type ProjectItem struct {
	Issue        *IssueRef
	StatusValues []FieldValue
}

// ProjectItemsPage はアイテムの1ページ分
type ProjectItemsPage struct {
	Items       []ProjectItem
	EndCursor   string
	HasNextPage bool
}

// LabelDefinition defines a GitHub label with its properties
type LabelDefinition struct {
	Name        string
	Color       string
	Description string
}

// TransferResult は転送後のターゲットリポジトリ側のIssue
type TransferResult struct {
	ID     string
	Number int
	Title  string
	URL    string
}
