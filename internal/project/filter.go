package project

import "github.com/douhashi/issue-transfer/internal/github"

// StatusFilter はsingle-selectフィールドの値でアイテムを絞り込む
//
// Statusが空の場合はステータスに関係なく全てのIssueアイテムに一致する。
// Fieldが空の場合はどのsingle-selectフィールドの値でも一致とみなすため、
// ステータス以外のsingle-selectフィールドに同名のオプションがあると誤って一致する。
type StatusFilter struct {
	Status string
	Field  string
}

// Matches はアイテムがフィルタに一致するかを返す
func (f StatusFilter) Matches(item github.ProjectItem) bool {
	if item.Issue == nil {
		return false
	}
	if f.Status == "" {
		return true
	}
	for _, value := range item.StatusValues {
		if f.Field != "" && value.FieldName != f.Field {
			continue
		}
		if value.Name == f.Status {
			return true
		}
	}
	return false
}

// String はログ出力用の表現を返す
func (f StatusFilter) String() string {
	status := f.Status
	if status == "" {
		status = "(any)"
	}
	if f.Field == "" {
		return status
	}
	return f.Field + "=" + status
}
