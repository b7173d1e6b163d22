package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGitHub はissue-transferが使うGraphQL操作だけを模したテスト用サーバー
type fakeGitHub struct {
	t  *testing.T
	mu sync.Mutex

	// items はプロジェクトのIssue番号とステータス
	items   []fakeItem
	missing map[int]bool
	// projectMissing がtrueの場合はnodeにnullを返す
	projectMissing bool
	labelExists    bool

	operations []string
}

type fakeItem struct {
	number int
	status string
}

func newFakeGitHub(t *testing.T, items ...fakeItem) *fakeGitHub {
	t.Helper()
	f := &fakeGitHub{t: t, items: items, missing: map[int]bool{}}
	server := httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(server.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("ISSUE_TRANSFER_GITHUB_TOKEN", "")
	t.Setenv("ISSUE_TRANSFER_GITHUB_BASE_URL", server.URL)
	return f
}

func (f *fakeGitHub) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/graphql" {
		http.NotFound(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	require.NoError(f.t, err)

	var payload struct {
		Query     string                 `json:"query"`
		Variables map[string]interface{} `json:"variables"`
	}
	require.NoError(f.t, json.Unmarshal(body, &payload))

	op, resp := f.respond(payload.Query, payload.Variables)

	f.mu.Lock()
	f.operations = append(f.operations, op)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(resp))
}

func (f *fakeGitHub) respond(query string, vars map[string]interface{}) (string, string) {
	switch {
	case strings.Contains(query, "transferIssue"):
		n := strings.TrimPrefix(vars["issueId"].(string), "I_")
		return "transferIssue", fmt.Sprintf(`{"data":{"transferIssue":{"issue":{"id":"NEW_%s","number":1%s,"title":"t","url":"https://github.com/acme/new-repo/issues/1%s"}}}}`, n, n, n)
	case strings.Contains(query, "createLabel"):
		return "createLabel", `{"data":{"createLabel":{"label":{"id":"LA_new"}}}}`
	case strings.Contains(query, "addLabelsToLabelable"):
		return "addLabelsToLabelable", `{"data":{"addLabelsToLabelable":{"clientMutationId":null}}}`
	case strings.Contains(query, "label(name"):
		if f.labelExists {
			return "label", `{"data":{"repository":{"label":{"id":"LA_existing"}}}}`
		}
		return "label", `{"data":{"repository":{"label":null}}}`
	case strings.Contains(query, "issue(number"):
		n := int(vars["number"].(float64))
		if f.missing[n] {
			return "issue", `{"data":{"repository":{"issue":null}},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to an Issue"}]}`
		}
		return "issue", fmt.Sprintf(`{"data":{"repository":{"issue":{"id":"I_%d"}}}}`, n)
	case strings.Contains(query, "node(id"):
		if f.projectMissing {
			return "project", `{"data":{"node":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a node"}]}`
		}
		return "project", f.projectPage()
	default:
		return "repository", fmt.Sprintf(`{"data":{"repository":{"id":"R_%s"}}}`, vars["name"])
	}
}

func (f *fakeGitHub) projectPage() string {
	nodes := make([]string, 0, len(f.items))
	for _, item := range f.items {
		nodes = append(nodes, fmt.Sprintf(
			`{"content":{"__typename":"Issue","number":%d,"id":"I_%d"},"fieldValues":{"nodes":[{"__typename":"ProjectV2ItemFieldSingleSelectValue","name":%q,"field":{"name":"Status"}}]}}`,
			item.number, item.number, item.status))
	}
	return fmt.Sprintf(`{"data":{"node":{"items":{"nodes":[%s],"pageInfo":{"endCursor":"c1","hasNextPage":false}}}}}`,
		strings.Join(nodes, ","))
}

func (f *fakeGitHub) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.operations...)
}

func (f *fakeGitHub) count(op string) int {
	n := 0
	for _, o := range f.ops() {
		if o == op {
			n++
		}
	}
	return n
}

// executeCommand はルートコマンドを新しく作って実行し、標準出力とログを返す
func executeCommand(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	rootCmd = NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
