package github

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordedRequest はテストサーバーが受け取ったGraphQLリクエスト
type recordedRequest struct {
	Query         string
	Variables     map[string]interface{}
	Authorization string
}

// graphQLServer はクエリ内容に応じてレスポンスを返すテスト用GraphQLサーバー
type graphQLServer struct {
	t        *testing.T
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(req recordedRequest) (int, string)
}

func newGraphQLServer(t *testing.T, respond func(req recordedRequest) (int, string)) (*graphQLServer, *Client) {
	t.Helper()

	s := &graphQLServer{t: t, respond: respond}
	server := httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(server.Close)

	client, err := NewClient("test-token", WithBaseURL(server.URL))
	require.NoError(t, err)
	return s, client
}

func (s *graphQLServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/graphql" {
		http.NotFound(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	require.NoError(s.t, err)

	var payload graphQLRequest
	require.NoError(s.t, json.Unmarshal(body, &payload))

	req := recordedRequest{
		Query:         payload.Query,
		Variables:     payload.Variables,
		Authorization: r.Header.Get("Authorization"),
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	status, respBody := s.respond(req)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(respBody))
}

func (s *graphQLServer) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

func isOperation(req recordedRequest, name string) bool {
	return strings.Contains(req.Query, name)
}
