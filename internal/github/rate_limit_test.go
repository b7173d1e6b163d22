package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetGraphQLRateLimit(t *testing.T) {
	t.Run("正常系: GraphQLのレート制限情報を取得できる", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rate_limit", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"resources":{
				"core":{"limit":5000,"remaining":4990,"reset":1372700873},
				"graphql":{"limit":5000,"remaining":4321,"reset":1372700873}}}`))
		}))
		defer server.Close()

		client, err := NewClient("token", WithBaseURL(server.URL))
		require.NoError(t, err)

		limit, err := client.GetGraphQLRateLimit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5000, limit.Limit)
		assert.Equal(t, 4321, limit.Remaining)
		assert.Equal(t, time.Unix(1372700873, 0).UTC(), limit.Reset.UTC())
	})

	t.Run("異常系: graphqlが含まれない", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"resources":{"core":{"limit":5000,"remaining":4990,"reset":1372700873}}}`))
		}))
		defer server.Close()

		client, err := NewClient("token", WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.GetGraphQLRateLimit(context.Background())
		assert.Error(t, err)
	})

	t.Run("異常系: 404はNotFoundに分類される", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Rate limiting is not enabled."}`))
		}))
		defer server.Close()

		client, err := NewClient("token", WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.GetGraphQLRateLimit(context.Background())
		assert.True(t, IsNotFoundError(err))
	})
}
