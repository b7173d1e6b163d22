package github

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGraphQLRequest(t *testing.T) {
	body, err := EncodeGraphQLRequest("query { viewer { login } }", map[string]interface{}{"n": 1})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "query { viewer { login } }", decoded["query"])
	assert.Equal(t, map[string]interface{}{"n": float64(1)}, decoded["variables"])
}

func TestDecodeGraphQLResponse(t *testing.T) {
	t.Run("正常系: dataをデコードする", func(t *testing.T) {
		var out struct {
			Repository struct {
				ID string `json:"id"`
			} `json:"repository"`
		}
		err := DecodeGraphQLResponse([]byte(`{"data":{"repository":{"id":"R_1"}}}`), &out)
		require.NoError(t, err)
		assert.Equal(t, "R_1", out.Repository.ID)
	})

	t.Run("正常系: dataがnullでもエラーにしない", func(t *testing.T) {
		var out struct{}
		assert.NoError(t, DecodeGraphQLResponse([]byte(`{"data":null}`), &out))
	})

	t.Run("異常系: errorsは分類される", func(t *testing.T) {
		err := DecodeGraphQLResponse([]byte(`{"errors":[{"type":"FORBIDDEN","message":"Resource not accessible"}]}`), nil)
		require.Error(t, err)
		assert.True(t, IsAuthenticationError(err))
	})

	t.Run("異常系: JSONでない", func(t *testing.T) {
		err := DecodeGraphQLResponse([]byte(`gh: not found`), nil)
		assert.ErrorContains(t, err, "failed to parse GraphQL response")
	})
}
