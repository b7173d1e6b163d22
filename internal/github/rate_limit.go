package github

import (
	"context"
	"errors"
	"time"
)

// RateLimit はGraphQL APIのレート制限情報
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// GetGraphQLRateLimit はREST APIからGraphQLのレート制限情報を取得する
func (c *Client) GetGraphQLRateLimit(ctx context.Context) (*RateLimit, error) {
	limits, _, err := c.github.RateLimits(ctx)
	if err != nil {
		return nil, ClassifyError(err)
	}
	if limits == nil || limits.GraphQL == nil {
		return nil, errors.New("GraphQL rate limit is not reported")
	}

	return &RateLimit{
		Limit:     limits.GraphQL.Limit,
		Remaining: limits.GraphQL.Remaining,
		Reset:     limits.GraphQL.Reset.Time,
	}, nil
}
