package github

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	gogithub "github.com/google/go-github/v50/github"
)

// ErrProjectNotFound はプロジェクトノードまたはアイテム一覧が取得できなかったことを示す
var ErrProjectNotFound = errors.New("project node or items not found")

// GitHubErrorType represents the type of GitHub API error
type GitHubErrorType int

const (
	// ErrorTypeRateLimit indicates rate limit exceeded
	ErrorTypeRateLimit GitHubErrorType = iota
	// ErrorTypeNetworkTimeout indicates network timeout
	ErrorTypeNetworkTimeout
	// ErrorTypeAuthentication indicates authentication or permission failure
	ErrorTypeAuthentication
	// ErrorTypeNotFound indicates resource not found
	ErrorTypeNotFound
	// ErrorTypeServerError indicates server error (5xx)
	ErrorTypeServerError
	// ErrorTypeUnknown indicates unknown error type
	ErrorTypeUnknown
)

// String returns the string representation of the error type
func (t GitHubErrorType) String() string {
	switch t {
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeNetworkTimeout:
		return "NetworkTimeout"
	case ErrorTypeAuthentication:
		return "Authentication"
	case ErrorTypeNotFound:
		return "NotFound"
	case ErrorTypeServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// GitHubError represents a structured GitHub API error
type GitHubError struct {
	Type        GitHubErrorType
	StatusCode  int
	Message     string
	RetryAfter  time.Duration
	OriginalErr error
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("GitHub API error [%s]: %s (original: %v)", e.Type, e.Message, e.OriginalErr)
	}
	return fmt.Sprintf("GitHub API error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the original error
func (e *GitHubError) Unwrap() error {
	return e.OriginalErr
}

// IsRateLimitError checks if the error is a rate limit error
func IsRateLimitError(err error) bool {
	return hasErrorType(err, ErrorTypeRateLimit)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return hasErrorType(err, ErrorTypeNotFound)
}

// IsAuthenticationError checks if the error is an authentication error
func IsAuthenticationError(err error) bool {
	return hasErrorType(err, ErrorTypeAuthentication)
}

func hasErrorType(err error, errType GitHubErrorType) bool {
	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Type == errType
	}
	return false
}

// newNotFoundError はnullで返ってきたリソースをNotFoundとして表現する
func newNotFoundError(format string, args ...interface{}) *GitHubError {
	return &GitHubError{
		Type:       ErrorTypeNotFound,
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf(format, args...),
	}
}

// ClassifyError はgo-githubやGraphQLのエラーをGitHubErrorに分類する
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return err
	}

	classified := &GitHubError{
		Type:        ErrorTypeUnknown,
		Message:     err.Error(),
		OriginalErr: err,
	}

	var (
		rateErr  *gogithub.RateLimitError
		abuseErr *gogithub.AbuseRateLimitError
		respErr  *gogithub.ErrorResponse
		gqlErrs  GraphQLErrors
		netErr   net.Error
	)

	switch {
	case errors.As(err, &rateErr):
		classified.Type = ErrorTypeRateLimit
		classified.StatusCode = statusCodeOf(rateErr.Response)
		classified.Message = rateErr.Message
		if wait := time.Until(rateErr.Rate.Reset.Time); wait > 0 {
			classified.RetryAfter = wait
		}

	case errors.As(err, &abuseErr):
		classified.Type = ErrorTypeRateLimit
		classified.StatusCode = statusCodeOf(abuseErr.Response)
		classified.Message = abuseErr.Message
		if abuseErr.RetryAfter != nil {
			classified.RetryAfter = *abuseErr.RetryAfter
		}

	case errors.As(err, &respErr):
		classified.StatusCode = statusCodeOf(respErr.Response)
		classified.Message = respErr.Message
		classified.Type = typeFromStatus(classified.StatusCode)

	case errors.As(err, &gqlErrs):
		classified.Message = gqlErrs.Error()
		switch {
		case gqlErrs.hasType("NOT_FOUND"):
			classified.Type = ErrorTypeNotFound
		case gqlErrs.hasType("RATE_LIMITED"):
			classified.Type = ErrorTypeRateLimit
		case gqlErrs.hasType("FORBIDDEN"), gqlErrs.hasType("INSUFFICIENT_SCOPES"):
			classified.Type = ErrorTypeAuthentication
		}

	case errors.Is(err, context.DeadlineExceeded):
		classified.Type = ErrorTypeNetworkTimeout

	case errors.As(err, &netErr):
		classified.Type = ErrorTypeNetworkTimeout
	}

	return classified
}

func statusCodeOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func typeFromStatus(status int) GitHubErrorType {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrorTypeAuthentication
	case status == http.StatusNotFound:
		return ErrorTypeNotFound
	case status == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case status >= 500 && status < 600:
		return ErrorTypeServerError
	default:
		return ErrorTypeUnknown
	}
}
