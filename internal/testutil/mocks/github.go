package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/douhashi/issue-transfer/internal/github"
)

// MockGitHubService is a mock implementation of the github.Service operations
type MockGitHubService struct {
	mock.Mock
}

// NewMockGitHubService creates a new instance of MockGitHubService
func NewMockGitHubService() *MockGitHubService {
	return &MockGitHubService{}
}

// RepositoryID mocks the RepositoryID method
func (m *MockGitHubService) RepositoryID(ctx context.Context, repo github.RepositoryRef) (string, error) {
	args := m.Called(ctx, repo)
	return args.String(0), args.Error(1)
}

// IssueID mocks the IssueID method
func (m *MockGitHubService) IssueID(ctx context.Context, repo github.RepositoryRef, number int) (string, error) {
	args := m.Called(ctx, repo, number)
	return args.String(0), args.Error(1)
}

// ProjectItems mocks the ProjectItems method
func (m *MockGitHubService) ProjectItems(ctx context.Context, projectID, after string) (*github.ProjectItemsPage, error) {
	args := m.Called(ctx, projectID, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.ProjectItemsPage), args.Error(1)
}

// TransferIssue mocks the TransferIssue method
func (m *MockGitHubService) TransferIssue(ctx context.Context, issueID, targetRepositoryID string) (*github.TransferResult, error) {
	args := m.Called(ctx, issueID, targetRepositoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.TransferResult), args.Error(1)
}

// LabelID mocks the LabelID method
func (m *MockGitHubService) LabelID(ctx context.Context, repo github.RepositoryRef, name string) (string, bool, error) {
	args := m.Called(ctx, repo, name)
	return args.String(0), args.Bool(1), args.Error(2)
}

// CreateLabel mocks the CreateLabel method
func (m *MockGitHubService) CreateLabel(ctx context.Context, repositoryID string, label github.LabelDefinition) (string, error) {
	args := m.Called(ctx, repositoryID, label)
	return args.String(0), args.Error(1)
}

// AddLabels mocks the AddLabels method
func (m *MockGitHubService) AddLabels(ctx context.Context, labelableID string, labelIDs ...string) error {
	args := m.Called(ctx, labelableID, labelIDs)
	return args.Error(0)
}

// AssertNoMutations はミューテーション系の操作が一度も呼ばれていないことを検証する
func (m *MockGitHubService) AssertNoMutations(t mock.TestingT) bool {
	ok := m.AssertNotCalled(t, "TransferIssue", mock.Anything, mock.Anything, mock.Anything)
	ok = m.AssertNotCalled(t, "CreateLabel", mock.Anything, mock.Anything, mock.Anything) && ok
	ok = m.AssertNotCalled(t, "AddLabels", mock.Anything, mock.Anything, mock.Anything) && ok
	return ok
}
