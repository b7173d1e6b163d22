// Package testutil provides common test utilities, mocks, and builders for testing issue-transfer components.
//
// This package is organized into the following sub-packages:
//
//   - mocks: testify mocks for the GitHub GraphQL operations
//   - builders: fluent builders for project item pages
//   - helpers: log capturing helpers
//
// # Example
//
//	svc := mocks.NewMockGitHubService()
//	svc.On("ProjectItems", mock.Anything, "PVT_x", "").
//	    Return(builders.NewProjectPageBuilder().WithIssue(1, "Ready").Build(), nil)
package testutil
