// Package mocks provides testify/mock implementations of the interfaces consumed by
// the project and transfer packages.
//
// MockGitHubService implements every operation of github.Service, so a single mock
// can be handed to project.NewClient and transfer.NewRunner at the same time.
package mocks
