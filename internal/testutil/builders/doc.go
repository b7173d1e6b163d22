// Package builders provides fluent builders for GitHub Projects (v2) test fixtures.
package builders
