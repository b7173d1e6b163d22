// Package helpers provides general test helpers.
package helpers
