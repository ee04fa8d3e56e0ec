//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools are declared with the go.mod tool directive:
// - github.com/matryer/moq (mocks for consumer interfaces, see //go:generate lines)
// - github.com/pressly/goose/v3/cmd/goose (manual migrations against a live database)
