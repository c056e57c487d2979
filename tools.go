//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: test doubles, see the go:generate lines next to each *_test.go
// - github.com/pressly/goose/v3/cmd/goose: manual migrations against migrations/
