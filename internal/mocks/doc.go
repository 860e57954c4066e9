// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across test packages. Each
// mock exposes function fields (CreateFn, SendFn, ...) so a test can
// override exactly the behavior it cares about; methods without an
// override fall back to a simple in-memory default.
package mocks
