// Package ciutil detects CI environments and resolves the connection
// settings integration tests use for external services.
package ciutil
