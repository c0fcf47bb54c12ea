//go:build !findminhs_debug

package hgraph

// debugAssert is a no-op in production builds. See debug.go for the
// findminhs_debug-tagged variant that actually checks the condition.
func debugAssert(cond bool, msg string) {}
