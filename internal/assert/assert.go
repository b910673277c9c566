//go:build !hstring_debug

// Package assert holds contract checks that are too costly for hot paths.
// They compile to nothing unless the module is built with the hstring_debug
// tag.
package assert

// Enabled reports whether debug checks are compiled in.
const Enabled = false

// That panics with msg when cond is false. No-op in release builds.
func That(cond bool, msg string) {}
