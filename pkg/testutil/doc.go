// Package testutil provides helpers shared by editfile tests: file fixtures
// on the real filesystem, environment isolation and a filesystem wrapper
// that injects errors.
package testutil
