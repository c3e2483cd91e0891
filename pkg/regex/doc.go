// Package regex compiles normalized match patterns into the patterns the
// editor actually runs, and models the ensure-text as a substitution
// template.
//
// Patterns are compiled with github.com/dlclark/regexp2, a backtracking
// engine: match expressions in the wild rely on atomic groups, lookahead and
// \Z, none of which RE2 supports. ^ and $ always anchor at line boundaries.
//
// In line mode a pattern P becomes ^.*(?>P).*$ so a substitution replaces
// the whole line that contains P. The atomic group keeps the engine from
// retrying P at every split point of a long line.
package regex
