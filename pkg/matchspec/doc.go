// Package matchspec turns the raw "match" value of an edit into an
// unambiguous pattern: either a literal string that must be escaped, or a
// regular expression with its modifiers.
//
// Regexes are recognized purely by their delimiters (/.../flags or the
// %r{...}flags family). Nothing is ever evaluated to find out whether a value
// "is" a regex. A bare string that contains regex metacharacters is rejected
// as ambiguous: the author has to either delimit it or ask for literal
// matching explicitly.
package matchspec
