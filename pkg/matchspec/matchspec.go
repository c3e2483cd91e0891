package matchspec

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/types"
)

// Modifiers are the inline options of a delimited regex
type Modifiers struct {
	// IgnoreCase is the i flag
	IgnoreCase bool
	// DotAll is the m flag: dot also matches newlines
	DotAll bool
	// Extended is the x flag: whitespace and #-comments are ignored
	Extended bool
}

// String renders the modifiers in their flag-letter form
func (m Modifiers) String() string {
	var b strings.Builder
	if m.IgnoreCase {
		b.WriteByte('i')
	}
	if m.DotAll {
		b.WriteByte('m')
	}
	if m.Extended {
		b.WriteByte('x')
	}
	return b.String()
}

// Source tells where a Pattern came from
type Source string

const (
	// SourceEnsureText means the match was unset and the ensure-text is used
	SourceEnsureText Source = "ensure-text"
	// SourceString means a plain string, used literally
	SourceString Source = "string"
	// SourceRegex means a delimited regex
	SourceRegex Source = "regex"
)

// Pattern is a normalized match: regex source text that is safe to hand to
// the regex compiler, plus its modifiers.
type Pattern struct {
	Expr      string
	Modifiers Modifiers
	Source    Source
}

// Literal reports whether the pattern matches a fixed string
func (p Pattern) Literal() bool {
	return p.Source != SourceRegex
}

// Quote escapes every regex metacharacter in s
func Quote(s string) string {
	return regexp.QuoteMeta(s)
}

// Normalize applies the match rules to a spec: unset match falls back to the
// ensure-text, MatchIsString forces literal treatment, delimited values are
// regexes, and anything else must be free of metacharacters.
func Normalize(spec types.EditSpec) (Pattern, error) {
	if !spec.HasMatch() {
		return Pattern{
			Expr:   Quote(types.Chomp(spec.Line)),
			Source: SourceEnsureText,
		}, nil
	}
	if spec.MatchIsString {
		return Pattern{
			Expr:   Quote(spec.Match),
			Source: SourceString,
		}, nil
	}
	return Parse(spec.Match, "match")
}

// Parse normalizes a value that is either a delimited regex or a plain
// string free of metacharacters. field names the option in error messages.
func Parse(value, field string) (Pattern, error) {
	if expr, mods, ok := ParseDelimited(value); ok {
		return Pattern{Expr: expr, Modifiers: mods, Source: SourceRegex}, nil
	}
	if Quote(value) != value {
		return Pattern{}, errors.Newf(errors.ErrConfigInvalid,
			"%s %q looks like a regular expression; write it as /.../ or set match_is_string", field, value).
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return Pattern{Expr: value, Source: SourceString}, nil
}

// closers maps the opening delimiter of a %r literal to its closing one
var closers = map[byte]byte{
	'{': '}',
	'[': ']',
	'(': ')',
	'<': '>',
	'|': '|',
}

// ParseDelimited recognizes /expr/flags and %r{expr}flags (also with [], (),
// <> and ||). Flags are limited to i, m and x. ok is false when value is not
// a delimited regex.
func ParseDelimited(value string) (expr string, mods Modifiers, ok bool) {
	var open, close byte
	var body string

	switch {
	case len(value) >= 2 && value[0] == '/':
		open, close = '/', '/'
		body = value[1:]
	case len(value) >= 4 && strings.HasPrefix(value, "%r"):
		c, found := closers[value[2]]
		if !found {
			return "", Modifiers{}, false
		}
		open, close = value[2], c
		body = value[3:]
	default:
		return "", Modifiers{}, false
	}

	end := strings.LastIndexByte(body, close)
	if end < 0 {
		return "", Modifiers{}, false
	}
	if open == '/' && end > 0 && isEscaped(body, end) {
		return "", Modifiers{}, false
	}

	mods, ok = parseFlags(body[end+1:])
	if !ok {
		return "", Modifiers{}, false
	}
	return body[:end], mods, true
}

func parseFlags(flags string) (Modifiers, bool) {
	var mods Modifiers
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i':
			mods.IgnoreCase = true
		case 'm':
			mods.DotAll = true
		case 'x':
			mods.Extended = true
		default:
			return Modifiers{}, false
		}
	}
	return mods, true
}

// isEscaped reports whether the byte at pos is preceded by an odd number of
// backslashes
func isEscaped(s string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
