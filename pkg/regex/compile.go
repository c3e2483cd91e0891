package regex

import (
	"strings"
	"time"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/matchspec"
	"github.com/dlclark/regexp2"
)

// Options control compilation
type Options struct {
	// MatchTimeout bounds a single match; zero means no limit
	MatchTimeout time.Duration
}

// Compiled holds the patterns derived from one match specification
type Compiled struct {
	// Primary locates content to replace
	Primary *regexp2.Regexp

	// Deletion locates content to remove. In line mode it also consumes the
	// line terminator.
	Deletion *regexp2.Regexp

	Exact bool
}

// Compile builds the primary and deletion patterns for p
func Compile(p matchspec.Pattern, exact bool, opts Options) (*Compiled, error) {
	inner := embed(p)

	if exact {
		re, err := compile(inner, "match", opts)
		if err != nil {
			return nil, err
		}
		return &Compiled{Primary: re, Deletion: re, Exact: true}, nil
	}

	line := LineExpr(inner)
	primary, err := compile(line, "match", opts)
	if err != nil {
		return nil, err
	}
	deletion, err := compile(`^(?>`+line+`)(?:\n|\z)`, "match", opts)
	if err != nil {
		return nil, err
	}
	return &Compiled{Primary: primary, Deletion: deletion}, nil
}

// CompilePattern compiles p verbatim; it is used for the creates pattern.
// field names the option in error messages.
func CompilePattern(p matchspec.Pattern, field string, opts Options) (*regexp2.Regexp, error) {
	return compile(embed(p), field, opts)
}

// CompileLiteralLine builds a pattern that finds text as one or more
// complete lines
func CompileLiteralLine(text string, opts Options) (*regexp2.Regexp, error) {
	return compile(`^`+matchspec.Quote(text)+`$`, "line", opts)
}

// LineExpr wraps expr so that it matches the whole line containing expr
func LineExpr(expr string) string {
	return `^.*(?>` + expr + `).*$`
}

// embed turns a pattern into a group carrying its own modifiers, so it can
// be nested in a wrapper without leaking options in either direction
func embed(p matchspec.Pattern) string {
	var on, off strings.Builder
	flag := func(set bool, letter byte) {
		if set {
			on.WriteByte(letter)
		} else {
			off.WriteByte(letter)
		}
	}
	flag(p.Modifiers.IgnoreCase, 'i')
	flag(p.Modifiers.DotAll, 's')
	flag(p.Modifiers.Extended, 'x')

	expr := p.Expr
	if p.Modifiers.Extended {
		// a trailing #-comment would swallow the closing paren
		expr += "\n"
	}

	var b strings.Builder
	b.WriteString("(?")
	b.WriteString(on.String())
	if off.Len() > 0 {
		b.WriteByte('-')
		b.WriteString(off.String())
	}
	b.WriteByte(':')
	b.WriteString(expr)
	b.WriteByte(')')
	return b.String()
}

func compile(expr, field string, opts Options) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.Multiline)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegexCompile, "unable to compile %s", field).
			WithDetail("field", field).
			WithDetail("pattern", expr)
	}
	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}
	return re, nil
}
