package regex

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Template is an ensure-text read as a substitution template.
//
// Recognized tokens: \0 through \9 (numbered groups, \0 is the whole match),
// \& (whole match), \k<name> (named group) and \\ (a literal backslash). Any
// other backslash sequence is kept as written.
type Template struct {
	raw   string
	parts []part
}

type part struct {
	literal string
	ref     bool
	group   int
	name    string
}

// ParseTemplate splits s into literal text and group references
func ParseTemplate(s string) Template {
	t := Template{raw: s}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.parts = append(t.parts, part{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			lit.WriteByte(c)
			continue
		}

		next := s[i+1]
		switch {
		case next >= '0' && next <= '9':
			flush()
			t.parts = append(t.parts, part{ref: true, group: int(next - '0')})
			i++
		case next == '&':
			flush()
			t.parts = append(t.parts, part{ref: true, group: 0})
			i++
		case next == 'k' && i+2 < len(s) && s[i+2] == '<':
			end := strings.IndexByte(s[i+3:], '>')
			if end <= 0 {
				lit.WriteByte(c)
				continue
			}
			flush()
			t.parts = append(t.parts, part{ref: true, group: -1, name: s[i+3 : i+3+end]})
			i += 3 + end
		case next == '\\':
			lit.WriteByte('\\')
			i++
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return t
}

// String returns the template as it was written
func (t Template) String() string {
	return t.raw
}

// HasBackreferences reports whether the rendering with references resolved
// can differ from the one with references stripped, i.e. whether the final
// text depends on what was matched
func (t Template) HasBackreferences() bool {
	for _, p := range t.parts {
		if p.ref {
			return true
		}
	}
	return false
}

// Strip renders the template with every reference removed. It is used when
// there is no match to resolve references against.
func (t Template) Strip() string {
	var b strings.Builder
	for _, p := range t.parts {
		if !p.ref {
			b.WriteString(p.literal)
		}
	}
	return b.String()
}

// Expand renders the template against m. References to groups that do not
// exist or did not participate in the match expand to nothing.
func (t Template) Expand(m *regexp2.Match) string {
	var b strings.Builder
	for _, p := range t.parts {
		if !p.ref {
			b.WriteString(p.literal)
			continue
		}
		var g *regexp2.Group
		if p.group >= 0 {
			g = m.GroupByNumber(p.group)
		} else {
			g = m.GroupByName(p.name)
		}
		if g != nil {
			b.WriteString(g.String())
		}
	}
	return b.String()
}
