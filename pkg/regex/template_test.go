package regex

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateBackreferences(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantRefs  bool
		wantStrip string
	}{
		{"plain", "This is the result line.", false, "This is the result line."},
		{"numbered", `Result \1`, true, "Result "},
		{"whole match", `[\&]`, true, "[]"},
		{"named", `key = \k<value>`, true, "key = "},
		{"escaped backslash", `C:\\temp`, false, `C:\temp`},
		{"escaped backslash before digit", `\\1`, false, `\1`},
		{"other escapes kept", `a\tb`, false, `a\tb`},
		{"trailing backslash", `end\`, false, `end\`},
		{"section template", "[section1]\n\\1entry = fixed value\n\\3", true, "[section1]\nentry = fixed value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := ParseTemplate(tt.text)
			assert.Equal(t, tt.wantRefs, tmpl.HasBackreferences())
			assert.Equal(t, tt.wantStrip, tmpl.Strip())
			assert.Equal(t, tt.text, tmpl.String())
		})
	}
}

func TestTemplateExpand(t *testing.T) {
	re := regexp2.MustCompile(`(\w+) (\d+)(x)?`, regexp2.None)
	m, err := re.FindStringMatch("Line 42")
	require.NoError(t, err)
	require.NotNil(t, m)

	tests := []struct {
		text string
		want string
	}{
		{`\2`, "42"},
		{`<\0>`, "<Line 42>"},
		{`<\&>`, "<Line 42>"},
		{`[\3]`, "[]"},
		{`[\9]`, "[]"},
		{`\\2`, `\2`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTemplate(tt.text).Expand(m), "Expand(%q)", tt.text)
	}
}

func TestTemplateExpandNamed(t *testing.T) {
	re := regexp2.MustCompile(`(?<word>\w+) \d+`, regexp2.None)
	m, err := re.FindStringMatch("Line 42")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "Line!", ParseTemplate(`\k<word>!`).Expand(m))
	assert.Equal(t, "?", ParseTemplate(`\k<missing>?`).Expand(m))
}
