package regex

import (
	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/dlclark/regexp2"
)

// Found reports whether re matches anywhere in s
func Found(re *regexp2.Regexp, s string) (bool, error) {
	ok, err := re.MatchString(s)
	if err != nil {
		return false, matchError(err, re)
	}
	return ok, nil
}

// ReplaceAll substitutes every match of re in s with the expanded template.
// It returns the new content and the number of replaced matches.
func ReplaceAll(re *regexp2.Regexp, s string, tmpl Template) (string, int, error) {
	count := 0
	out, err := re.ReplaceFunc(s, func(m regexp2.Match) string {
		count++
		return tmpl.Expand(&m)
	}, -1, -1)
	if err != nil {
		return "", 0, matchError(err, re)
	}
	return out, count, nil
}

// DeleteAll removes every match of re from s and returns the new content
// and the number of removed matches
func DeleteAll(re *regexp2.Regexp, s string) (string, int, error) {
	count := 0
	out, err := re.ReplaceFunc(s, func(regexp2.Match) string {
		count++
		return ""
	}, -1, -1)
	if err != nil {
		return "", 0, matchError(err, re)
	}
	return out, count, nil
}

// matchError classifies a failure raised while running a pattern. regexp2
// only fails at match time when the timeout is exceeded.
func matchError(err error, re *regexp2.Regexp) error {
	return errors.Wrap(err, errors.ErrRegexTimeout, "pattern matching did not finish in time").
		WithDetail("pattern", re.String()).
		WithDetail("timeout", re.MatchTimeout.String())
}
