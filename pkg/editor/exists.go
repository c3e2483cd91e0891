package editor

import (
	"github.com/arthur-debert/editfile/pkg/regex"
	"github.com/dlclark/regexp2"
)

// Exists reports whether the file already reflects the desired state. It
// never writes.
//
// For an absent spec the answer is true when there is something left to
// purge, i.e. the match pattern is found.
func (e *Editor) Exists() (bool, error) {
	content, found, err := e.read()
	if err != nil {
		return false, err
	}
	if !found {
		e.logger.Debug().Msg("File does not exist")
		return false, nil
	}

	var exists bool
	if e.spec.IsAbsent() {
		exists, err = e.find(e.primary(), content)
	} else {
		exists, err = e.presentHolds(content)
	}
	if err != nil {
		return false, err
	}

	e.logger.Debug().
		Str("ensure", string(e.spec.Ensure)).
		Bool("exists", exists).
		Msg("Evaluated existence")
	return exists, nil
}

// presentHolds decides whether the ensure-text is already in place
func (e *Editor) presentHolds(content string) (bool, error) {
	if e.replacement.HasBackreferences() {
		// the final text depends on the match and cannot be compared literally
		if e.creates == nil {
			return false, nil
		}
		return e.find(e.creates, content)
	}

	if e.spec.AlwaysEnsureMatches {
		matched, err := e.find(e.primary(), content)
		if err != nil || matched {
			return false, err
		}
		return e.find(e.literal, content)
	}

	if e.creates != nil {
		return e.find(e.creates, content)
	}
	return e.find(e.literal, content)
}

func (e *Editor) primary() *regexp2.Regexp {
	if e.compiled == nil {
		return nil
	}
	return e.compiled.Primary
}

func (e *Editor) find(re *regexp2.Regexp, content string) (bool, error) {
	if re == nil {
		return false, nil
	}
	return regex.Found(re, content)
}
