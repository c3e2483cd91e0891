package editor

import (
	"strings"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/logging"
	"github.com/arthur-debert/editfile/pkg/regex"
	"github.com/arthur-debert/editfile/pkg/types"
)

// Change describes the effect of one create or destroy on the file content
type Change struct {
	Path string

	// Existed is false when the file was missing before the change
	Existed bool

	Before string
	After  string

	Replaced int
	Appended bool
	Deleted  int
}

// Changed reports whether the content differs
func (c Change) Changed() bool {
	return c.Before != c.After
}

// Create brings the file to the present state: every match is replaced by
// the ensure-text, or, when nothing matches, the ensure-text is appended
// unless NoAppend is set.
func (e *Editor) Create() error {
	done := logging.LogOperationStart(e.logger, "create")
	defer done()

	holds, err := e.presentHoldsNow()
	if err != nil {
		return err
	}
	if holds {
		return errors.New(errors.ErrContractViolation, "create called although the desired state already holds").
			WithDetail("path", e.spec.Path)
	}

	change, err := e.Preview(types.EnsurePresent)
	if err != nil {
		return err
	}
	return e.commit(change)
}

// Destroy removes every span matching the match pattern. It refuses to run
// without an explicit match: this engine never deletes whole files.
func (e *Editor) Destroy() error {
	done := logging.LogOperationStart(e.logger, "destroy")
	defer done()

	change, err := e.Preview(types.EnsureAbsent)
	if err != nil {
		return err
	}
	return e.commit(change)
}

// Preview computes what Create (present) or Destroy (absent) would write,
// without writing it. Unlike Create it does not check whether the state
// already holds.
func (e *Editor) Preview(ensure types.Ensure) (Change, error) {
	if ensure == types.EnsureAbsent && !e.spec.HasMatch() {
		return Change{}, errors.New(errors.ErrConfigInvalid,
			"refusing to delete without a match; use other means to remove whole files").
			WithDetail("path", e.spec.Path)
	}

	content, found, err := e.read()
	if err != nil {
		return Change{}, err
	}

	change := Change{Path: e.spec.Path, Existed: found, Before: content}
	if ensure == types.EnsureAbsent {
		err = e.renderAbsent(&change)
	} else {
		err = e.renderPresent(&change)
	}
	if err != nil {
		return Change{}, err
	}
	return change, nil
}

func (e *Editor) renderPresent(c *Change) error {
	if e.spec.Line == "" {
		return errors.New(errors.ErrConfigInvalid, "ensure text is required when ensuring presence").
			WithDetail("path", e.spec.Path)
	}
	out, n, err := regex.ReplaceAll(e.compiled.Primary, c.Before, e.replacement)
	if err != nil {
		return err
	}
	if n > 0 {
		c.After = out
		c.Replaced = n
		e.logger.Debug().Int("matches", n).Msg("Replacing matches")
		return nil
	}

	if e.spec.NoAppend {
		c.After = c.Before
		e.logger.Debug().Msg("No match and appending is disabled")
		return nil
	}

	// nothing to resolve references against
	body := e.appendText.Strip()
	if c.Before == "" || strings.HasSuffix(c.Before, "\n") {
		c.After = c.Before + body + "\n"
	} else {
		// keep the missing terminator at the end of the file
		c.After = c.Before + "\n" + body
	}
	c.Appended = true
	e.logger.Debug().Msg("No match, appending ensure text")
	return nil
}

func (e *Editor) renderAbsent(c *Change) error {
	out, n, err := regex.DeleteAll(e.compiled.Deletion, c.Before)
	if err != nil {
		return err
	}
	c.After = out
	c.Deleted = n
	e.logger.Debug().Int("matches", n).Msg("Deleting matches")
	return nil
}

// presentHoldsNow evaluates the present-state decision on fresh content,
// whatever the spec's own ensure value is
func (e *Editor) presentHoldsNow() (bool, error) {
	content, found, err := e.read()
	if err != nil || !found {
		return false, err
	}
	return e.presentHolds(content)
}

func (e *Editor) commit(c Change) error {
	if !c.Changed() {
		e.logger.Debug().Msg("Content unchanged, nothing to write")
		return nil
	}
	return e.write(c.After)
}
