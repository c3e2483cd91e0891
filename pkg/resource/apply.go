package resource

import (
	"github.com/arthur-debert/editfile/pkg/diff"
	"github.com/arthur-debert/editfile/pkg/editor"
	"github.com/arthur-debert/editfile/pkg/types"
)

// Status is the outcome of applying one resource
type Status string

const (
	StatusUnchanged    Status = "unchanged"
	StatusCreated      Status = "created"
	StatusDestroyed    Status = "destroyed"
	StatusWouldCreate  Status = "would-create"
	StatusWouldDestroy Status = "would-destroy"
	StatusError        Status = "error"
)

// Target is what Apply drives; *editor.Editor implements it
type Target interface {
	Spec() types.EditSpec
	Exists() (bool, error)
	Create() error
	Destroy() error
	Preview(ensure types.Ensure) (editor.Change, error)
}

// ApplyOptions control Apply
type ApplyOptions struct {
	// DryRun computes the change without writing it
	DryRun bool
}

// Result describes what Apply did to one resource
type Result struct {
	Name   string       `yaml:"name"`
	Path   string       `yaml:"path"`
	Ensure types.Ensure `yaml:"ensure"`
	Status Status       `yaml:"status"`
	Diff   string       `yaml:"diff,omitempty"`
	Error  string       `yaml:"error,omitempty"`
}

// Changed reports whether the resource was, or in a dry run would be,
// modified
func (r Result) Changed() bool {
	switch r.Status {
	case StatusCreated, StatusDestroyed, StatusWouldCreate, StatusWouldDestroy:
		return true
	}
	return false
}

// Apply brings the target to its desired state. The mutation only runs
// when the existence check disagrees with the desired state: create when a
// present resource does not exist, destroy when an absent one still does.
func Apply(t Target, opts ApplyOptions) (Result, error) {
	spec := t.Spec()
	result := Result{Name: spec.DisplayName(), Path: spec.Path, Ensure: spec.Ensure, Status: StatusUnchanged}

	exists, err := t.Exists()
	if err != nil {
		return failed(result, err)
	}

	absent := spec.IsAbsent()
	if exists != absent {
		// present and exists, or absent and nothing left to purge
		return result, nil
	}

	change, err := t.Preview(spec.Ensure)
	if err != nil {
		return failed(result, err)
	}
	result.Diff = diff.Unified(spec.Path, change.Before, change.After)

	if opts.DryRun {
		if change.Changed() {
			result.Status = StatusWouldCreate
			if absent {
				result.Status = StatusWouldDestroy
			}
		}
		return result, nil
	}

	if absent {
		err = t.Destroy()
	} else {
		err = t.Create()
	}
	if err != nil {
		result.Diff = ""
		return failed(result, err)
	}

	if change.Changed() {
		result.Status = StatusCreated
		if absent {
			result.Status = StatusDestroyed
		}
	}
	return result, nil
}

func failed(r Result, err error) (Result, error) {
	r.Status = StatusError
	r.Error = err.Error()
	return r, err
}
