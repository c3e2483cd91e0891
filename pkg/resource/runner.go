package resource

import (
	"github.com/arthur-debert/editfile/pkg/editor"
	"github.com/arthur-debert/editfile/pkg/logging"
	"github.com/arthur-debert/editfile/pkg/types"
)

// Runner applies a list of specs one after the other. A failing resource
// does not stop the run.
type Runner struct {
	Editor editor.Options
	Apply  ApplyOptions
}

// Run applies every spec and returns one result per spec, in order
func (r Runner) Run(specs []types.EditSpec) []Result {
	logger := logging.GetLogger("resource")
	results := make([]Result, 0, len(specs))

	for _, spec := range specs {
		ed, err := editor.New(spec, r.Editor)
		if err != nil {
			res, _ := failed(Result{Name: spec.DisplayName(), Path: spec.Path, Ensure: spec.Ensure}, err)
			results = append(results, res)
			logger.Error().Err(err).Str("resource", spec.DisplayName()).Msg("Invalid resource")
			continue
		}

		res, err := Apply(ed, r.Apply)
		if err != nil {
			logger.Error().Err(err).Str("resource", spec.DisplayName()).Msg("Resource failed")
		} else {
			logger.Info().Str("resource", spec.DisplayName()).Str("status", string(res.Status)).Msg("Resource applied")
		}
		results = append(results, res)
	}
	return results
}

// Summary counts results per status
type Summary struct {
	Total     int `yaml:"total"`
	Changed   int `yaml:"changed"`
	Unchanged int `yaml:"unchanged"`
	Failed    int `yaml:"failed"`
}

// Summarize counts the results
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Status == StatusError:
			s.Failed++
		case r.Changed():
			s.Changed++
		default:
			s.Unchanged++
		}
	}
	return s
}
