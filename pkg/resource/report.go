package resource

import (
	"io"

	"github.com/arthur-debert/editfile/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable outcome of a run
type Report struct {
	DryRun    bool     `yaml:"dry_run"`
	Summary   Summary  `yaml:"summary"`
	Resources []Result `yaml:"resources"`
}

// NewReport builds a report from run results
func NewReport(results []Result, dryRun bool) Report {
	return Report{DryRun: dryRun, Summary: Summarize(results), Resources: results}
}

// WriteYAML encodes the report as YAML
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode report")
	}
	return enc.Close()
}
