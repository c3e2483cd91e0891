package resource

import (
	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/types"
	"github.com/go-viper/mapstructure/v2"
)

// attributes is the accepted shape of an attribute bag
type attributes struct {
	Name                string `mapstructure:"name"`
	Path                string `mapstructure:"path"`
	Match               string `mapstructure:"match"`
	MatchIsString       bool   `mapstructure:"match_is_string"`
	Exact               bool   `mapstructure:"exact"`
	Ensure              string `mapstructure:"ensure"`
	Line                string `mapstructure:"line"`
	AlwaysEnsureMatches bool   `mapstructure:"always_ensure_matches"`
	Creates             string `mapstructure:"creates"`
	NoFailWithoutParent bool   `mapstructure:"no_fail_without_parent"`
	NoAppend            bool   `mapstructure:"no_append"`
}

// FromAttributes builds an EditSpec from a host attribute bag. Booleans may
// be given as strings ("true", "0", ...). Unknown keys are rejected.
//
// ensure is "present" (the default), "absent", or any other text, which
// means present with that text as the line.
func FromAttributes(attrs map[string]interface{}) (types.EditSpec, error) {
	var a attributes
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &a,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return types.EditSpec{}, errors.Wrap(err, errors.ErrInternal, "failed to create attribute decoder")
	}
	if err := decoder.Decode(attrs); err != nil {
		return types.EditSpec{}, errors.Wrap(err, errors.ErrConfigInvalid, "invalid attributes")
	}

	spec := types.EditSpec{
		Name:                a.Name,
		Path:                a.Path,
		Match:               a.Match,
		MatchIsString:       a.MatchIsString,
		Exact:               a.Exact,
		Line:                a.Line,
		Creates:             a.Creates,
		AlwaysEnsureMatches: a.AlwaysEnsureMatches,
		NoAppend:            a.NoAppend,
		NoFailWithoutParent: a.NoFailWithoutParent,
	}

	switch types.Ensure(a.Ensure) {
	case "", types.EnsurePresent:
		spec.Ensure = types.EnsurePresent
	case types.EnsureAbsent:
		spec.Ensure = types.EnsureAbsent
	default:
		if a.Line != "" && a.Line != a.Ensure {
			return types.EditSpec{}, errors.New(errors.ErrConfigInvalid,
				"ensure text and line are both set and differ").
				WithDetail("path", a.Path)
		}
		spec.Ensure = types.EnsurePresent
		spec.Line = a.Ensure
	}

	if spec.Path == "" {
		return types.EditSpec{}, errors.New(errors.ErrConfigInvalid, "path is required").
			WithDetail("name", a.Name)
	}
	return spec, nil
}
