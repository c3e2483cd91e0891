// Package manifest loads lists of edit resources from YAML or TOML files.
//
// A manifest has a top-level resources list; every entry is an attribute
// bag as accepted by resource.FromAttributes:
//
//	resources:
//	  - name: umask
//	    path: /etc/login.defs
//	    match: /^UMASK/
//	    line: "UMASK\t022"
//
// Relative paths are resolved against the directory of the manifest.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/resource"
	"github.com/arthur-debert/editfile/pkg/types"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads the manifest at path and returns its specs in file order
func Load(path string) ([]types.EditSpec, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "cannot read manifest %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "failed to parse manifest %s", path).
			WithDetail("path", path)
	}

	entries, ok := k.Get("resources").([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrManifestInvalid, "manifest %s has no resources list", path).
			WithDetail("path", path)
	}

	base := filepath.Dir(path)
	specs := make([]types.EditSpec, 0, len(entries))
	for i, entry := range entries {
		attrs, ok := entry.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrManifestInvalid, "resource #%d in %s is not a table", i+1, path).
				WithDetail("path", path).
				WithDetail("index", i)
		}

		spec, err := resource.FromAttributes(attrs)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "resource #%d in %s", i+1, path).
				WithDetail("path", path).
				WithDetail("index", i)
		}
		if !filepath.IsAbs(spec.Path) {
			spec.Path = filepath.Join(base, spec.Path)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrManifestInvalid, "unsupported manifest format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}
