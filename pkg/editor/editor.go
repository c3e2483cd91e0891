package editor

import (
	"io/fs"
	"time"

	"github.com/arthur-debert/editfile/pkg/errors"
	"github.com/arthur-debert/editfile/pkg/filesystem"
	"github.com/arthur-debert/editfile/pkg/logging"
	"github.com/arthur-debert/editfile/pkg/matchspec"
	"github.com/arthur-debert/editfile/pkg/regex"
	"github.com/arthur-debert/editfile/pkg/types"
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

// DefaultCreateMode is the permission of files the editor creates
const DefaultCreateMode fs.FileMode = 0644

// Options configures an Editor
type Options struct {
	// FileSystem defaults to the OS filesystem
	FileSystem types.FS

	// Logger defaults to the "editor" component logger
	Logger *zerolog.Logger

	// MatchTimeout bounds every single regex match; zero means no limit
	MatchTimeout time.Duration

	// CreateMode is used for files that do not exist yet
	CreateMode fs.FileMode
}

// Editor applies one EditSpec to its file
type Editor struct {
	spec types.EditSpec

	// compiled is nil only for absent specs without match or line
	compiled *regex.Compiled
	creates  *regexp2.Regexp
	literal  *regexp2.Regexp

	// replacement is the ensure-text as it is substituted: the raw text in
	// exact mode, the text without its line terminator in line mode
	replacement regex.Template

	// appendText is the ensure-text without its line terminator, used when
	// nothing matches
	appendText regex.Template

	fs         types.FS
	logger     zerolog.Logger
	createMode fs.FileMode
}

// New validates spec and compiles its patterns
func New(spec types.EditSpec, opts Options) (*Editor, error) {
	if spec.Path == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "path is required")
	}
	if spec.Ensure == "" {
		spec.Ensure = types.EnsurePresent
	}
	if spec.Ensure != types.EnsurePresent && spec.Ensure != types.EnsureAbsent {
		return nil, errors.Newf(errors.ErrConfigInvalid, "invalid ensure value %q", spec.Ensure)
	}
	if !spec.IsAbsent() && spec.Line == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "ensure text is required when ensuring presence").
			WithDetail("path", spec.Path)
	}

	e := &Editor{
		spec:       spec,
		fs:         opts.FileSystem,
		createMode: opts.CreateMode,
	}
	if e.fs == nil {
		e.fs = filesystem.NewOS()
	}
	if e.createMode == 0 {
		e.createMode = DefaultCreateMode
	}
	if opts.Logger != nil {
		e.logger = *opts.Logger
	} else {
		e.logger = logging.GetLogger("editor")
	}
	e.logger = e.logger.With().Str("path", spec.Path).Logger()

	if err := e.compile(regex.Options{MatchTimeout: opts.MatchTimeout}); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Editor) compile(opts regex.Options) error {
	line := e.spec.Line
	if !e.spec.Exact {
		line = types.Chomp(line)
	}
	e.replacement = regex.ParseTemplate(line)
	e.appendText = regex.ParseTemplate(types.Chomp(e.spec.Line))

	if e.spec.HasMatch() || e.spec.Line != "" {
		p, err := matchspec.Normalize(e.spec)
		if err != nil {
			return err
		}

		compiled, err := regex.Compile(p, e.spec.Exact, opts)
		if err != nil {
			return err
		}
		e.compiled = compiled
	}

	if e.spec.Line != "" {
		literal, err := regex.CompileLiteralLine(types.Chomp(e.spec.Line), opts)
		if err != nil {
			return err
		}
		e.literal = literal
	}

	if e.spec.Creates != "" {
		p, err := matchspec.Parse(e.spec.Creates, "creates")
		if err != nil {
			return err
		}
		creates, err := regex.CompilePattern(p, "creates", opts)
		if err != nil {
			return err
		}
		e.creates = creates
	}

	e.logger.Debug().
		Str("pattern", e.describePattern()).
		Bool("exact", e.spec.Exact).
		Bool("backrefs", e.replacement.HasBackreferences()).
		Msg("Compiled edit patterns")
	return nil
}

// Spec returns the spec the editor was built from
func (e *Editor) Spec() types.EditSpec {
	return e.spec
}

// HasBackreferences reports whether the ensure-text depends on the match
func (e *Editor) HasBackreferences() bool {
	return e.replacement.HasBackreferences()
}

func (e *Editor) describePattern() string {
	if e.compiled == nil {
		return ""
	}
	return e.compiled.Primary.String()
}
