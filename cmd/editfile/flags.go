package editfile

import (
	"github.com/spf13/cobra"
)

// resourceFlags are the attribute bag keys exposed as command flags
type resourceFlags struct {
	name                string
	match               string
	line                string
	ensure              string
	creates             string
	matchIsString       bool
	exact               bool
	alwaysEnsureMatches bool
	noAppend            bool
	noFailWithoutParent bool
}

// flagAttributes maps flag names to attribute bag keys
var flagAttributes = map[string]string{
	"name":                   "name",
	"match":                  "match",
	"line":                   "line",
	"ensure":                 "ensure",
	"creates":                "creates",
	"match-is-string":        "match_is_string",
	"exact":                  "exact",
	"always-ensure-matches":  "always_ensure_matches",
	"no-append":              "no_append",
	"no-fail-without-parent": "no_fail_without_parent",
}

func (f *resourceFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", MsgFlagName)
	flags.StringVarP(&f.match, "match", "m", "", MsgFlagMatch)
	flags.StringVarP(&f.line, "line", "l", "", MsgFlagLine)
	flags.StringVarP(&f.ensure, "ensure", "e", "present", MsgFlagEnsure)
	flags.StringVar(&f.creates, "creates", "", MsgFlagCreates)
	flags.BoolVar(&f.matchIsString, "match-is-string", false, MsgFlagMatchIsString)
	flags.BoolVarP(&f.exact, "exact", "x", false, MsgFlagExact)
	flags.BoolVar(&f.alwaysEnsureMatches, "always-ensure-matches", false, MsgFlagAlwaysEnsureMatches)
	flags.BoolVar(&f.noAppend, "no-append", false, MsgFlagNoAppend)
	flags.BoolVar(&f.noFailWithoutParent, "no-fail-without-parent", false, MsgFlagNoFailWithoutParent)
}

// attributes builds the attribute bag for path from the flags that were
// set on the command line
func (f *resourceFlags) attributes(cmd *cobra.Command, path string) map[string]interface{} {
	values := map[string]interface{}{
		"name":                   f.name,
		"match":                  f.match,
		"line":                   f.line,
		"ensure":                 f.ensure,
		"creates":                f.creates,
		"match-is-string":        f.matchIsString,
		"exact":                  f.exact,
		"always-ensure-matches":  f.alwaysEnsureMatches,
		"no-append":              f.noAppend,
		"no-fail-without-parent": f.noFailWithoutParent,
	}

	attrs := map[string]interface{}{"path": path}
	for flag, key := range flagAttributes {
		if cmd.Flags().Changed(flag) {
			attrs[key] = values[flag]
		}
	}
	return attrs
}
