package editfile

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Idempotent regex-driven edits of text files"
	MsgCheckShort      = "Check whether a file holds the desired state"
	MsgApplyShort      = "Bring a file to the desired state"
	MsgRunShort        = "Apply every resource of a manifest"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice    = "DRY RUN MODE - No changes were made"
	MsgCheckHolds      = "holds"
	MsgCheckDiffers    = "differs"
	MsgSummaryFormat   = "\n%d resources: %d changed, %d unchanged, %d failed\n"
	MsgVersionFormat   = "editfile version %s\n  commit: %s\n  built:  %s\n"
	MsgResourceErrItem = "  %s\n"

	// Error messages
	MsgErrBuildResource = "invalid resource: %w"
	MsgErrLoadManifest  = "failed to load manifest: %w"
	MsgErrRunFailed     = "%d of %d resources failed"
	MsgErrReportFormat  = "unknown report format %q (use text or yaml)"
	MsgErrDumpConfig    = "failed to render configuration: %w"

	// Flag descriptions
	MsgFlagVerbose             = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun              = "Preview changes without writing them"
	MsgFlagConfig              = "Configuration file (default $XDG_CONFIG_HOME/editfile/config.toml)"
	MsgFlagColor               = "Colorize output: auto, always or never"
	MsgFlagName                = "Resource name used in output"
	MsgFlagMatch               = "String or /regex/flags locating existing content"
	MsgFlagMatchIsString       = "Treat --match as a literal string even if it looks like a regex"
	MsgFlagLine                = "Text that must be present in the file"
	MsgFlagEnsure              = "present, absent, or the text to ensure"
	MsgFlagExact               = "Match the whole content instead of single lines"
	MsgFlagCreates             = "Pattern that is found once the resource holds"
	MsgFlagAlwaysEnsureMatches = "Hold only when --match no longer matches and --line is present"
	MsgFlagNoAppend            = "Do not append --line when nothing matches"
	MsgFlagNoFailWithoutParent = "Skip instead of failing when the parent directory is missing"
	MsgFlagDiff                = "Print the diff of the change"
	MsgFlagReport              = "Report format: text or yaml"
	MsgFlagTemplate            = "Print a commented configuration file template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
