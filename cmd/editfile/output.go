package editfile

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/editfile/pkg/config"
	"github.com/arthur-debert/editfile/pkg/manifest"
	"github.com/arthur-debert/editfile/pkg/resource"
	"github.com/arthur-debert/editfile/pkg/style"
	"github.com/arthur-debert/editfile/pkg/types"
	"github.com/spf13/cobra"
)

const statusWidth = len(resource.StatusWouldDestroy)

// statusCell renders a status word padded to a fixed width; padding is
// added outside the styling so escape sequences do not count
func statusCell(s *style.Styler, status string) string {
	pad := statusWidth - len(status)
	if pad < 0 {
		pad = 0
	}
	return s.Status(status) + strings.Repeat(" ", pad)
}

func printResult(cmd *cobra.Command, s *style.Styler, res resource.Result, showDiff bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", statusCell(s, string(res.Status)), s.Path(res.Name))
	if res.Error != "" {
		fmt.Fprintf(out, MsgResourceErrItem, s.Error(res.Error))
	}
	if showDiff && res.Diff != "" {
		fmt.Fprint(out, s.Diff(res.Diff))
	}
}

func printResults(cmd *cobra.Command, s *style.Styler, results []resource.Result, dryRun bool) {
	for _, res := range results {
		printResult(cmd, s, res, dryRun)
	}

	sum := resource.Summarize(results)
	fmt.Fprintf(cmd.OutOrStdout(), MsgSummaryFormat, sum.Total, sum.Changed, sum.Unchanged, sum.Failed)
	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
	}
}

func loadManifest(path string) ([]types.EditSpec, error) {
	specs, err := manifest.Load(path)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadManifest, err)
	}
	return specs, nil
}

func configTemplate() string {
	return config.GenerateConfigContent()
}
