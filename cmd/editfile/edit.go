package editfile

import (
	"fmt"

	"github.com/arthur-debert/editfile/pkg/editor"
	"github.com/arthur-debert/editfile/pkg/logging"
	"github.com/arthur-debert/editfile/pkg/resource"
	"github.com/spf13/cobra"
)

// buildEditor turns the command line into an editor for one resource
func buildEditor(a *app, cmd *cobra.Command, f *resourceFlags, path string) (*editor.Editor, error) {
	spec, err := resource.FromAttributes(f.attributes(cmd, path))
	if err != nil {
		return nil, fmt.Errorf(MsgErrBuildResource, err)
	}
	ed, err := editor.New(spec, a.editorOptions())
	if err != nil {
		return nil, fmt.Errorf(MsgErrBuildResource, err)
	}
	return ed, nil
}

func newCheckCmd(a *app) *cobra.Command {
	f := &resourceFlags{}
	cmd := &cobra.Command{
		Use:     "check FILE",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := buildEditor(a, cmd, f, args[0])
			if err != nil {
				return err
			}

			exists, err := ed.Exists()
			if err != nil {
				return err
			}
			spec := ed.Spec()
			holds := exists != spec.IsAbsent()

			logger := logging.GetLogger("cmd.check")
			logger.Info().
				Str("path", spec.Path).
				Bool("exists", exists).
				Bool("holds", holds).
				Msg("Checked resource")

			s := a.styler(cmd)
			status := MsgCheckHolds
			if !holds {
				status = MsgCheckDiffers
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", statusCell(s, status), s.Path(spec.DisplayName()))
			if !holds {
				return ErrCheckFailed
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	f := &resourceFlags{}
	var showDiff bool

	cmd := &cobra.Command{
		Use:     "apply FILE",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := buildEditor(a, cmd, f, args[0])
			if err != nil {
				return err
			}

			res, err := resource.Apply(ed, resource.ApplyOptions{DryRun: a.dryRun})
			printResult(cmd, a.styler(cmd), res, showDiff || a.dryRun)
			if err != nil {
				return err
			}
			if a.dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, MsgFlagDiff)
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var report string

	cmd := &cobra.Command{
		Use:     "run MANIFEST",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if report != "text" && report != "yaml" {
				return fmt.Errorf(MsgErrReportFormat, report)
			}

			specs, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			runner := resource.Runner{
				Editor: a.editorOptions(),
				Apply:  resource.ApplyOptions{DryRun: a.dryRun},
			}
			results := runner.Run(specs)
			summary := resource.Summarize(results)

			if report == "yaml" {
				if err := resource.NewReport(results, a.dryRun).WriteYAML(cmd.OutOrStdout()); err != nil {
					return err
				}
			} else {
				printResults(cmd, a.styler(cmd), results, a.dryRun)
			}

			if summary.Failed > 0 {
				return fmt.Errorf(MsgErrRunFailed, summary.Failed, summary.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&report, "report", "text", MsgFlagReport)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if template {
				fmt.Fprintln(cmd.OutOrStdout(), configTemplate())
				return nil
			}
			out, err := a.cfg.Dump()
			if err != nil {
				return fmt.Errorf(MsgErrDumpConfig, err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	return cmd
}
