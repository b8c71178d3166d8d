package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/colorsync"
)

type syncColorsOptions struct {
	input  string
	output string
	pkg    string
	check  bool
}

func newSyncColorsCmd(flags *rootFlags) *cobra.Command {
	opts := &syncColorsOptions{}

	cmd := &cobra.Command{
		Use:   "sync-colors",
		Short: "Generate Go colour tokens from stylesheet variables",
		Long: `Read the --name: value; custom properties of a stylesheet and write them
as a Go token file for the theme. Variables inside a .dark block become the
dark scheme. With --check nothing is written; the command prints a diff and
fails when the generated file is out of date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncColors(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Stylesheet to read (default from config, global.css)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Go file to write (default from config, internal/ui/tokens/colors_gen.go)")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "Package name of the generated file (default from config, tokens)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Report drift without writing")

	return cmd
}

func runSyncColors(cmd *cobra.Command, flags *rootFlags, opts *syncColorsOptions) error {
	cfg, log, err := flags.settings(cmd.ErrOrStderr(), "sync-colors")
	if err != nil {
		return err
	}

	syncOpts := colorsync.Options{
		Input:   cfg.Colors.Input,
		Output:  cfg.Colors.Output,
		Package: cfg.Colors.Package,
		Logger:  log,
	}
	if cmd.Flags().Changed("input") {
		syncOpts.Input = opts.input
	}
	if cmd.Flags().Changed("output") {
		syncOpts.Output = opts.output
	}
	if cmd.Flags().Changed("package") {
		syncOpts.Package = opts.pkg
	}

	ctx := cmd.Context()
	plan, err := colorsync.Evaluate(ctx, syncOpts)
	if err != nil {
		log.Error(err, "sync-colors failed")
		return err
	}

	out := cmd.OutOrStdout()
	if opts.check {
		if !plan.UpToDate() {
			fmt.Fprint(out, plan.Diff)
		}
		return colorsync.Check(plan)
	}

	if err := colorsync.Apply(ctx, plan, log); err != nil {
		log.Error(err, "sync-colors failed")
		return err
	}
	fmt.Fprintf(out, "Successfully synced CSS variables to %s!\n", plan.Output)
	return nil
}
