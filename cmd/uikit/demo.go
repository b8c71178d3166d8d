package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/uikit/internal/tui/gallery"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/toast"
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// ErrNotTerminal is returned when the demo is started without a terminal.
var ErrNotTerminal = errors.New("demo needs an interactive terminal on stdout")

type demoOptions struct {
	scheme  string
	logFile string
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive component gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scheme, "scheme", "", "Colour scheme: light, dark or auto (default from config)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append logs to this file while the gallery runs")

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags, opts *demoOptions) error {
	if err := validateScheme(opts.scheme); err != nil {
		return err
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(out.Fd())) {
		return ErrNotTerminal
	}

	// The gallery owns the terminal, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}

	cfg, log, err := flags.settings(w, "demo")
	if err != nil {
		return err
	}

	scheme := cfg.Theme.Scheme
	if opts.scheme != "" {
		scheme = opts.scheme
	}

	provider := toast.NewProvider(toast.WithLogger(log))
	defer provider.Close()

	model := gallery.New(provider,
		gallery.WithScheme(schemeFor(scheme)),
		gallery.WithLogger(log),
	)
	program := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	provider.SetNotify(program.Send)

	log.WithField("scheme", scheme).Info("launching gallery")
	if _, err := program.Run(); err != nil {
		log.Error(err, "gallery failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	return nil
}

func validateScheme(scheme string) error {
	switch scheme {
	case "", "auto", string(components.SchemeLight), string(components.SchemeDark):
		return nil
	}
	return uikiterrors.NewValidationError("scheme", fmt.Sprintf("unknown scheme %q, want light, dark or auto", scheme), nil)
}

// schemeFor maps "auto" to the adaptive theme.
func schemeFor(scheme string) components.Scheme {
	if scheme == "auto" {
		return ""
	}
	return components.Scheme(scheme)
}
