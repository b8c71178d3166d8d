package colorsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/pkg/diff"
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// ErrNoVariables is returned when the stylesheet declares no custom properties.
var ErrNoVariables = errors.New("no CSS variables found")

// ErrDrift is returned by Check when the generated file is out of date.
var ErrDrift = errors.New("generated tokens are out of date")

// Options configures a sync run. Relative paths resolve against Root, which
// defaults to the git worktree containing the working directory.
type Options struct {
	Input   string
	Output  string
	Package string
	Root    string
	Logger  *logger.Logger
}

// Plan is the outcome of evaluating a sync without writing anything.
type Plan struct {
	Input     string
	Output    string
	Rendered  []byte
	Existing  []byte
	Exists    bool
	Variables int
	Diff      string
}

// UpToDate reports whether the output already matches the rendered tokens.
func (p *Plan) UpToDate() bool {
	return p != nil && p.Exists && p.Diff == ""
}

// Evaluate reads the stylesheet, renders the token file and compares it
// with the current output.
func Evaluate(ctx context.Context, opts Options) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		if root, err = RepoRoot(wd); err != nil {
			return nil, err
		}
	}

	input := resolve(root, opts.Input)
	output := resolve(root, opts.Output)
	pkg := opts.Package
	if pkg == "" {
		pkg = "tokens"
	}

	log := opts.Logger.WithFields(map[string]any{"input": input, "output": output})

	css, err := os.ReadFile(input)
	if err != nil {
		return nil, uikiterrors.NewParseError(input, 0, err)
	}

	palette := Extract(string(css))
	if palette.Len() == 0 {
		return nil, uikiterrors.NewSyncError("extract", input, ErrNoVariables)
	}
	log.WithField("variables", palette.Len()).Debug("extracted stylesheet variables")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := filepath.ToSlash(opts.Input)
	if rel, relErr := filepath.Rel(root, input); relErr == nil {
		source = filepath.ToSlash(rel)
	}

	rendered, err := Generate(palette, pkg, source)
	if err != nil {
		return nil, uikiterrors.NewSyncError("render", output, err)
	}

	plan := &Plan{Input: input, Output: output, Rendered: rendered, Variables: palette.Len()}

	existing, err := os.ReadFile(output)
	switch {
	case err == nil:
		plan.Existing = existing
		plan.Exists = true
		plan.Diff = diff.Unified(existing, rendered, output, output+" (generated)")
	case errors.Is(err, os.ErrNotExist):
		plan.Diff = diff.Unified(nil, rendered, "/dev/null", output)
	default:
		return nil, uikiterrors.NewSyncError("read", output, err)
	}

	return plan, nil
}

// Apply writes the rendered tokens, creating the output directory if needed.
// An up-to-date plan is a no-op.
func Apply(ctx context.Context, plan *Plan, log *logger.Logger) error {
	if plan == nil {
		return uikiterrors.NewSyncError("write", "", errors.New("nil plan"))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if plan.UpToDate() {
		log.WithField("output", plan.Output).Debug("tokens already up to date")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(plan.Output), 0o755); err != nil {
		return uikiterrors.NewSyncError("write", plan.Output, err)
	}
	if err := os.WriteFile(plan.Output, plan.Rendered, 0o644); err != nil {
		return uikiterrors.NewSyncError("write", plan.Output, err)
	}

	log.WithFields(map[string]any{"output": plan.Output, "variables": plan.Variables}).Info("synced CSS variables")
	return nil
}

// Check fails with ErrDrift when the output would change.
func Check(plan *Plan) error {
	if plan == nil {
		return uikiterrors.NewSyncError("check", "", errors.New("nil plan"))
	}
	if plan.UpToDate() {
		return nil
	}
	return uikiterrors.NewSyncError("check", plan.Output, ErrDrift)
}

// Sync evaluates and applies in one step.
func Sync(ctx context.Context, opts Options) (*Plan, error) {
	plan, err := Evaluate(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := Apply(ctx, plan, opts.Logger); err != nil {
		return plan, err
	}
	return plan, nil
}
