package commands

import (
	"context"
	"os"

	txxterrors "git.home.luguber.info/inful/txxt/internal/errors"
	"git.home.luguber.info/inful/txxt/internal/lint"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
	Quiet  bool   `short:"q" help:"Only show errors, suppress warnings"`
	Path   string `arg:"" type:"existingpath" help:"File or directory to check"`
}

// Run executes the check command.
func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	linter := lint.NewLinter(&lint.Config{
		Quiet:         c.Quiet,
		Format:        c.Format,
		Extensions:    cfg.Format.Extensions,
		MaxConcurrent: cfg.Check.MaxConcurrent,
	})

	result, err := linter.LintPath(context.Background(), c.Path)
	if err != nil {
		return err
	}

	if err := lint.NewFormatter(c.Format).Format(os.Stdout, result, c.Path); err != nil {
		return err
	}
	if result.ErrorCount() > 0 {
		return txxterrors.New(txxterrors.CategoryReference, txxterrors.SeverityError, "reference check found errors").
			WithContext("errors", result.ErrorCount())
	}
	return nil
}
