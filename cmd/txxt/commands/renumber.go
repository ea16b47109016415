package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/txxt/internal/engine"
)

// RenumberCmd implements the 'renumber' command.
type RenumberCmd struct {
	Write bool   `short:"w" help:"Rewrite the file in place instead of printing to stdout"`
	Path  string `arg:"" type:"existingfile" help:"Document to repair"`
}

// Run executes the renumber command.
func (c *RenumberCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	text, err := readDocument(c.Path, cfg.Format.Extensions)
	if err != nil {
		return err
	}

	result := engine.FixNumbering(text)
	slog.Info("Numbering repaired", "path", c.Path, "lines_changed", result.LinesChanged)
	return emit(c.Path, result.Text, c.Write)
}
