package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/txxt/internal/engine"
)

// FootnotesCmd implements the 'footnotes' command.
type FootnotesCmd struct {
	Write bool   `short:"w" help:"Rewrite the file in place instead of printing to stdout"`
	Path  string `arg:"" type:"existingfile" help:"Document to renumber"`
}

// Run executes the footnotes command.
func (c *FootnotesCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	text, err := readDocument(c.Path, cfg.Format.Extensions)
	if err != nil {
		return err
	}

	out, status := engine.NumberFootnotes(text)
	if status == engine.StatusNoStructure {
		slog.Info("No footnote declarations found, document left unchanged", "path", c.Path)
	}
	return emit(c.Path, out, c.Write)
}
