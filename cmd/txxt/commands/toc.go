package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/txxt/internal/engine"
)

// TocCmd implements the 'toc' command.
type TocCmd struct {
	Write bool   `short:"w" help:"Rewrite the file in place instead of printing to stdout"`
	Path  string `arg:"" type:"existingfile" help:"Document to update"`
}

// Run executes the toc command.
func (c *TocCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	text, err := readDocument(c.Path, cfg.Format.Extensions)
	if err != nil {
		return err
	}

	out, status := engine.GenerateTOC(text)
	if status == engine.StatusNoStructure {
		// Nothing to do; the document has no section headers.
		slog.Info("No sections found, document left unchanged", "path", c.Path)
		if !c.Write {
			return emit(c.Path, out, false)
		}
		return nil
	}
	return emit(c.Path, out, c.Write)
}
