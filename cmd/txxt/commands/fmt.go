package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/txxt/internal/engine"
	txxterrors "git.home.luguber.info/inful/txxt/internal/errors"
)

// FmtCmd implements the 'fmt' command.
type FmtCmd struct {
	Write bool     `short:"w" help:"Rewrite files in place instead of printing to stdout"`
	Full  bool     `help:"Also refresh the table of contents and renumber footnotes"`
	Paths []string `arg:"" type:"existingfile" help:"Documents to reformat"`
}

// Run executes the fmt command.
func (f *FmtCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if len(f.Paths) > 1 && !f.Write {
		return txxterrors.ValidationFailed("paths", "formatting multiple files requires --write")
	}

	full := f.Full || cfg.Format.Full
	for _, path := range f.Paths {
		text, err := readDocument(path, cfg.Format.Extensions)
		if err != nil {
			return err
		}

		var out string
		if full {
			out = engine.FullFormat(text)
		} else {
			out = engine.FormatDocument(text)
		}
		if err := emit(path, out, f.Write); err != nil {
			return err
		}
		if f.Write && out != text {
			slog.Info("Reformatted", "path", path)
		}
	}
	return nil
}
