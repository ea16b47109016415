package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/txxt/internal/config"
	txxterrors "git.home.luguber.info/inful/txxt/internal/errors"
)

// Global context passed to subcommands if we need to share state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"txxt.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Fmt       FmtCmd       `cmd:"" help:"Reformat txxt documents"`
	Toc       TocCmd       `cmd:"" help:"Insert or refresh the table of contents"`
	Footnotes FootnotesCmd `cmd:"" help:"Renumber footnotes consistently"`
	Renumber  RenumberCmd  `cmd:"" help:"Repair repeated literal numbering in lists and sections"`
	Check     CheckCmd     `cmd:"" aliases:"lint" help:"Validate formatting and cross-document references"`
	Watch     WatchCmd     `cmd:"" help:"Watch paths and reformat documents as they change"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the tool configuration referenced by the root flags.
func loadConfig(root *CLI) (*config.Config, error) {
	return config.Load(root.Config)
}

// readDocument gates on file type and reads the document.
func readDocument(path string, extensions []string) (string, error) {
	if !hasDocExtension(path, extensions) {
		return "", txxterrors.UnsupportedDocument(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", txxterrors.ReadError(path, err)
	}
	return string(data), nil
}

func hasDocExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// emit writes the transformed document back in place or to stdout.
func emit(path, out string, write bool) error {
	if !write {
		_, err := fmt.Print(out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return txxterrors.WriteError(path, err)
	}
	return nil
}
