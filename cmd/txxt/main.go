package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/txxt/cmd/txxt/commands"
	txxterrors "git.home.luguber.info/inful/txxt/internal/errors"
	"git.home.luguber.info/inful/txxt/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("txxt"),
		kong.Description("Structure tools for txxt plain-text documents: formatting, tables of contents, footnotes, numbering repair, and reference checking."),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{}, &cli); err != nil {
		fmt.Fprintf(os.Stderr, "txxt: %v\n", err)
		os.Exit(txxterrors.ExitCodeFor(err))
	}
}
