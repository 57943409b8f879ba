package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stylus"
	"github.com/etnz/stylus/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	format layoutFlag
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a portfolio sheet" }
func (*showCmd) Usage() string {
	return `spu show [-format generic|stylus] <file> <sheet>

  Displays the metadata, the funds and their weights of a portfolio sheet.
  The sheet is expected in the Stylus layout unless -format is given.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.format, "format", "Layout of the sheet: generic or stylus (default stylus).")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: show requires <file> and <sheet>")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	path, sheet := f.Arg(0), f.Arg(1)

	layout := stylus.Stylus
	if c.format.set {
		layout = c.format.layout
	}
	t, m, err := stylus.Load(path, sheet, layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPortfolio(renderer.NewPortfolio(fmt.Sprintf("%s:%s", path, sheet), t, m)))
	return subcommands.ExitSuccess
}
