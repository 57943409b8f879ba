package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addFundCmd struct {
	label  string
	dbid   string
	backup bool
}

func (*addFundCmd) Name() string     { return "add-fund" }
func (*addFundCmd) Synopsis() string { return "add a fund to a Stylus portfolio" }
func (*addFundCmd) Usage() string {
	return `spu add-fund [-label <label>] [-dbid <dbid>] [-backup] <file> <sheet> <id>

  Appends the fund <id> to the Stylus portfolio in <file>:<sheet>. The fund has
  no weight yet, use set-weight to give it some.

Usage Example:
$ spu add-fund -label "MStarFund" -dbid MfX stylus.xlsx Portfolio FOUSA1
`
}

func (c *addFundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.label, "label", "", "Display name of the fund.")
	f.StringVar(&c.dbid, "dbid", "", "Database identifier of the fund.")
	f.BoolVar(&c.backup, "backup", false, "Copy the workbook to <file>.bak before writing.")
}

func (c *addFundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: add-fund requires <file> <sheet> <id>")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	path, sheet, id := f.Arg(0), f.Arg(1), f.Arg(2)

	t, m, status := loadStylus(path, sheet)
	if status != subcommands.ExitSuccess {
		return status
	}
	if _, err := t.AddFund(id, c.label, c.dbid); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveStylus(path, sheet, t, m, c.backup)
}
