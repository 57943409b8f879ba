package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stylus/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type setWeightCmd struct {
	day    string
	backup bool
}

func (*setWeightCmd) Name() string     { return "set-weight" }
func (*setWeightCmd) Synopsis() string { return "set the weight of a fund at a date" }
func (*setWeightCmd) Usage() string {
	return `spu set-weight -d <date> [-backup] <file> <sheet> <id> <weight>

  Sets the weight of the fund <id> in the Stylus portfolio <file>:<sheet>. The
  date column is added if it does not exist yet.

Usage Example:
$ spu set-weight -d 2024-03-31 stylus.xlsx Portfolio FOUSA1 12.5
`
}

func (c *setWeightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "Date of the weight (YYYY-MM-DD).")
	f.BoolVar(&c.backup, "backup", false, "Copy the workbook to <file>.bak before writing.")
}

func (c *setWeightCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "Error: set-weight requires <file> <sheet> <id> <weight>")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	path, sheet, id := f.Arg(0), f.Arg(1), f.Arg(2)

	day, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.day, err)
		return subcommands.ExitFailure
	}
	w, err := decimal.NewFromString(f.Arg(3))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid weight %q: %v\n", f.Arg(3), err)
		return subcommands.ExitFailure
	}

	t, m, status := loadStylus(path, sheet)
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := t.SetWeight(id, day, w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveStylus(path, sheet, t, m, c.backup)
}
