package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stylus"
	"github.com/etnz/stylus/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addDateCmd struct {
	day    string
	copy   bool
	backup bool
}

func (*addDateCmd) Name() string     { return "add-date" }
func (*addDateCmd) Synopsis() string { return "add a rebalancing date column" }
func (*addDateCmd) Usage() string {
	return `spu add-date [-d <date>] [-copy] [-backup] <file> <sheet>

  Adds a date column to the Stylus portfolio <file>:<sheet>. Without -d, the
  date is the next rebalancing date after the last date of the portfolio,
  according to its MPI_Rebalance frequency.

  With -copy, every fund gets the last weight it has before that date.

Usage Example:
$ spu add-date -copy stylus.xlsx Portfolio
`
}

func (c *addDateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Date to add (YYYY-MM-DD), next rebalancing date if empty.")
	f.BoolVar(&c.copy, "copy", false, "Copy the weights of the previous date.")
	f.BoolVar(&c.backup, "backup", false, "Copy the workbook to <file>.bak before writing.")
}

func (c *addDateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: add-date requires <file> <sheet>")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	path, sheet := f.Arg(0), f.Arg(1)

	t, m, status := loadStylus(path, sheet)
	if status != subcommands.ExitSuccess {
		return status
	}
	day, err := c.date(t, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if t.HasDate(day) {
		fmt.Fprintf(os.Stderr, "Error: date %s already exists\n", day)
		return subcommands.ExitFailure
	}
	if c.copy {
		copyPrevious(t, day)
	}
	t.AddDate(day)
	fmt.Fprintf(os.Stderr, "Adding date %s\n", day)
	return saveStylus(path, sheet, t, m, c.backup)
}

// date returns the date to add, from the flag or the rebalancing frequency.
func (c *addDateCmd) date(t *stylus.Table, m *stylus.Metadata) (date.Date, error) {
	if c.day != "" {
		return date.Parse(c.day)
	}
	dates := t.Dates()
	if len(dates) == 0 {
		return date.Date{}, fmt.Errorf("portfolio has no date yet, use -d")
	}
	freq, _ := m.Get(stylus.KeyRebalance)
	if freq == "" {
		freq = stylus.DefaultRebalance
	}
	period, err := date.ParsePeriod(freq)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid %s: %w", stylus.KeyRebalance, err)
	}
	return dates[len(dates)-1].Next(period), nil
}

// copyPrevious gives each fund, at day, the last weight it had before day.
func copyPrevious(t *stylus.Table, day date.Date) {
	for _, r := range t.Records() {
		if w, ok := previousWeight(&r.Weights, day); ok {
			r.Weights.Append(day, w)
		}
	}
}

// previousWeight returns the last weight strictly before day.
func previousWeight(h *date.History[decimal.Decimal], day date.Date) (w decimal.Decimal, ok bool) {
	// Usually the new date comes after every weight.
	if last, latest := h.Latest(); !last.IsZero() && last.Before(day) {
		return latest, true
	}
	for d, v := range h.Values() {
		if !d.Before(day) {
			break
		}
		w, ok = v, true
	}
	return w, ok
}
