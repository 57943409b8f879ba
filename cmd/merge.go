package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/stylus"
	"github.com/google/subcommands"
)

type mergeCmd struct {
	format         layoutFlag
	existingFormat layoutFlag
	metaFile       string
	strict         bool
	create         bool
	backup         bool

	in  io.Reader // answers to layout questions, os.Stdin if nil
	out io.Writer // questions and progress, os.Stderr if nil
}

func (*mergeCmd) Name() string { return "merge" }
func (*mergeCmd) Synopsis() string {
	return "write a portfolio in the Stylus layout, optionally merged into an existing one"
}
func (*mergeCmd) Usage() string {
	return `spu merge [-format generic|stylus] [-existing-format generic|stylus] [-meta <overrides.yaml>] [-strict] [-create] [-backup] <file> <sheet> <out_file> <out_sheet> [<existing_file> <existing_sheet>]

  Reads the portfolio in <file>:<sheet> and writes it in the Stylus layout to
  <out_file>:<out_sheet>. If <existing_file>:<existing_sheet> is given, the
  portfolio is merged into it first: funds and dates are added, and weights
  of <file> take precedence.

  Unless -format is given, you are asked whether each input is in the Stylus
  layout.

Usage Examples:
# Converts a generic portfolio.
$ spu merge -format generic funds.xlsx Sheet1 stylus.xlsx Portfolio

# Adds new weights to an existing Stylus portfolio, in place.
$ spu merge -format generic -existing-format stylus -backup new.xlsx Sheet1 stylus.xlsx Portfolio stylus.xlsx Portfolio

`
}

func (p *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&p.format, "format", "Layout of <file>: generic or stylus. Asked if not set.")
	f.Var(&p.existingFormat, "existing-format", "Layout of <existing_file>: generic or stylus. Asked if not set.")
	f.StringVar(&p.metaFile, "meta", "", "YAML file of metadata keys to set on the output.")
	f.BoolVar(&p.strict, "strict", false, "Fail when both portfolios have different labels or DBIDs for a fund.")
	f.BoolVar(&p.create, "create", false, "Create the output workbook or sheet if it does not exist.")
	f.BoolVar(&p.backup, "backup", false, "Copy the output workbook to <out_file>.bak before writing.")
}

func (p *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, out := p.in, p.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}

	args := f.Args()
	if len(args) != 4 && len(args) != 6 {
		fmt.Fprintln(out, "Please pass either 4 or 6 parameters!")
		fmt.Fprint(out, p.Usage())
		return subcommands.ExitSuccess
	}

	answers := bufio.NewReader(in)
	job := stylus.Job{
		Input:  stylus.Source{Path: args[0], Sheet: args[1]},
		Output: stylus.Target{Path: args[2], Sheet: args[3]},
		Strict: p.strict,
		Create: p.create,
	}
	var err error
	if job.Input.Layout, err = p.format.resolve(answers, out, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(args) == 6 {
		job.Existing = &stylus.Source{Path: args[4], Sheet: args[5]}
		if job.Existing.Layout, err = p.existingFormat.resolve(answers, out, args[4]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if p.metaFile != "" {
		if job.Overrides, err = readOverrides(p.metaFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if p.backup {
		if err := doBackup(job.Output.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := stylus.Run(job, log.New(out, "", 0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func readOverrides(path string) (*stylus.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open metadata overrides: %w", err)
	}
	defer f.Close()
	return stylus.DecodeOverrides(f)
}
