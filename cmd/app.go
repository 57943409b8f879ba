// Package cmd implements the spu CLI application.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stylus"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rawOutput = flag.Bool("raw", false, "Print markdown as is, without terminal rendering")

// Commands returns the spu subcommands indexed by their group.
func Commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"portfolio": {&mergeCmd{}, &showCmd{}},
		"edition":   {&addFundCmd{}, &setWeightCmd{}, &addDateCmd{}},
		"help":      {&topicCmd{}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for group, commands := range Commands() {
		for _, cmd := range commands {
			c.Register(cmd, group)
		}
	}
}

// layoutFlag selects the layout of an input sheet, blank means ask the user.
type layoutFlag struct {
	set    bool
	layout stylus.Layout
}

func (l *layoutFlag) String() string {
	if !l.set {
		return ""
	}
	return l.layout.String()
}

func (l *layoutFlag) Set(s string) error {
	layout, err := stylus.ParseLayout(s)
	if err != nil {
		return err
	}
	l.set, l.layout = true, layout
	return nil
}

// resolve returns the layout from the flag or asks whether the file is in the Stylus layout.
func (l *layoutFlag) resolve(in *bufio.Reader, out io.Writer, file string) (stylus.Layout, error) {
	if l.set {
		return l.layout, nil
	}
	fmt.Fprintf(out, "Is %s Stylus-formatted? (0 for No, 1 for Yes) >> ", file)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return stylus.Generic, fmt.Errorf("cannot read answer: %w", err)
	}
	answer, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return stylus.Generic, fmt.Errorf("invalid answer %q, want 0 or 1", strings.TrimSpace(line))
	}
	if answer == 0 {
		return stylus.Generic, nil
	}
	return stylus.Stylus, nil
}

// printMarkdown prints md to stdout, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *rawOutput {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: cannot render markdown: %v\n", err)
	fmt.Print(md)
}

// loadStylus loads a portfolio sheet in the Stylus layout.
func loadStylus(path, sheet string) (*stylus.Table, *stylus.Metadata, subcommands.ExitStatus) {
	t, m, err := stylus.Load(path, sheet, stylus.Stylus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	return t, m, subcommands.ExitSuccess
}

// saveStylus recomputes the metadata of an edited portfolio and writes it back in place.
func saveStylus(path, sheet string, t *stylus.Table, m *stylus.Metadata, backup bool) subcommands.ExitStatus {
	if backup {
		if err := doBackup(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	m = stylus.UpdateMetadata(t, m, nil)
	if err := stylus.Write(path, sheet, t, m, stylus.WriteOptions{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully saved %s:%s\n", path, sheet)
	return subcommands.ExitSuccess
}

func doBackup(path string) error {
	backup, err := stylus.Backup(path)
	if err != nil {
		return err
	}
	if backup != "" {
		fmt.Fprintf(os.Stderr, "Backup saved to %s\n", backup)
	}
	return nil
}
