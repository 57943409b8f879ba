package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/stylus/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded documentation.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the spu documentation" }
func (*topicCmd) Usage() string {
	return `spu topic [-list] [<topic>...]

  Prints the documentation topics, in the given order. "*" prints every topic.
  Without topic, prints the introduction.

Usage Examples:
$ spu topic layouts
$ spu topic -list
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the available topics.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	available, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		fmt.Println(strings.Join(available, "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	for _, topic := range topics {
		if topic != "*" && topic != "readme" && !slices.Contains(available, topic) {
			fmt.Fprintf(os.Stderr, "Error: unknown topic %q, want one of: %s\n", topic, strings.Join(available, ", "))
			return subcommands.ExitUsageError
		}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
