// Command spu merges and reformats Stylus portfolio spreadsheets.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stylus/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Shell completion, it exits when invoked by the shell.
	completion().Complete("spu")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes spu subcommands and flags for shell completion.
func completion() *complete.Command {
	layouts := predict.Set{"generic", "stylus"}
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{"raw": predict.Nothing},
	}
	for _, commands := range cmd.Commands() {
		for _, c := range commands {
			sub := &complete.Command{
				Flags: map[string]complete.Predictor{},
				Args:  predict.Files("*.xlsx"),
			}
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			fs.VisitAll(func(f *flag.Flag) {
				switch f.Name {
				case "format", "existing-format":
					sub.Flags[f.Name] = layouts
				case "meta":
					sub.Flags[f.Name] = predict.Files("*.yaml")
				default:
					if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
						sub.Flags[f.Name] = predict.Nothing
					} else {
						sub.Flags[f.Name] = predict.Something
					}
				}
			})
			root.Sub[c.Name()] = sub
		}
	}
	return root
}
