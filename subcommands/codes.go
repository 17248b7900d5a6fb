package subcommands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/bedrock-tool/mcevents/events"
	"github.com/bedrock-tool/mcevents/locale"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"golang.org/x/exp/maps"
)

type CodesCMD struct{}

func (*CodesCMD) Name() string     { return "codes" }
func (*CodesCMD) Synopsis() string { return locale.Loc("codes_synopsis", nil) }

func (c *CodesCMD) SetFlags(f *flag.FlagSet) {}

func (c *CodesCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *CodesCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	writeCodes(os.Stdout)
	return 0
}

var heading = color.New(color.FgCyan, color.Bold)

// writeCodes prints each string coded enum as "value code" lines under its name.
func writeCodes(w io.Writer) {
	table := events.CodeTable()
	names := maps.Keys(table)
	slices.Sort(names)
	for _, name := range names {
		heading.Fprintln(w, name)
		for i, code := range table[name] {
			fmt.Fprintf(w, "  %-3d %s\n", i, code)
		}
	}
}

func init() {
	utils.RegisterCommand(&CodesCMD{})
}
