package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/NetoSantiago/bgm-pessoal/renderer"
	"github.com/google/subcommands"
)

// --- List Command ---

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the full game table" }
func (*listCmd) Usage() string {
	return `bgm list

  Displays every registered game with its quantities and credit value.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderLedger(slices.Collect(ledger.Games())))
	return subcommands.ExitSuccess
}

// --- Bring Command ---

type bringCmd struct{}

func (*bringCmd) Name() string     { return "bring" }
func (*bringCmd) Synopsis() string { return "display the games to take home" }
func (*bringCmd) Usage() string {
	return `bgm bring

  Displays the games with a positive keep quantity, without the credit
  columns.
`
}

func (c *bringCmd) SetFlags(f *flag.FlagSet) {}

func (c *bringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderBring(ledger.BringReport()))
	return subcommands.ExitSuccess
}

// --- Credit Command ---

type creditCmd struct{}

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "display the games that generate credit" }
func (*creditCmd) Usage() string {
	return `bgm credit

  Displays the games with surplus units, the credit each one generates, and
  the aggregate total.
`
}

func (c *creditCmd) SetFlags(f *flag.FlagSet) {}

func (c *creditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderCredit(ledger.CreditReport()))
	return subcommands.ExitSuccess
}
