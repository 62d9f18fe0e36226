package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "recomputes and rewrites the ledger file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `bgm fmt

  Reads the ledger file, recomputes the derived credit quantities and unit
  values, and writes it back in canonical form. Useful after editing
  jogos.csv by hand.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %d records in %s\n", ledger.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
