package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bgm "github.com/NetoSantiago/bgm-pessoal"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the store with an external CSV file" }
func (*importCmd) Usage() string {
	return `bgm import <file>

  Reads a CSV file in the store's layout, recomputes it, and saves it as
  the new store. The current store is replaced unconditionally; nothing is
  merged.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	in, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	ledger, err := bgm.ImportLedger(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d records from %s into %s\n", ledger.Len(), path, *ledgerFile)
	return subcommands.ExitSuccess
}
