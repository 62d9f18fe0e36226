package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	bgm "github.com/NetoSantiago/bgm-pessoal"
	"github.com/google/subcommands"
)

// upsertAndSave applies one registration to the ledger file.
func upsertAndSave(u bgm.Update) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger.Upsert(u)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved %q to %s\n", u.Name, *ledgerFile)
	return subcommands.ExitSuccess
}

// --- Add Command ---

type addCmd struct {
	name  string
	won   int
	keep  int
	value float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "register a game and the units won" }
func (*addCmd) Usage() string {
	return `bgm add -n <name> [-w <won>] [-k <keep>] [-v <value>]

  Registers a game. If the name already exists (matched case-insensitively),
  the won quantity is added to the running tally instead of creating a
  duplicate.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Game name")
	f.IntVar(&c.won, "w", 0, "Units won")
	f.IntVar(&c.keep, "k", 0, "Units to keep")
	f.Float64Var(&c.value, "v", -1, "Credit value per surplus unit (default when omitted)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.won < 0 || c.keep < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	u := bgm.Update{Name: c.name, Won: &c.won, Keep: &c.keep}
	if c.value >= 0 {
		v := bgm.M(c.value)
		u.Value = &v
	}
	return upsertAndSave(u)
}

// --- Update Command ---

type updateCmd struct {
	name  string
	won   int
	keep  int
	value float64
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "correct an existing game record" }
func (*updateCmd) Usage() string {
	return `bgm update -n <name> [-w <won_delta>] [-k <keep>] [-v <value>]

  Updates a game. -w adds newly won units to the tally; -k and -v replace
  the stored keep quantity and unit value. Omitted flags leave the field
  untouched.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Game name")
	f.IntVar(&c.won, "w", 0, "Units won since the last registration")
	f.IntVar(&c.keep, "k", -1, "New keep quantity (unchanged when omitted)")
	f.Float64Var(&c.value, "v", -1, "New credit value per unit (unchanged when omitted)")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.won < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	u := bgm.Update{Name: c.name, Won: &c.won}
	if c.keep >= 0 {
		u.Keep = &c.keep
	}
	if c.value >= 0 {
		v := bgm.M(c.value)
		u.Value = &v
	}
	return upsertAndSave(u)
}
