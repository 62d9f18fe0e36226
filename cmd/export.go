package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	bgm "github.com/NetoSantiago/bgm-pessoal"
	"github.com/google/subcommands"
)

type exportCmd struct {
	report string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a report as CSV" }
func (*exportCmd) Usage() string {
	return `bgm export [-r all|bring|credit] [-o <file>]

  Writes one of the three reports as CSV. Without -o the report goes to
  stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "r", "all", "Report to export (all, bring, credit)")
	f.StringVar(&c.output, "o", "", "Output file (stdout when omitted)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var export func(io.Writer, *bgm.Ledger) error
	switch c.report {
	case "all":
		export = bgm.ExportAll
	case "bring":
		export = bgm.ExportBring
	case "credit":
		export = bgm.ExportCredit
	default:
		fmt.Fprintf(os.Stderr, "unknown report %q\n", c.report)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := io.Writer(os.Stdout)
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if err := export(w, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting report: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %s report to %s\n", c.report, c.output)
	}
	return subcommands.ExitSuccess
}
