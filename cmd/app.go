// Package cmd implements the CLI application to manage the game ledger.
package cmd

import (
	"flag"
	"os"

	bgm "github.com/NetoSantiago/bgm-pessoal"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&updateCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")

	c.Register(&listCmd{}, "reports")
	c.Register(&bringCmd{}, "reports")
	c.Register(&creditCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", envOr("BGM_LEDGER_FILE", "jogos.csv"), "Path to the ledger file (CSV)")

func init() {
	// The default credit value can be overridden per directory.
	if v := envOr("BGM_DEFAULT_VALUE", ""); v != "" {
		if m, err := bgm.ParseMoney(v); err == nil && m.IsPositive() {
			bgm.DefaultCreditValue = m
		}
	}
}

// envOr reads an environment variable with a fallback, loading a local .env
// file first so the store location can be configured per directory.
func envOr(key, fallback string) string {
	_ = godotenv.Load()
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DecodeLedger loads the ledger from the app ledger file. A missing file is
// an empty ledger.
func DecodeLedger() (*bgm.Ledger, error) {
	return bgm.LoadLedger(*ledgerFile)
}

// SaveLedger overwrites the app ledger file with the recomputed ledger.
func SaveLedger(ledger *bgm.Ledger) error {
	return bgm.SaveLedger(*ledgerFile, ledger)
}
