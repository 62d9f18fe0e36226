package bgm

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Column names of the backing store, in persisted order. The Portuguese
// headers are the on-disk format inherited from the original spreadsheet
// and must not change.
const (
	colName   = "nome"
	colWon    = "qtd_ganha"
	colKeep   = "qtd_ficar"
	colCredit = "qtd_credito"
	colValue  = "valor_credito"
	colTotal  = "total_credito"
)

var columns = []string{colName, colWon, colKeep, colCredit, colValue}

// DecodeLedger decodes game records from a CSV stream and returns a
// recomputed Ledger.
//
// Decoding is best effort: missing columns take their zero or default value,
// unreadable quantities count as zero, and an unreadable unit value falls
// back to DefaultCreditValue. Only a structurally broken CSV stream is an
// error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read ledger store: %w", err)
	}

	ledger := NewLedger()
	if len(records) == 0 {
		return ledger, nil
	}

	// Resolve columns by header name so column order and extra columns in
	// an imported file do not matter.
	pos := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		pos[strings.TrimSpace(h)] = i
	}
	field := func(row []string, col string) string {
		i, ok := pos[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, row := range records[1:] {
		ledger.append(Game{
			Name:   strings.TrimSpace(field(row, colName)),
			Won:    toCount(field(row, colWon)),
			Keep:   toCount(field(row, colKeep)),
			Credit: toCount(field(row, colCredit)),
			Value:  toValue(field(row, colValue)),
		})
	}
	ledger.Recompute()
	return ledger, nil
}

// EncodeLedger writes the full ledger as CSV: one header row, one row per
// record. The ledger is recomputed first so the store never holds a stale
// credit or a zero unit value.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.Recompute()
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("could not write ledger header: %w", err)
	}
	for g := range ledger.Games() {
		row := []string{
			g.Name,
			strconv.Itoa(g.Won),
			strconv.Itoa(g.Keep),
			strconv.Itoa(g.Credit),
			g.Value.text(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write record %q: %w", g.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// toCount coerces a stored quantity to a non-negative integer. Fractional
// counts are truncated, anything unreadable counts as zero.
func toCount(s string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	n := int(d.IntPart())
	if n < 0 {
		return 0
	}
	return n
}

// toValue coerces a stored unit value, falling back to the default.
// The zero-value replacement itself happens in Recompute.
func toValue(s string) Money {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return DefaultCreditValue
	}
	return Money{value: d}
}
