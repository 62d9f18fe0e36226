package bgm

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file contains functions to handle the import/export surface: the
// three CSV reports and the wholesale restore of the backing store.

// ImportLedger reads an externally supplied file in the store's column
// layout and returns the recomputed ledger. The caller is expected to save
// it, replacing the current store unconditionally; there is no merge.
func ImportLedger(r io.Reader) (*Ledger, error) {
	return DecodeLedger(r)
}

// ExportAll writes the full table, all five columns, unfiltered.
func ExportAll(w io.Writer, ledger *Ledger) error {
	return EncodeLedger(w, ledger)
}

// ExportBring writes the "to bring" report: games with a positive keep
// quantity, credit columns omitted.
func ExportBring(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colName, colWon, colKeep}); err != nil {
		return fmt.Errorf("could not write report header: %w", err)
	}
	for _, row := range ledger.BringReport() {
		rec := []string{row.Name, strconv.Itoa(row.Won), strconv.Itoa(row.Keep)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("could not write record %q: %w", row.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCredit writes the "for credit" report: games with surplus units,
// with the computed total_credito column appended.
func ExportCredit(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	header := []string{colName, colWon, colKeep, colCredit, colValue, colTotal}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write report header: %w", err)
	}
	for _, row := range ledger.CreditReport().Rows {
		rec := []string{
			row.Name,
			strconv.Itoa(row.Won),
			strconv.Itoa(row.Keep),
			strconv.Itoa(row.Credit),
			row.Value.text(),
			row.Total.text(),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("could not write record %q: %w", row.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
