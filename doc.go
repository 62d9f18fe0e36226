// Package bgm keeps a personal ledger of board games won at conventions and
// tournaments: how many units of each title were acquired, how many the
// owner intends to keep, and the surplus that converts into store credit.
//
// The core functionalities include:
//   - Ledger Management: a single in-memory table of game records, keyed by
//     case-insensitive name, mutated through an insert-or-update operation.
//   - Credit Derivation: a pure recompute pass that derives the credited
//     quantity (won minus keep, floored at zero) and enforces a non-zero
//     unit credit value on every record.
//   - Data Persistence: loading and wholesale saving of the ledger as a flat
//     CSV file (jogos.csv), tolerant of missing files and malformed values.
//   - Reports: filtered views of the table ("to bring", "for credit") and
//     CSV exports of each, including the aggregate credit total.
//
// This package serves as the foundational logic for the `bgm` command-line
// tool, ensuring that every store mutation goes through the same recompute
// step and full-file overwrite.
package bgm
