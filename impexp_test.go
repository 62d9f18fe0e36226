package bgm

import (
	"strings"
	"testing"
)

// sampleLedger is the table used by the report tests:
// A has credit only, B has both keep and credit.
func sampleLedger() *Ledger {
	ledger := NewLedger()
	ledger.Upsert(Update{Name: "A", Won: iptr(2), Keep: iptr(0), Value: mptr(M(10))})
	ledger.Upsert(Update{Name: "B", Won: iptr(3), Keep: iptr(1), Value: mptr(M(20))})
	return ledger
}

func TestExportBring(t *testing.T) {
	var sb strings.Builder
	if err := ExportBring(&sb, sampleLedger()); err != nil {
		t.Fatalf("ExportBring() error: %v", err)
	}
	want := "nome,qtd_ganha,qtd_ficar\n" +
		"B,3,1\n"
	if got := sb.String(); got != want {
		t.Errorf("ExportBring() =\n%q\nwant\n%q", got, want)
	}
}

func TestExportCredit(t *testing.T) {
	var sb strings.Builder
	if err := ExportCredit(&sb, sampleLedger()); err != nil {
		t.Fatalf("ExportCredit() error: %v", err)
	}
	want := "nome,qtd_ganha,qtd_ficar,qtd_credito,valor_credito,total_credito\n" +
		"A,2,0,2,10,20\n" +
		"B,3,1,2,20,40\n"
	if got := sb.String(); got != want {
		t.Errorf("ExportCredit() =\n%q\nwant\n%q", got, want)
	}
}

func TestExportAll(t *testing.T) {
	var sb strings.Builder
	if err := ExportAll(&sb, sampleLedger()); err != nil {
		t.Fatalf("ExportAll() error: %v", err)
	}
	want := "nome,qtd_ganha,qtd_ficar,qtd_credito,valor_credito\n" +
		"A,2,0,2,10\n" +
		"B,3,1,2,20\n"
	if got := sb.String(); got != want {
		t.Errorf("ExportAll() =\n%q\nwant\n%q", got, want)
	}
}

func TestCreditReport_Total(t *testing.T) {
	report := sampleLedger().CreditReport()
	if len(report.Rows) != 2 {
		t.Fatalf("report has %d rows, want 2", len(report.Rows))
	}
	if want := M(60); !report.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", report.Total, want)
	}
}

func TestCreditReport_Empty(t *testing.T) {
	ledger := NewLedger()
	ledger.Upsert(Update{Name: "B", Won: iptr(1), Keep: iptr(1)})

	report := ledger.CreditReport()
	if len(report.Rows) != 0 {
		t.Errorf("report has %d rows, want none", len(report.Rows))
	}
	if !report.Total.IsZero() {
		t.Errorf("Total = %s, want zero", report.Total)
	}
}

func TestBringReport(t *testing.T) {
	rows := sampleLedger().BringReport()
	if len(rows) != 1 {
		t.Fatalf("report has %d rows, want 1", len(rows))
	}
	if got, want := rows[0], (BringRow{Name: "B", Won: 3, Keep: 1}); got != want {
		t.Errorf("row = %+v, want %+v", got, want)
	}
}

// TestImportLedger checks that an imported file goes through the same
// coercion and recompute as a regular load.
func TestImportLedger(t *testing.T) {
	input := "nome,qtd_ganha,qtd_ficar,qtd_credito,valor_credito\n" +
		"Catan,5,2,99,0\n"
	ledger, err := ImportLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportLedger() error: %v", err)
	}
	g, ok := ledger.Get("Catan")
	if !ok {
		t.Fatal("imported record not found")
	}
	if g.Credit != 3 {
		t.Errorf("Credit = %d, want 3", g.Credit)
	}
	if !g.Value.Equal(DefaultCreditValue) {
		t.Errorf("Value = %s, want the default %s", g.Value, DefaultCreditValue)
	}
}
