package bgm

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadLedger_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jogos.csv")
	ledger, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() on a missing file: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("missing file should load as an empty ledger, got %d records", ledger.Len())
	}
}

func TestSaveLoadLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jogos.csv")

	ledger := NewLedger()
	ledger.Upsert(Update{Name: "Catan", Won: iptr(5), Keep: iptr(1), Value: mptr(M(10.5))})
	ledger.Upsert(Update{Name: "Azul", Won: iptr(2)})

	if err := SaveLedger(path, ledger); err != nil {
		t.Fatalf("SaveLedger() error: %v", err)
	}
	loaded, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() error: %v", err)
	}

	want := slices.Collect(ledger.Games())
	got := slices.Collect(loaded.Games())
	if len(got) != len(want) {
		t.Fatalf("loaded %d records, want %d", len(got), len(want))
	}
	for i := range got {
		assertGameEqual(t, got[i], want[i])
	}
}

// TestSaveLedger_Overwrites checks that a save replaces the whole store,
// not just the touched rows.
func TestSaveLedger_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jogos.csv")

	first := NewLedger()
	first.Upsert(Update{Name: "Catan", Won: iptr(5)})
	first.Upsert(Update{Name: "Azul", Won: iptr(2)})
	if err := SaveLedger(path, first); err != nil {
		t.Fatalf("SaveLedger() error: %v", err)
	}

	second := NewLedger()
	second.Upsert(Update{Name: "Root", Won: iptr(1)})
	if err := SaveLedger(path, second); err != nil {
		t.Fatalf("SaveLedger() error: %v", err)
	}

	loaded, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() error: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("store holds %d records after overwrite, want 1", loaded.Len())
	}
	if _, ok := loaded.Get("Catan"); ok {
		t.Error("record from the first save survived the overwrite")
	}
}

func TestSaveLedger_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "jogos.csv")
	if err := SaveLedger(path, NewLedger()); err != nil {
		t.Fatalf("SaveLedger() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file was not created: %v", err)
	}
}
