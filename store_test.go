package tracker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStorePrependAndReload(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	first := tx(1, Expense, "Coffee", 4.50, "food", "2024-01-15", USD())
	second := tx(2, Income, "Salary", 1000, "salary", "2024-01-16", USD())
	if err := s.Insert(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(second); err != nil {
		t.Fatal(err)
	}

	// Newest first in memory.
	got := s.Transactions()
	if len(got) != 2 || !got[0].Equal(second) || !got[1].Equal(first) {
		t.Fatalf("Transactions() = %+v, want [second, first]", got)
	}

	// And after a reload from disk.
	s2, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got = s2.Transactions()
	if len(got) != 2 || !got[0].Equal(second) || !got[1].Equal(first) {
		t.Fatalf("reloaded Transactions() = %+v, want [second, first]", got)
	}
}

func TestStoreDeleteByID(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(tx(1, Expense, "Coffee", 4.50, "food", "2024-01-15", USD())); err != nil {
		t.Fatal(err)
	}

	// Deleting an absent id is a no-op.
	if err := s.DeleteByID(42); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after deleting an absent id, want 1", s.Len())
	}

	if err := s.DeleteByID(1); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreClear(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(tx(1, Expense, "Coffee", 4.50, "food", "2024-01-15", USD())); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCurrency(EUR()); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	// The currency preference survives a clear.
	if s.Currency() != EUR() {
		t.Errorf("Currency() = %v, want EUR", s.Currency())
	}
}

func TestStoreCurrencyDefaultAndPersistence(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Currency() != DefaultCurrency {
		t.Fatalf("Currency() = %v, want the USD default", s.Currency())
	}

	if err := s.SetCurrency(EUR()); err != nil {
		t.Fatal(err)
	}
	s2, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Currency() != EUR() {
		t.Errorf("reloaded Currency() = %v, want EUR", s2.Currency())
	}
}

func TestStoreCorruptStateStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for a corrupt state file", s.Len())
	}
}

func TestStoreSemanticallyCorruptStateStartsEmpty(t *testing.T) {
	// Valid JSON syntax, but the second record's date is a number: the
	// whole collection must load empty, never the records that happened to
	// decode before the failure.
	dir := t.TempDir()
	state := `[
  {"id": 1, "type": "expense", "description": "Coffee", "amount": 4.5, "category": "food", "date": "2024-01-15", "currency": {"code": "USD", "symbol": "$", "name": "US Dollar", "country": "United States"}},
  {"id": 2, "type": "expense", "description": "Ghost", "amount": 1, "category": "food", "date": 12345, "currency": {"code": "USD", "symbol": "$", "name": "US Dollar", "country": "United States"}}
]`
	if err := os.WriteFile(filepath.Join(dir, "transactions.json"), []byte(state), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for a semantically corrupt state file, got %+v", s.Len(), s.Transactions())
	}

	// The next mutation persists a clean collection.
	if err := s.Insert(tx(9, Expense, "Fresh start", 2, "food", "2024-02-01", USD())); err != nil {
		t.Fatal(err)
	}
	s2, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := s2.Transactions()
	if len(got) != 1 || got[0].ID != 9 {
		t.Fatalf("reloaded Transactions() = %+v, want only the fresh record", got)
	}
}

func TestMigrateLegacy(t *testing.T) {
	dir := t.TempDir()
	legacy := `[
  {"id": 1, "description": "Old groceries", "amount": 42.5, "category": "food", "date": "2023-11-02"},
  {"id": 2, "description": "Old bus pass", "amount": 30, "category": "transport", "date": "2023-11-03"}
]`
	if err := os.WriteFile(filepath.Join(dir, "expenses.json"), []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	n, err := s.MigrateLegacy()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("migrated %d records, want 2", n)
	}
	for _, rec := range s.Transactions() {
		if rec.Type != Expense {
			t.Errorf("record %d has type %q, want expense", rec.ID, rec.Type)
		}
	}

	// The legacy key is consumed.
	if _, err := os.Stat(filepath.Join(dir, "expenses.json")); !os.IsNotExist(err) {
		t.Error("expenses.json still exists after migration")
	}

	// A second run is a no-op.
	n, err = s.MigrateLegacy()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("second migration moved %d records, want 0", n)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d after second migration, want 2", s.Len())
	}
}

func TestMigrateLegacySkippedWhenNotEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "expenses.json"),
		[]byte(`[{"id": 1, "description": "Old", "amount": 10, "category": "food", "date": "2023-11-02"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(tx(9, Expense, "Coffee", 4.50, "food", "2024-01-15", USD())); err != nil {
		t.Fatal(err)
	}

	n, err := s.MigrateLegacy()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("migrated %d records into a non-empty collection, want 0", n)
	}
	// The legacy key is left alone for a later empty run.
	if _, err := os.Stat(filepath.Join(dir, "expenses.json")); err != nil {
		t.Errorf("expenses.json should be untouched: %v", err)
	}
}

func TestStoreReplaceAll(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(tx(1, Expense, "Coffee", 4.50, "food", "2024-01-15", USD())); err != nil {
		t.Fatal(err)
	}

	next := []Transaction{
		tx(10, Income, "Salary", 1000, "salary", "2024-01-01", USD()),
		tx(11, Expense, "Rent", 300, "bills", "2024-01-02", USD()),
	}
	if err := s.ReplaceAll(next); err != nil {
		t.Fatal(err)
	}
	got := s.Transactions()
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
		t.Fatalf("Transactions() = %+v, want the replacement in order", got)
	}
}
