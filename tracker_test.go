package tracker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// recorder captures notifications and answers confirmations from a script.
type recorder struct {
	answers   []bool
	successes []string
	errors    []string
	infos     []string
}

func (r *recorder) Confirm(string) bool {
	if len(r.answers) == 0 {
		return false
	}
	var a bool
	a, r.answers = r.answers[0], r.answers[1:]
	return a
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }
func (r *recorder) Info(msg string)    { r.infos = append(r.infos, msg) }

func newTestTracker(t *testing.T) (*Tracker, *recorder) {
	t.Helper()
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	return NewTracker(s, r, r), r
}

func TestCreateTransaction(t *testing.T) {
	k, r := newTestTracker(t)

	tx, err := k.CreateTransaction("expense", "Coffee", "4.50", "food", "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if tx.ID == 0 {
		t.Error("created transaction has no id")
	}
	if tx.Currency != DefaultCurrency {
		t.Errorf("Currency = %v, want the active currency snapshot", tx.Currency)
	}

	// The created record is the first element of the collection.
	got := k.Store().Transactions()
	if len(got) != 1 || !got[0].Equal(tx) {
		t.Fatalf("store = %+v, want the created record first", got)
	}
	if len(r.successes) != 1 || r.successes[0] != "Expense added successfully!" {
		t.Errorf("successes = %v", r.successes)
	}
}

func TestCreateTransactionIDsAreUnique(t *testing.T) {
	k, _ := newTestTracker(t)
	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		tx, err := k.CreateTransaction("income", "Salary", "1000", "salary", "2024-01-01")
		if err != nil {
			t.Fatal(err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate id %d", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	testCases := []struct {
		name                         string
		typ, desc, amount, cat, date string
		wantErr                      error
	}{
		{name: "empty description", typ: "expense", desc: "   ", amount: "4.50", cat: "food", date: "2024-01-15", wantErr: ErrMissingField},
		{name: "empty amount", typ: "expense", desc: "Coffee", amount: "", cat: "food", date: "2024-01-15", wantErr: ErrMissingField},
		{name: "empty category", typ: "expense", desc: "Coffee", amount: "4.50", cat: "", date: "2024-01-15", wantErr: ErrMissingField},
		{name: "empty date", typ: "expense", desc: "Coffee", amount: "4.50", cat: "food", date: "", wantErr: ErrMissingField},
		{name: "empty type", typ: "", desc: "Coffee", amount: "4.50", cat: "food", date: "2024-01-15", wantErr: ErrMissingField},
		{name: "amount not a number", typ: "expense", desc: "Coffee", amount: "abc", cat: "food", date: "2024-01-15", wantErr: ErrInvalidAmount},
		{name: "zero amount", typ: "expense", desc: "Coffee", amount: "0", cat: "food", date: "2024-01-15", wantErr: ErrInvalidAmount},
		{name: "negative amount", typ: "expense", desc: "Coffee", amount: "-1", cat: "food", date: "2024-01-15", wantErr: ErrInvalidAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k, _ := newTestTracker(t)
			_, err := k.CreateTransaction(tc.typ, tc.desc, tc.amount, tc.cat, tc.date)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
			if k.Store().Len() != 0 {
				t.Error("an invalid transaction was stored")
			}
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	k, r := newTestTracker(t)
	tx, err := k.CreateTransaction("expense", "Coffee", "4.50", "food", "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}

	// Declined confirmation leaves the record in place.
	r.answers = []bool{false}
	if err := k.DeleteTransaction(tx.ID); err != nil {
		t.Fatal(err)
	}
	if k.Store().Len() != 1 {
		t.Fatal("record deleted despite declined confirmation")
	}

	r.answers = []bool{true}
	if err := k.DeleteTransaction(tx.ID); err != nil {
		t.Fatal(err)
	}
	if k.Store().Len() != 0 {
		t.Fatal("record not deleted")
	}
	if len(r.successes) == 0 || r.successes[len(r.successes)-1] != "Transaction deleted successfully!" {
		t.Errorf("successes = %v", r.successes)
	}
}

func TestClearAll(t *testing.T) {
	k, r := newTestTracker(t)

	// Clearing an empty store is informational, not an error.
	if err := k.ClearAll(); err != nil {
		t.Fatal(err)
	}
	if len(r.infos) != 1 || r.infos[0] != "No transactions to clear!" {
		t.Errorf("infos = %v", r.infos)
	}

	if _, err := k.CreateTransaction("expense", "Coffee", "4.50", "food", "2024-01-15"); err != nil {
		t.Fatal(err)
	}
	r.answers = []bool{true}
	if err := k.ClearAll(); err != nil {
		t.Fatal(err)
	}
	if k.Store().Len() != 0 {
		t.Error("store not cleared")
	}
}

func TestImportFailureLeavesStoreUntouched(t *testing.T) {
	k, r := newTestTracker(t)
	if _, err := k.CreateTransaction("expense", "Coffee", "4.50", "food", "2024-01-15"); err != nil {
		t.Fatal(err)
	}

	err := k.Import(strings.NewReader(`{"not": "an array"}`))
	if !errors.Is(err, ErrImportFormat) {
		t.Fatalf("Import error = %v, want ErrImportFormat", err)
	}
	if k.Store().Len() != 1 {
		t.Error("store changed by a failed import")
	}
	if len(r.errors) != 1 {
		t.Errorf("errors = %v, want the user-facing import error", r.errors)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	k, _ := newTestTracker(t)
	if _, err := k.CreateTransaction("expense", "Coffee", "4.50", "food", "2024-01-15"); err != nil {
		t.Fatal(err)
	}
	if _, err := k.CreateTransaction("income", "Salary", "1000", "salary", "2024-01-01"); err != nil {
		t.Fatal(err)
	}
	before := k.Store().Transactions()

	var buf bytes.Buffer
	if err := k.Export(&buf); err != nil {
		t.Fatal(err)
	}
	if err := k.Import(&buf); err != nil {
		t.Fatal(err)
	}

	after := k.Store().Transactions()
	if len(after) != len(before) {
		t.Fatalf("round trip returned %d records, want %d", len(after), len(before))
	}
	for i := range after {
		if !after[i].Equal(before[i]) {
			t.Errorf("record %d = %+v, want %+v", i, after[i], before[i])
		}
	}
}

func TestSetActiveCurrency(t *testing.T) {
	k, _ := newTestTracker(t)
	tx, err := k.CreateTransaction("expense", "Coffee", "4.50", "food", "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}

	cur, err := k.SetActiveCurrency("EUR")
	if err != nil {
		t.Fatal(err)
	}
	if cur.Code != "EUR" || cur.Symbol != "€" {
		t.Errorf("SetActiveCurrency = %v", cur)
	}

	// The stored record keeps its original snapshot.
	got, _ := k.Store().Get(tx.ID)
	if got.Currency.Code != "USD" {
		t.Errorf("stored currency = %v, want the USD snapshot", got.Currency)
	}

	if _, err := k.SetActiveCurrency("NOPE"); err == nil {
		t.Error("unknown code accepted")
	}
}
