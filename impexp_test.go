package tracker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	transactions := []Transaction{
		tx(2, Income, "Salary", 1000, "salary", "2024-01-16", USD()),
		tx(1, Expense, "Coffee", 4.50, "food", "2024-01-15", EUR()),
	}

	var buf bytes.Buffer
	if err := ExportSnapshot(&buf, transactions); err != nil {
		t.Fatal(err)
	}

	// The snapshot is a pretty-printed array.
	if !strings.HasPrefix(buf.String(), "[\n  {") {
		t.Errorf("snapshot does not look pretty-printed:\n%s", buf.String())
	}

	back, err := ImportSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(transactions) {
		t.Fatalf("round trip returned %d records, want %d", len(back), len(transactions))
	}
	for i := range back {
		if !back[i].Equal(transactions[i]) {
			t.Errorf("record %d = %+v, want %+v", i, back[i], transactions[i])
		}
	}
}

func TestExportEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportSnapshot(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]" {
		t.Errorf("empty snapshot = %q, want %q", buf.String(), "[]")
	}
}

func TestImportRejectsBadSnapshots(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "hello"},
		{name: "not an array", in: `{"id": 1}`},
		{name: "missing description", in: `[{"id": 1, "type": "expense", "description": "", "amount": 4.5, "category": "food", "date": "2024-01-15", "currency": {"code": "USD", "symbol": "$", "name": "US Dollar", "country": "United States"}}]`},
		{name: "zero amount", in: `[{"id": 1, "type": "expense", "description": "Coffee", "amount": 0, "category": "food", "date": "2024-01-15", "currency": {"code": "USD", "symbol": "$", "name": "US Dollar", "country": "United States"}}]`},
		{name: "bad type", in: `[{"id": 1, "type": "transfer", "description": "Coffee", "amount": 4.5, "category": "food", "date": "2024-01-15", "currency": {"code": "USD", "symbol": "$", "name": "US Dollar", "country": "United States"}}]`},
		{name: "bad date", in: `[{"id": 1, "type": "expense", "description": "Coffee", "amount": 4.5, "category": "food", "date": "someday", "currency": {"code": "USD", "symbol": "$", "name": "US Dollar", "country": "United States"}}]`},
		{name: "missing currency", in: `[{"id": 1, "type": "expense", "description": "Coffee", "amount": 4.5, "category": "food", "date": "2024-01-15"}]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportSnapshot(strings.NewReader(tc.in))
			if !errors.Is(err, ErrImportFormat) {
				t.Errorf("ImportSnapshot error = %v, want ErrImportFormat", err)
			}
		})
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename(MustParseDate("2024-01-15"))
	if got != "transactions_2024-01-15.json" {
		t.Errorf("ExportFilename = %q", got)
	}
}
