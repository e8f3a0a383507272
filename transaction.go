package tracker

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// TxType is the kind of a transaction, either income or expense.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a transaction type from its string form.
func ParseTxType(str string) (TxType, error) {
	switch TxType(strings.ToLower(strings.TrimSpace(str))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	}
	return "", fmt.Errorf("invalid transaction type %q, want %q or %q", str, Income, Expense)
}

func (t TxType) String() string { return string(t) }

// Transaction is a single ledger entry.
//
// The currency is a snapshot of the active currency at creation time, so
// past entries keep their original denomination when the preference changes.
type Transaction struct {
	ID          int64    `json:"id"`
	Type        TxType   `json:"type"`
	Description string   `json:"description"`
	Amount      Amount   `json:"amount"`
	Category    Category `json:"category"`
	Date        Date     `json:"date"`
	Currency    Currency `json:"currency"`
}

// Equal returns true if both transactions are identical.
func (t Transaction) Equal(x Transaction) bool {
	return t.ID == x.ID &&
		t.Type == x.Type &&
		t.Description == x.Description &&
		t.Amount.Equal(x.Amount) &&
		t.Category == x.Category &&
		t.Date == x.Date &&
		t.Currency == x.Currency
}

// Validate checks the structural soundness of a transaction read from an
// external source. It does not require the category to be in the known
// vocabulary, only that the typed fields hold usable values.
func (t Transaction) Validate() error {
	if t.ID == 0 {
		return fmt.Errorf("transaction has no id")
	}
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("transaction %d: invalid type %q", t.ID, t.Type)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("transaction %d: empty description", t.ID)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %d: amount must be greater than zero", t.ID)
	}
	if t.Category == "" {
		return fmt.Errorf("transaction %d: empty category", t.ID)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %d: missing date", t.ID)
	}
	if t.Currency.Code == "" {
		return fmt.Errorf("transaction %d: missing currency", t.ID)
	}
	return nil
}

var idMu sync.Mutex
var lastID int64

// newID returns the current time in milliseconds, bumped when two calls
// land in the same millisecond so that ids stay unique per process.
func newID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
