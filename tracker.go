package tracker

import (
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user to approve a destructive operation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier surfaces the outcome of an operation to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Tracker orchestrates the transaction lifecycle: it validates input, mutates
// the store, and reports outcomes through the notifier. Destructive
// operations go through the confirmer first.
type Tracker struct {
	store   *Store
	confirm Confirmer
	notify  Notifier
}

// NewTracker wires a tracker around an open store.
func NewTracker(store *Store, confirm Confirmer, notify Notifier) *Tracker {
	return &Tracker{store: store, confirm: confirm, notify: notify}
}

// Store exposes the underlying store for read-only views.
func (k *Tracker) Store() *Store { return k.store }

// CreateTransaction validates the raw user input, builds the record with a
// fresh id and a snapshot of the active currency, and inserts it. Fields are
// received as strings so that an absent field is distinguishable from a
// malformed one.
func (k *Tracker) CreateTransaction(typ, description, amount, category, date string) (Transaction, error) {
	description = strings.TrimSpace(description)
	if typ == "" || description == "" || amount == "" || category == "" || date == "" {
		return Transaction{}, fmt.Errorf("%w: please fill in all fields", ErrMissingField)
	}
	t, err := ParseTxType(typ)
	if err != nil {
		return Transaction{}, err
	}
	a, err := ParseAmount(amount)
	if err != nil || !a.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got %q", ErrInvalidAmount, amount)
	}
	on, err := ParseDate(date)
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		ID:          newID(),
		Type:        t,
		Description: description,
		Amount:      a,
		Category:    Category(category),
		Date:        on,
		Currency:    k.store.Currency(),
	}
	if err := k.store.Insert(tx); err != nil {
		return Transaction{}, err
	}
	label := "Expense"
	if t == Income {
		label = "Income"
	}
	k.notify.Success(label + " added successfully!")
	return tx, nil
}

// DeleteTransaction removes one transaction after user confirmation.
func (k *Tracker) DeleteTransaction(id int64) error {
	if _, ok := k.store.Get(id); !ok {
		k.notify.Info(fmt.Sprintf("No transaction with id %d.", id))
		return nil
	}
	if !k.confirm.Confirm("Are you sure you want to delete this transaction?") {
		return nil
	}
	if err := k.store.DeleteByID(id); err != nil {
		return err
	}
	k.notify.Success("Transaction deleted successfully!")
	return nil
}

// ClearAll removes every transaction after user confirmation. An already
// empty store yields an informational message, not an error.
func (k *Tracker) ClearAll() error {
	if k.store.Len() == 0 {
		k.notify.Info("No transactions to clear!")
		return nil
	}
	if !k.confirm.Confirm("Are you sure you want to delete ALL transactions? This action cannot be undone.") {
		return nil
	}
	if err := k.store.Clear(); err != nil {
		return err
	}
	k.notify.Success("All transactions cleared!")
	return nil
}

// SetActiveCurrency switches the display currency. Existing transactions
// keep their own currency snapshot.
func (k *Tracker) SetActiveCurrency(code string) (Currency, error) {
	c, err := LookupCurrency(code)
	if err != nil {
		return Currency{}, err
	}
	if err := k.store.SetCurrency(c); err != nil {
		return Currency{}, err
	}
	return c, nil
}

// Export writes the full collection as a snapshot.
func (k *Tracker) Export(w io.Writer) error {
	if err := ExportSnapshot(w, k.store.Transactions()); err != nil {
		return err
	}
	k.notify.Success("Data exported successfully!")
	return nil
}

// Import replaces the whole collection with the snapshot read from r. A
// malformed snapshot leaves the store untouched.
func (k *Tracker) Import(r io.Reader) error {
	transactions, err := ImportSnapshot(r)
	if err != nil {
		k.notify.Error("Error importing data. Please check file format.")
		return err
	}
	if err := k.store.ReplaceAll(transactions); err != nil {
		return err
	}
	k.notify.Success("Data imported successfully!")
	return nil
}

// MigrateLegacy runs the one-time legacy upgrade, notifying on success.
func (k *Tracker) MigrateLegacy() error {
	n, err := k.store.MigrateLegacy()
	if err != nil {
		return err
	}
	if n > 0 {
		k.notify.Success("Migrated old expense data to new format!")
	}
	return nil
}
