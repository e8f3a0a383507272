package tracker

import (
	"encoding/json"
	"fmt"
	"io"
)

// ExportSnapshot writes the transactions as a pretty-printed JSON array,
// the interchange format shared with ImportSnapshot.
func ExportSnapshot(w io.Writer, transactions []Transaction) error {
	if transactions == nil {
		transactions = []Transaction{}
	}
	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// ExportFilename returns the conventional name of a snapshot exported on the
// given day, e.g. "transactions_2024-01-15.json".
func ExportFilename(on Date) string {
	return fmt.Sprintf("transactions_%s.json", on)
}

// ImportSnapshot reads a JSON array of transactions and validates each
// record. Any structural problem rejects the whole snapshot with an error
// wrapping ErrImportFormat; a valid file yields the records in file order.
func ImportSnapshot(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var transactions []Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	for _, t := range transactions {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
		}
	}
	return transactions, nil
}
