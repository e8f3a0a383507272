package tracker

import (
	"fmt"
	"slices"
)

// Store is the ordered collection of transactions, newest first, backed by
// the state directory. Every mutation writes the complete collection to disk
// before updating the in-memory state, so a persistence failure leaves both
// sides unchanged.
type Store struct {
	kv           *kvStore
	transactions []Transaction
	currency     Currency
}

// OpenStore loads the store from the given state directory. A directory with
// no state, or a corrupt one, yields an empty collection and the default
// currency.
func OpenStore(dir string) (*Store, error) {
	s := &Store{kv: newKVStore(dir), currency: DefaultCurrency}
	// Decode into a temporary: a corrupt file may leave partially decoded
	// records behind, and those must never reach the collection.
	var transactions []Transaction
	if ok, err := s.kv.get(keyTransactions, &transactions); err != nil {
		return nil, err
	} else if ok {
		s.transactions = transactions
	}
	var cur Currency
	if ok, err := s.kv.get(keyCurrency, &cur); err != nil {
		return nil, err
	} else if ok && cur.Code != "" {
		s.currency = cur
	}
	return s, nil
}

// Transactions returns the collection, newest first. The returned slice is a
// copy, safe for the caller to reorder or filter.
func (s *Store) Transactions() []Transaction {
	return slices.Clone(s.transactions)
}

// Currency returns the active display currency.
func (s *Store) Currency() Currency { return s.currency }

// Len returns the number of stored transactions.
func (s *Store) Len() int { return len(s.transactions) }

// Get returns the transaction with the given id.
func (s *Store) Get(id int64) (Transaction, bool) {
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Insert prepends the transaction and persists the collection.
func (s *Store) Insert(t Transaction) error {
	next := append([]Transaction{t}, s.transactions...)
	if err := s.kv.put(keyTransactions, next); err != nil {
		return err
	}
	s.transactions = next
	return nil
}

// DeleteByID removes the transaction with the given id and persists. A
// missing id is a no-op, not an error.
func (s *Store) DeleteByID(id int64) error {
	next := slices.DeleteFunc(slices.Clone(s.transactions), func(t Transaction) bool {
		return t.ID == id
	})
	if len(next) == len(s.transactions) {
		return nil
	}
	if err := s.kv.put(keyTransactions, next); err != nil {
		return err
	}
	s.transactions = next
	return nil
}

// Clear empties the collection and persists.
func (s *Store) Clear() error {
	if err := s.kv.put(keyTransactions, []Transaction{}); err != nil {
		return err
	}
	s.transactions = nil
	return nil
}

// ReplaceAll overwrites the whole collection and persists. On error nothing
// changes, in memory or on disk.
func (s *Store) ReplaceAll(transactions []Transaction) error {
	next := slices.Clone(transactions)
	if next == nil {
		next = []Transaction{}
	}
	if err := s.kv.put(keyTransactions, next); err != nil {
		return err
	}
	s.transactions = next
	return nil
}

// SetCurrency updates the active display currency and persists it.
func (s *Store) SetCurrency(c Currency) error {
	if err := s.kv.put(keyCurrency, c); err != nil {
		return err
	}
	s.currency = c
	return nil
}

// MigrateLegacy upgrades pre-versioning expense records into the unified
// schema. It only fires when the current collection is empty and the legacy
// key holds records: each record is tagged as an expense, the collection is
// persisted, and the legacy key is deleted. It returns the number of records
// migrated, zero when there was nothing to do. Running it twice is safe.
func (s *Store) MigrateLegacy() (int, error) {
	if len(s.transactions) > 0 {
		return 0, nil
	}
	var legacy []Transaction
	ok, err := s.kv.get(keyLegacy, &legacy)
	if err != nil {
		return 0, err
	}
	if !ok || len(legacy) == 0 {
		return 0, nil
	}
	for i := range legacy {
		legacy[i].Type = Expense
	}
	if err := s.kv.put(keyTransactions, legacy); err != nil {
		return 0, fmt.Errorf("migrating legacy records: %w", err)
	}
	if err := s.kv.delete(keyLegacy); err != nil {
		return 0, fmt.Errorf("migrating legacy records: %w", err)
	}
	s.transactions = legacy
	return len(legacy), nil
}
