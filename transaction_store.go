package sgsolar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
)

// TransactionStore is the authoritative collection of standalone financial
// entries. New entries are prepended, so listing is newest-first like the
// original movement history.
type TransactionStore struct {
	storage      Storage
	transactions []Transaction
	subs         []func()
}

// OpenTransactionStore loads the persisted collection, or starts empty.
func OpenTransactionStore(storage Storage) (*TransactionStore, error) {
	s := &TransactionStore{storage: storage}
	data, err := storage.Load(KeyTransactions)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.transactions); err != nil {
		return nil, fmt.Errorf("corrupt transaction collection: %w", err)
	}
	return s, nil
}

// Subscribe registers f to be called after every committed mutation.
func (s *TransactionStore) Subscribe(f func()) {
	s.subs = append(s.subs, f)
}

func (s *TransactionStore) commit() error {
	data, err := json.MarshalIndent(s.transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize transaction collection: %w", err)
	}
	if err := s.storage.Save(KeyTransactions, data); err != nil {
		return err
	}
	for _, f := range s.subs {
		f()
	}
	return nil
}

// Add prepends a new entry, assigning an id if absent.
func (s *TransactionStore) Add(t *Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	s.transactions = append([]Transaction{*t}, s.transactions...)
	return s.commit()
}

// Delete removes the entry with the given id; a no-op when absent.
func (s *TransactionStore) Delete(id string) error {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return s.commit()
		}
	}
	return nil
}

// Get returns a copy of the entry with the given id.
func (s *TransactionStore) Get(id string) (Transaction, bool) {
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// List returns a copy of the collection, newest first.
func (s *TransactionStore) List() []Transaction {
	return append([]Transaction(nil), s.transactions...)
}

// Len returns the number of entries.
func (s *TransactionStore) Len() int { return len(s.transactions) }

// ReplaceAll installs a whole new collection (restore commit).
func (s *TransactionStore) ReplaceAll(transactions []Transaction) error {
	s.transactions = append([]Transaction(nil), transactions...)
	return s.commit()
}
