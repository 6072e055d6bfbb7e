package sgsolar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an operation names a record id that is not
// in the store.
var ErrNotFound = errors.New("record not found")

// ClientStore is the authoritative collection of client records. Records
// keep their insertion order; every committed mutation re-serializes the
// whole collection through the storage port and then notifies subscribers.
type ClientStore struct {
	storage Storage
	clients []Client
	subs    []func()
}

// OpenClientStore loads the persisted collection, or starts empty when
// nothing was persisted yet.
func OpenClientStore(storage Storage) (*ClientStore, error) {
	s := &ClientStore{storage: storage}
	data, err := storage.Load(KeyClients)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.clients); err != nil {
		return nil, fmt.Errorf("corrupt client collection: %w", err)
	}
	return s, nil
}

// Subscribe registers f to be called after every committed mutation.
func (s *ClientStore) Subscribe(f func()) {
	s.subs = append(s.subs, f)
}

func (s *ClientStore) commit() error {
	data, err := json.MarshalIndent(s.clients, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize client collection: %w", err)
	}
	if err := s.storage.Save(KeyClients, data); err != nil {
		return err
	}
	for _, f := range s.subs {
		f()
	}
	return nil
}

// Create appends a new record, assigning id and createdAt if absent.
func (s *ClientStore) Create(c *Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == "" {
		c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if _, ok := s.Get(c.ID); ok {
		return fmt.Errorf("client %q already exists", c.ID)
	}
	s.clients = append(s.clients, *c)
	return s.commit()
}

// Update replaces the record matching c.ID in place, preserving collection
// order. Unlike the original (which silently produced no change), updating
// a missing id is reported as ErrNotFound.
func (s *ClientStore) Update(c Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for i := range s.clients {
		if s.clients[i].ID == c.ID {
			s.clients[i] = c
			return s.commit()
		}
	}
	return fmt.Errorf("client %q: %w", c.ID, ErrNotFound)
}

// Delete removes the record with the given id. Deleting a missing id is a
// no-op; its documents die with it since they are exclusively owned.
func (s *ClientStore) Delete(id string) error {
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return s.commit()
		}
	}
	return nil
}

// Get returns a copy of the record with the given id.
func (s *ClientStore) Get(id string) (Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// List returns a copy of the collection in insertion order.
func (s *ClientStore) List() []Client {
	return append([]Client(nil), s.clients...)
}

// Len returns the number of records.
func (s *ClientStore) Len() int { return len(s.clients) }

// ReplaceAll installs a whole new collection, used by the restore engine to
// commit a merge or replace result wholesale.
func (s *ClientStore) ReplaceAll(clients []Client) error {
	s.clients = append([]Client(nil), clients...)
	return s.commit()
}
