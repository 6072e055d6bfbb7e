package sgsolar

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the persistence port of the stores. The original application
// wrote straight to browser local storage; keeping the port this narrow is
// what makes the stores and the reconciliation engine testable without one.
type Storage interface {
	// Load returns the blob stored under key, or an error wrapping
	// fs.ErrNotExist when the key was never written.
	Load(key string) ([]byte, error)
	// Save writes the blob under key, replacing any previous content.
	Save(key string, data []byte) error
}

// Keys of the three independent persisted blobs.
const (
	KeyClients      = "clients"
	KeyTransactions = "transactions"
	KeyMeta         = "meta"
)

// DirStorage persists each key as one JSON file in a directory.
type DirStorage struct {
	Dir string
}

// NewDirStorage creates the directory if needed and returns the storage.
func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}
	return &DirStorage{Dir: dir}, nil
}

func (d *DirStorage) path(key string) string {
	return filepath.Join(d.Dir, key+".json")
}

func (d *DirStorage) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, fmt.Errorf("cannot load %q: %w", key, err)
	}
	return data, nil
}

func (d *DirStorage) Save(key string, data []byte) error {
	if err := os.WriteFile(d.path(key), data, 0644); err != nil {
		return fmt.Errorf("cannot save %q: %w", key, err)
	}
	return nil
}

// MemStorage is an in-memory Storage for tests.
type MemStorage struct {
	blobs map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{blobs: make(map[string][]byte)}
}

func (m *MemStorage) Load(key string) ([]byte, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("no blob %q: %w", key, fs.ErrNotExist)
	}
	return data, nil
}

func (m *MemStorage) Save(key string, data []byte) error {
	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

var _ Storage = (*DirStorage)(nil)
var _ Storage = (*MemStorage)(nil)
