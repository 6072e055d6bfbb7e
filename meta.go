package sgsolar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// backupStaleAfter is how old a backup may get before the system starts
// nagging the operator.
const backupStaleAfter = 7 * 24 * time.Hour

// MetaStore is the process-wide system metadata: currently only the date of
// the last produced backup. A completed restore also counts as a backup,
// since the data then matches a file on disk.
type MetaStore struct {
	storage        Storage
	lastBackupDate *time.Time
}

type metaBlob struct {
	LastBackupDate *time.Time `json:"lastBackupDate"`
}

// OpenMetaStore loads the persisted metadata, or starts empty.
func OpenMetaStore(storage Storage) (*MetaStore, error) {
	s := &MetaStore{storage: storage}
	data, err := storage.Load(KeyMeta)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	var blob metaBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("corrupt system metadata: %w", err)
	}
	s.lastBackupDate = blob.LastBackupDate
	return s, nil
}

// LastBackup returns the time of the last backup, or false when no backup
// was ever produced.
func (s *MetaStore) LastBackup() (time.Time, bool) {
	if s.lastBackupDate == nil {
		return time.Time{}, false
	}
	return *s.lastBackupDate, true
}

// MarkBackedUp records now as the last backup time and persists it.
func (s *MetaStore) MarkBackedUp(now time.Time) error {
	t := now.UTC()
	s.lastBackupDate = &t
	data, err := json.Marshal(metaBlob{LastBackupDate: s.lastBackupDate})
	if err != nil {
		return fmt.Errorf("cannot serialize system metadata: %w", err)
	}
	return s.storage.Save(KeyMeta, data)
}

// Outdated reports whether the operator should be nudged to back up: no
// backup ever, or the last one older than seven days.
func (s *MetaStore) Outdated(now time.Time) bool {
	last, ok := s.LastBackup()
	if !ok {
		return true
	}
	return now.Sub(last) > backupStaleAfter
}
