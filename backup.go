package sgsolar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// SnapshotVersion is the format tag written into every exported backup.
const SnapshotVersion = "1.1"

// Snapshot is the single exportable representation of the whole dataset.
type Snapshot struct {
	Version      string        `json:"version"`
	Timestamp    time.Time     `json:"timestamp"`
	Clients      []Client      `json:"clients"`
	Transactions []Transaction `json:"transactions"`
}

// Export writes a snapshot of both collections to w.
func Export(w io.Writer, clients []Client, transactions []Transaction, now time.Time) error {
	snap := Snapshot{
		Version:      SnapshotVersion,
		Timestamp:    now.UTC(),
		Clients:      clients,
		Transactions: transactions,
	}
	// nil slices would export as JSON null; a snapshot always carries arrays.
	if snap.Clients == nil {
		snap.Clients = []Client{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []Transaction{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// RestoreMode selects the outcome of an import.
type RestoreMode int

const (
	// Merge keeps existing records, adds new ones and overwrites records
	// whose id collides with an incoming one.
	Merge RestoreMode = iota
	// Replace discards the existing collections entirely.
	Replace
)

func (m RestoreMode) String() string {
	switch m {
	case Merge:
		return "merge"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// ParseRestoreMode parses a string into a RestoreMode.
func ParseRestoreMode(s string) (RestoreMode, error) {
	switch s {
	case "merge":
		return Merge, nil
	case "replace":
		return Replace, nil
	default:
		return 0, fmt.Errorf("unknown restore mode: %q (want merge or replace)", s)
	}
}

// RestorePlan is the classification of an incoming snapshot against the
// current dataset. Nothing is mutated until the plan is committed; both
// candidate outcomes are precomputed so the commit installs one of them
// wholesale, never a hybrid.
type RestorePlan struct {
	Incoming Snapshot

	// Counts surfaced to the operator before the merge/replace choice.
	NewClients      int // ids not present in the current collection
	ConflictClients int // ids that would be overwritten by a merge
	NewTransactions int // incoming transactions with unseen ids

	mergedClients      []Client
	mergedTransactions []Transaction
}

// PlanRestore parses a backup file and classifies it against the current
// collections. It accepts the full snapshot shape or the legacy shape, a
// bare array of clients with no transactions. Anything else is rejected
// with the current state untouched.
func PlanRestore(r io.Reader, current []Client, currentTx []Transaction) (*RestorePlan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup file: %w", err)
	}

	var snap Snapshot
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		// Legacy format: a bare array of clients.
		if err := json.Unmarshal(trimmed, &snap.Clients); err != nil {
			return nil, fmt.Errorf("invalid legacy backup file: %w", err)
		}
	default:
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return nil, fmt.Errorf("invalid backup file: %w", err)
		}
		if snap.Clients == nil {
			return nil, fmt.Errorf("invalid backup file: no client collection")
		}
	}

	plan := &RestorePlan{Incoming: snap}

	// Merge result for clients: existing records keep their position,
	// conflicting ones are overwritten in place, new ones are appended in
	// incoming order.
	merged := append([]Client(nil), current...)
	index := make(map[string]int, len(merged))
	for i, c := range merged {
		index[c.ID] = i
	}
	for _, c := range snap.Clients {
		if i, ok := index[c.ID]; ok {
			plan.ConflictClients++
			merged[i] = c
		} else {
			plan.NewClients++
			index[c.ID] = len(merged)
			merged = append(merged, c)
		}
	}
	plan.mergedClients = merged

	// Transactions are never overwritten by a merge: a colliding id is
	// silently dropped from the incoming set.
	mergedTx := append([]Transaction(nil), currentTx...)
	seen := make(map[string]bool, len(mergedTx))
	for _, t := range mergedTx {
		seen[t.ID] = true
	}
	for _, t := range snap.Transactions {
		if seen[t.ID] {
			continue
		}
		plan.NewTransactions++
		seen[t.ID] = true
		mergedTx = append(mergedTx, t)
	}
	plan.mergedTransactions = mergedTx

	return plan, nil
}

// Result returns the precomputed collection pair for the chosen mode.
func (p *RestorePlan) Result(mode RestoreMode) (clients []Client, transactions []Transaction) {
	if mode == Replace {
		return p.Incoming.Clients, p.Incoming.Transactions
	}
	return p.mergedClients, p.mergedTransactions
}

// Commit installs the chosen collection pair wholesale into both stores and
// marks the system freshly backed-up: the data now matches a file on disk.
func (p *RestorePlan) Commit(mode RestoreMode, clients *ClientStore, transactions *TransactionStore, meta *MetaStore) error {
	cs, ts := p.Result(mode)
	if err := clients.ReplaceAll(cs); err != nil {
		return fmt.Errorf("restore (%s): %w", mode, err)
	}
	if err := transactions.ReplaceAll(ts); err != nil {
		return fmt.Errorf("restore (%s): %w", mode, err)
	}
	return meta.MarkBackedUp(time.Now())
}
