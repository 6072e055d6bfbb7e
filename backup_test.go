package sgsolar

import (
	"strings"
	"testing"
	"time"
)

func restoreFixtures() (current []Client, currentTx []Transaction) {
	current = []Client{
		{ID: "a", FullName: "Ana", Status: StatusActive},
		{ID: "b", FullName: "Bruno", Status: StatusPending},
	}
	currentTx = []Transaction{
		{ID: "t1", Description: "cabos", Type: Expense, Amount: "R$ 300,00", Date: "2026-08-01"},
	}
	return
}

func TestPlanRestoreClassification(t *testing.T) {
	current, currentTx := restoreFixtures()
	incoming := `{
	  "version": "1.1",
	  "timestamp": "2026-08-30T10:00:00Z",
	  "clients": [
	    {"id": "b", "fullName": "Bruno Atualizado", "status": "Ativo"},
	    {"id": "c", "fullName": "Carla", "status": "Lead"}
	  ],
	  "transactions": [
	    {"id": "t1", "description": "cabos duplicados", "type": "expense", "amount": "R$ 999,00", "date": "2026-08-01"},
	    {"id": "t2", "description": "sinal", "type": "income", "amount": "R$ 2.000,00", "date": "2026-08-20"}
	  ]
	}`

	plan, err := PlanRestore(strings.NewReader(incoming), current, currentTx)
	if err != nil {
		t.Fatalf("PlanRestore: %v", err)
	}
	if plan.NewClients != 1 || plan.ConflictClients != 1 || plan.NewTransactions != 1 {
		t.Errorf("classification = %d new / %d conflicts / %d new tx, want 1/1/1",
			plan.NewClients, plan.ConflictClients, plan.NewTransactions)
	}
}

func TestPlanRestoreMerge(t *testing.T) {
	current, currentTx := restoreFixtures()
	incoming := `{"version":"1.1","clients":[
	  {"id":"b","fullName":"Bruno Atualizado","status":"Ativo"},
	  {"id":"c","fullName":"Carla","status":"Lead"}
	],"transactions":[
	  {"id":"t1","description":"colisão","type":"expense","amount":"R$ 999,00","date":"2026-08-01"},
	  {"id":"t2","description":"sinal","type":"income","amount":"R$ 2.000,00","date":"2026-08-20"}
	]}`

	plan, err := PlanRestore(strings.NewReader(incoming), current, currentTx)
	if err != nil {
		t.Fatalf("PlanRestore: %v", err)
	}
	clients, txs := plan.Result(Merge)

	// Existing records keep their position, the conflict is overwritten in
	// place, the new record is appended.
	if len(clients) != 3 {
		t.Fatalf("merged %d clients, want 3", len(clients))
	}
	if clients[0].ID != "a" || clients[1].ID != "b" || clients[2].ID != "c" {
		t.Errorf("merge order = %s %s %s, want a b c", clients[0].ID, clients[1].ID, clients[2].ID)
	}
	if clients[1].FullName != "Bruno Atualizado" {
		t.Errorf("conflict not overwritten: %q", clients[1].FullName)
	}

	// A colliding transaction is never overwritten, only unseen ids come in.
	if len(txs) != 2 {
		t.Fatalf("merged %d transactions, want 2", len(txs))
	}
	if txs[0].Description != "cabos" {
		t.Errorf("existing transaction overwritten by merge: %q", txs[0].Description)
	}
	if txs[1].ID != "t2" {
		t.Errorf("new transaction not appended: %+v", txs[1])
	}
}

func TestPlanRestoreReplace(t *testing.T) {
	current, currentTx := restoreFixtures()
	incoming := `{"version":"1.1","clients":[{"id":"z","fullName":"Zoe","status":"Ativo"}],"transactions":[]}`

	plan, err := PlanRestore(strings.NewReader(incoming), current, currentTx)
	if err != nil {
		t.Fatalf("PlanRestore: %v", err)
	}
	clients, txs := plan.Result(Replace)
	if len(clients) != 1 || clients[0].ID != "z" {
		t.Errorf("replace result = %+v, want only z", clients)
	}
	if len(txs) != 0 {
		t.Errorf("replace kept %d transactions, want 0", len(txs))
	}
}

func TestPlanRestoreLegacyArray(t *testing.T) {
	// Early backups were a bare array of clients, no envelope.
	incoming := `[{"id":"x","fullName":"Xavier","status":"Ativo"}]`

	plan, err := PlanRestore(strings.NewReader(incoming), nil, nil)
	if err != nil {
		t.Fatalf("PlanRestore legacy: %v", err)
	}
	if plan.NewClients != 1 || plan.NewTransactions != 0 {
		t.Errorf("legacy classification = %d/%d, want 1 client and no transactions",
			plan.NewClients, plan.NewTransactions)
	}
}

func TestPlanRestoreRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"not json at all",
		`{"version":"1.1"}`, // envelope without a client collection
		`42`,
	} {
		if _, err := PlanRestore(strings.NewReader(input), nil, nil); err == nil {
			t.Errorf("PlanRestore(%q) accepted garbage", input)
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	current, currentTx := restoreFixtures()
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	var sb strings.Builder
	if err := Export(&sb, current, currentTx, now); err != nil {
		t.Fatalf("Export: %v", err)
	}

	plan, err := PlanRestore(strings.NewReader(sb.String()), nil, nil)
	if err != nil {
		t.Fatalf("PlanRestore of own export: %v", err)
	}
	if plan.Incoming.Version != SnapshotVersion {
		t.Errorf("version = %q, want %q", plan.Incoming.Version, SnapshotVersion)
	}
	if !plan.Incoming.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", plan.Incoming.Timestamp, now)
	}
	clients, txs := plan.Result(Replace)
	if len(clients) != len(current) || len(txs) != len(currentTx) {
		t.Errorf("round trip lost records: %d/%d clients, %d/%d transactions",
			len(clients), len(current), len(txs), len(currentTx))
	}
	if clients[0].FullName != "Ana" || clients[1].FullName != "Bruno" {
		t.Errorf("round trip reordered clients: %+v", clients)
	}
}

func TestExportEmptyDataset(t *testing.T) {
	var sb strings.Builder
	if err := Export(&sb, nil, nil, time.Now()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	// Empty collections export as arrays, never null; an export must always
	// be restorable.
	if strings.Contains(sb.String(), "null") {
		t.Errorf("empty export contains null:\n%s", sb.String())
	}
	if _, err := PlanRestore(strings.NewReader(sb.String()), nil, nil); err != nil {
		t.Errorf("empty export not restorable: %v", err)
	}
}

func TestRestoreCommit(t *testing.T) {
	storage := NewMemStorage()
	clients, _ := OpenClientStore(storage)
	txs, _ := OpenTransactionStore(storage)
	meta, _ := OpenMetaStore(storage)

	seed := Client{ID: "a", FullName: "Ana", Status: StatusActive}
	if err := clients.Create(&seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	incoming := `{"version":"1.1","clients":[{"id":"z","fullName":"Zoe","status":"Ativo"}],"transactions":[]}`
	plan, err := PlanRestore(strings.NewReader(incoming), clients.List(), txs.List())
	if err != nil {
		t.Fatalf("PlanRestore: %v", err)
	}
	if err := plan.Commit(Replace, clients, txs, meta); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if clients.Len() != 1 {
		t.Errorf("store has %d clients after replace, want 1", clients.Len())
	}
	if _, ok := clients.Get("z"); !ok {
		t.Errorf("incoming client missing after commit")
	}
	// A restore leaves the data matching a file on disk.
	if _, ok := meta.LastBackup(); !ok {
		t.Errorf("restore did not mark the dataset as backed up")
	}
}

func TestParseRestoreMode(t *testing.T) {
	if m, err := ParseRestoreMode("merge"); err != nil || m != Merge {
		t.Errorf("merge: %v %v", m, err)
	}
	if m, err := ParseRestoreMode("replace"); err != nil || m != Replace {
		t.Errorf("replace: %v %v", m, err)
	}
	if _, err := ParseRestoreMode("upsert"); err == nil {
		t.Errorf("unknown mode accepted")
	}
}
