package cmd

import (
	"testing"

	"github.com/sgsolar/sgsolar"
)

func testStore(t *testing.T, names ...string) *sgsolar.ClientStore {
	t.Helper()
	store, err := sgsolar.OpenClientStore(sgsolar.NewMemStorage())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		c := sgsolar.Client{FullName: name, Status: sgsolar.StatusActive}
		if err := store.Create(&c); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestResolveClient(t *testing.T) {
	store := testStore(t, "Maria Souza", "Mario Prado", "Ana Lima")

	// By exact id.
	id := store.List()[2].ID
	if c, err := resolveClient(store, id); err != nil || c.FullName != "Ana Lima" {
		t.Errorf("resolve by id = %q, %v", c.FullName, err)
	}

	// By unique name fragment, case-insensitive.
	if c, err := resolveClient(store, "ana"); err != nil || c.FullName != "Ana Lima" {
		t.Errorf("resolve by fragment = %q, %v", c.FullName, err)
	}

	// An ambiguous fragment names the candidates instead of guessing.
	if _, err := resolveClient(store, "mari"); err == nil {
		t.Errorf("ambiguous fragment resolved")
	}

	if _, err := resolveClient(store, "zeca"); err == nil {
		t.Errorf("unknown client resolved")
	}
}
