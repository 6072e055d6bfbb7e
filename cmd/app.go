// Package cmd implements the CLI application to manage the client base.
package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addClientCmd{}, "clients")
	c.Register(&clientsCmd{}, "clients")
	c.Register(&rmClientCmd{}, "clients")
	c.Register(&dossierCmd{}, "clients")

	c.Register(&setAddressCmd{}, "location")
	c.Register(&setCoordsCmd{}, "location")
	c.Register(&locateCmd{}, "location")

	c.Register(&attachCmd{}, "documents")

	c.Register(&addTxCmd{}, "finance")
	c.Register(&rmTxCmd{}, "finance")
	c.Register(&txCmd{}, "finance")
	c.Register(&reportCmd{}, "finance")

	c.Register(&backupCmd{}, "backup")
	c.Register(&restoreCmd{}, "backup")
	c.Register(&statusCmd{}, "backup")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".sgsolar", "Path to the data directory")

// OpenStores opens the three stores over the configured data directory.
func OpenStores() (*sgsolar.ClientStore, *sgsolar.TransactionStore, *sgsolar.MetaStore, error) {
	storage, err := sgsolar.NewDirStorage(*dataDir)
	if err != nil {
		return nil, nil, nil, err
	}
	clients, err := sgsolar.OpenClientStore(storage)
	if err != nil {
		return nil, nil, nil, err
	}
	transactions, err := sgsolar.OpenTransactionStore(storage)
	if err != nil {
		return nil, nil, nil, err
	}
	meta, err := sgsolar.OpenMetaStore(storage)
	if err != nil {
		return nil, nil, nil, err
	}
	return clients, transactions, meta, nil
}

// resolveClient finds a client by exact id first, then by unique
// case-insensitive name fragment.
func resolveClient(store *sgsolar.ClientStore, key string) (sgsolar.Client, error) {
	if c, ok := store.Get(key); ok {
		return c, nil
	}

	var matches []sgsolar.Client
	frag := strings.ToLower(key)
	for _, c := range store.List() {
		if strings.Contains(strings.ToLower(c.FullName), frag) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return sgsolar.Client{}, fmt.Errorf("no client matches %q", key)
	case 1:
		return matches[0], nil
	}
	names := make([]string, 0, len(matches))
	for _, c := range matches {
		names = append(names, fmt.Sprintf("%s (%s)", c.FullName, c.ID))
	}
	return sgsolar.Client{}, fmt.Errorf("%q is ambiguous: %s", key, strings.Join(names, ", "))
}
