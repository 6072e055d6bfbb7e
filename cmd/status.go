package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show dataset counters and backup age" }
func (*statusCmd) Usage() string {
	return `sgs status

  Shows how many records the dataset holds and when it was last backed up.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clients, transactions, meta, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var documents int
	for _, c := range clients.List() {
		documents += len(c.Documents)
	}
	fmt.Printf("Data directory: %s\n", *dataDir)
	fmt.Printf("Clients:        %d (%d documents)\n", clients.Len(), documents)
	fmt.Printf("Movements:      %d\n", transactions.Len())

	now := time.Now()
	if last, ok := meta.LastBackup(); ok {
		fmt.Printf("Last backup:    %s (%d days ago)\n", last.Format("2006-01-02"), int(now.Sub(last).Hours()/24))
	} else {
		fmt.Println("Last backup:    never")
	}
	if meta.Outdated(now) {
		fmt.Println("Backup is overdue, run `sgs backup`.")
	}
	return subcommands.ExitSuccess
}
