package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
)

type restoreCmd struct {
	input string
	mode  string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "import a backup file" }
func (*restoreCmd) Usage() string {
	return `sgs restore -i <file> [-mode merge|replace]

  Reads a backup file and reports what it would change. Nothing is written
  until a mode is chosen:
    merge    keeps current records, overwrites id collisions, adds the rest
    replace  discards the current collections entirely

Usage Examples:
# Inspect first, then decide.
$ sgs restore -i sgsolar-2026-08-31.json
$ sgs restore -i sgsolar-2026-08-31.json -mode merge

`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to read (required)")
	f.StringVar(&c.mode, "mode", "", "merge or replace; omit to only inspect the file")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <file> is required")
		return subcommands.ExitUsageError
	}

	clients, transactions, meta, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	file, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	plan, err := sgsolar.PlanRestore(file, clients.List(), transactions.List())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Backup of %s: %d clients, %d movements\n",
		plan.Incoming.Timestamp.Format("2006-01-02"),
		len(plan.Incoming.Clients), len(plan.Incoming.Transactions))
	fmt.Printf("  %d new clients, %d would be overwritten on merge, %d new movements\n",
		plan.NewClients, plan.ConflictClients, plan.NewTransactions)

	if c.mode == "" {
		fmt.Println("Nothing changed. Re-run with -mode merge or -mode replace to apply.")
		return subcommands.ExitSuccess
	}

	mode, err := sgsolar.ParseRestoreMode(c.mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := plan.Commit(mode, clients, transactions, meta); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Restored (%s): now %d clients and %d movements\n", mode, clients.Len(), transactions.Len())
	return subcommands.ExitSuccess
}
