package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmTxCmd struct{}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "delete a financial movement" }
func (*rmTxCmd) Usage() string {
	return `sgs rm-tx <id>

  Deletes a movement by id, as listed by sgs tx.
`
}

func (*rmTxCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one movement id")
		return subcommands.ExitUsageError
	}

	_, transactions, _, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id := f.Arg(0)
	if _, ok := transactions.Get(id); !ok {
		fmt.Fprintf(os.Stderr, "Error: no movement %q\n", id)
		return subcommands.ExitFailure
	}
	if err := transactions.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted movement %s\n", id)
	return subcommands.ExitSuccess
}
