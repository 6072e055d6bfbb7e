package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmClientCmd struct{}

func (*rmClientCmd) Name() string     { return "rm-client" }
func (*rmClientCmd) Synopsis() string { return "delete a client record" }
func (*rmClientCmd) Usage() string {
	return `sgs rm-client <id or name>

  Deletes a client record. Its documents are deleted with it; they belong
  to no other record. There is no undo besides restoring a backup.
`
}

func (*rmClientCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one client id or name")
		return subcommands.ExitUsageError
	}

	clients, _, _, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	client, err := resolveClient(clients, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := clients.Delete(client.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %q (%s)\n", client.FullName, client.ID)
	return subcommands.ExitSuccess
}
