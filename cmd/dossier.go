package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar/renderer"
)

type dossierCmd struct{}

func (*dossierCmd) Name() string     { return "dossier" }
func (*dossierCmd) Synopsis() string { return "display the full dossier of a client" }
func (*dossierCmd) Usage() string {
	return `sgs dossier <id or name>

  Displays everything known about a client: registration data, address,
  technical sizing (available power, suggested system), UTM location,
  project state and the document checklist.
`
}

func (*dossierCmd) SetFlags(f *flag.FlagSet) {}

func (c *dossierCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Dossier(client))
	return subcommands.ExitSuccess
}
