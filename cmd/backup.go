package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
)

type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "export the whole dataset to a JSON file" }
func (*backupCmd) Usage() string {
	return `sgs backup [-o <file>]

  Exports every client (documents included) and every movement to one JSON
  file. Without -o the file is named after the current date.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (default sgsolar-<date>.json)")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clients, transactions, meta, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	filename := c.output
	if filename == "" {
		filename = fmt.Sprintf("sgsolar-%s.json", now.Format("2006-01-02"))
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := sgsolar.Export(file, clients.List(), transactions.List(), now); err != nil {
		file.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := meta.MarkBackedUp(now); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d clients and %d movements to %s\n", clients.Len(), transactions.Len(), filename)
	return subcommands.ExitSuccess
}
