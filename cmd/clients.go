package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
	"github.com/sgsolar/sgsolar/renderer"
)

type clientsCmd struct {
	status string
	search string
}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list registered clients" }
func (*clientsCmd) Usage() string {
	return `sgs clients [-status <status>] [-q <text>]

  Lists clients, optionally filtered by status or by a text search over
  name, city and consumer unit.
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only clients with this status (Ativo, Pendente, Inativo, Lead)")
	f.StringVar(&c.search, "q", "", "Only clients matching this text")
}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clients, _, _, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	list := clients.List()
	if c.status != "" {
		status, err := sgsolar.ParseClientStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		list = filter(list, func(cl sgsolar.Client) bool { return cl.Status == status })
	}
	if c.search != "" {
		q := strings.ToLower(c.search)
		list = filter(list, func(cl sgsolar.Client) bool {
			return strings.Contains(strings.ToLower(cl.FullName), q) ||
				strings.Contains(strings.ToLower(cl.City), q) ||
				strings.Contains(strings.ToLower(cl.UC), q)
		})
	}

	printMarkdown(renderer.Clients(list))
	return subcommands.ExitSuccess
}

func filter(list []sgsolar.Client, keep func(sgsolar.Client) bool) []sgsolar.Client {
	out := list[:0:0]
	for _, c := range list {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
