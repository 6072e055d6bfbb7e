package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
	"github.com/sgsolar/sgsolar/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the unified financial summary" }
func (*reportCmd) Usage() string {
	return `sgs report

  Displays total revenue, expenses and profit across contract values,
  project costs and standalone movements, plus the last six months of
  cash flow.
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clients, transactions, meta, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	cs, txs := clients.List(), transactions.List()
	totals := sgsolar.ComputeTotals(cs, txs)
	series := sgsolar.MonthlySeries(cs, txs, now)

	printMarkdown(renderer.Report(totals, series, meta, now))
	return subcommands.ExitSuccess
}
