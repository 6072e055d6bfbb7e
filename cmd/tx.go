package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
	"github.com/sgsolar/sgsolar/renderer"
)

type txCmd struct {
	txType string
	head   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list financial movements, newest first" }
func (*txCmd) Usage() string {
	return `sgs tx [-type receita|despesa] [-head <n>]

  Lists the recorded movements, newest first, with options for filtering
  and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "Only movements of this type (receita, despesa)")
	f.IntVar(&c.head, "head", 0, "Show only the first N movements")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, transactions, _, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	list := transactions.List()
	if c.txType != "" {
		txType, err := sgsolar.ParseTransactionType(c.txType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		kept := list[:0:0]
		for _, t := range list {
			if t.Type == txType {
				kept = append(kept, t)
			}
		}
		list = kept
	}
	if c.head > 0 && len(list) > c.head {
		list = list[:c.head]
	}

	printMarkdown(renderer.Transactions(list))
	return subcommands.ExitSuccess
}
