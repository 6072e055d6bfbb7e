package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
	"github.com/sgsolar/sgsolar/date"
)

type addTxCmd struct {
	description string
	txType      string
	amount      string
	date        string
	category    string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a standalone income or expense" }
func (*addTxCmd) Usage() string {
	return `sgs add-tx -desc <text> -type receita|despesa -amount <value> [-date <date>] [-cat <category>]

  Records a financial movement not tied to a client project. Contract
  values and project costs live on the client record and are aggregated
  separately.

Usage Examples:
$ sgs add-tx -desc "compra de cabos" -type despesa -amount "R$ 300,00" -date 2026-08-01

`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Description of the movement (required)")
	f.StringVar(&c.txType, "type", "", "receita (income) or despesa (expense)")
	f.StringVar(&c.amount, "amount", "", "Amount, e.g. \"R$ 300,00\" or \"300,00\"")
	f.StringVar(&c.date, "date", "", "Date of the movement (defaults to today)")
	f.StringVar(&c.category, "cat", "", "Free-form category")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txType, err := sgsolar.ParseTransactionType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	when := c.date
	if when == "" {
		when = date.Today().String()
	} else {
		d, err := date.Parse(when)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		when = d.String()
	}

	tx := sgsolar.Transaction{
		Description: c.description,
		Type:        txType,
		Amount:      c.amount,
		Date:        when,
		Category:    c.category,
	}

	_, transactions, _, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := transactions.Add(&tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s on %s (%s)\n", tx.Type.Label(), sgsolar.ParseBRLOrZero(tx.Amount), tx.Date, tx.ID)
	return subcommands.ExitSuccess
}
