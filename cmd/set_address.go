package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
)

type setAddressCmd struct {
	cep          string
	street       string
	number       string
	neighborhood string
	city         string
	state        string
	reference    string
}

func (*setAddressCmd) Name() string     { return "set-address" }
func (*setAddressCmd) Synopsis() string { return "update the address of a client" }
func (*setAddressCmd) Usage() string {
	return `sgs set-address <id or name> [-cep <cep>] [-street ...] [-number ...] [-city ...] ...

  Updates the address of a client. When -cep is given, street, neighborhood,
  city and state are filled from the CEP registry; explicit flags override
  the lookup. Changing the location fields clears any stored coordinates.

Usage Examples:
# Fill the address from the CEP, only the number is typed.
$ sgs set-address maria -cep 91330-002 -number 100

`
}

func (c *setAddressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cep, "cep", "", "CEP to look the address up from")
	f.StringVar(&c.street, "street", "", "Street")
	f.StringVar(&c.number, "number", "", "Number")
	f.StringVar(&c.neighborhood, "neighborhood", "", "Neighborhood")
	f.StringVar(&c.city, "city", "", "City")
	f.StringVar(&c.state, "state", "", "State (UF)")
	f.StringVar(&c.reference, "ref", "", "Reference point")
}

func (c *setAddressCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	addr := client.AddressFields()
	if c.cep != "" {
		looked, err := sgsolar.NewViaCEP().Lookup(ctx, c.cep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		addr.CEP = looked.CEP
		addr.Street = looked.Street
		addr.Neighborhood = looked.Neighborhood
		addr.City = looked.City
		addr.State = looked.State
	}
	// Explicit flags override whatever the lookup filled.
	override(&addr.Street, c.street)
	override(&addr.Number, c.number)
	override(&addr.Neighborhood, c.neighborhood)
	override(&addr.City, c.city)
	override(&addr.State, c.state)
	override(&addr.Reference, c.reference)

	hadCoordinates := client.HasCoordinates()
	client.SetAddress(addr)
	if err := clients.Update(client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated address of %q\n", client.FullName)
	if hadCoordinates && !client.HasCoordinates() {
		fmt.Println("Stored coordinates were cleared; run `sgs locate` to refresh them.")
	}
	return subcommands.ExitSuccess
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
