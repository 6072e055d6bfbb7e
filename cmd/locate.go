package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
)

type locateCmd struct {
	all bool
}

func (*locateCmd) Name() string     { return "locate" }
func (*locateCmd) Synopsis() string { return "geocode the address of a client" }
func (*locateCmd) Usage() string {
	return `sgs locate <id or name>
sgs locate -all

  Resolves the address of a client to coordinates through the geocoding
  service and derives the UTM fields. The lookup needs street, number and
  city. With -all, every client that has a complete address and no
  coordinates yet is located.
`
}

func (c *locateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Locate every client missing coordinates")
}

func (c *locateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clients, _, _, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	geo := sgsolar.NewNominatim()

	if c.all {
		var located, skipped int
		for _, client := range clients.List() {
			if client.HasCoordinates() {
				continue
			}
			switch err := locate(ctx, clients, geo, client); {
			case errors.Is(err, errIncompleteAddress), errors.Is(err, sgsolar.ErrNoMatch):
				skipped++
			case err != nil:
				fmt.Fprintf(os.Stderr, "Error locating %q: %v\n", client.FullName, err)
				return subcommands.ExitFailure
			default:
				located++
			}
		}
		fmt.Printf("Located %d clients, skipped %d\n", located, skipped)
		return subcommands.ExitSuccess
	}

	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one client id or name, or -all")
		return subcommands.ExitUsageError
	}
	client, err := resolveClient(clients, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := locate(ctx, clients, geo, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var errIncompleteAddress = errors.New("address needs street, number and city")

// locate geocodes one client and stores the result.
func locate(ctx context.Context, clients *sgsolar.ClientStore, geo sgsolar.Geocoder, client sgsolar.Client) error {
	query, ok := sgsolar.BuildGeocodeQuery(client.AddressFields())
	if !ok {
		return errIncompleteAddress
	}
	lat, lon, err := geo.Search(ctx, query)
	if err != nil {
		return err
	}

	client.SetCoordinates(
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	)
	if err := clients.Update(client); err != nil {
		return err
	}
	fmt.Printf("Located %q at %s, %s (UTM %s)\n", client.FullName, client.Latitude, client.Longitude, client.UTMZone)
	return nil
}
