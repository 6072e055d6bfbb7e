package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type setCoordsCmd struct {
	lat string
	lon string
}

func (*setCoordsCmd) Name() string     { return "set-coords" }
func (*setCoordsCmd) Synopsis() string { return "set the coordinates of a client manually" }
func (*setCoordsCmd) Usage() string {
	return `sgs set-coords <id or name> -lat <latitude> -lon <longitude>

  Stores latitude and longitude typed by hand, decimal comma accepted, and
  derives the UTM coordinates (WGS84) shown on the dossier.

Usage Examples:
$ sgs set-coords maria -lat -30,0346 -lon -51,2177

`
}

func (c *setCoordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lat, "lat", "", "Latitude in decimal degrees")
	f.StringVar(&c.lon, "lon", "", "Longitude in decimal degrees")
}

func (c *setCoordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.lat == "" || c.lon == "" {
		fmt.Fprintln(os.Stderr, "Error: expected one client and both -lat and -lon")
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

	client.SetCoordinates(c.lat, c.lon)
	if !client.HasCoordinates() {
		fmt.Fprintf(os.Stderr, "Error: %q / %q do not parse as coordinates\n", c.lat, c.lon)
		return subcommands.ExitUsageError
	}
	if err := clients.Update(client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Located %q at %s, %s (UTM %s E %s N %s)\n",
		client.FullName, client.Latitude, client.Longitude,
		client.UTMZone, client.UTMEasting, client.UTMNorthing)
	return subcommands.ExitSuccess
}
