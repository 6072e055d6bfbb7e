package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
)

type addClientCmd struct {
	name           string
	status         string
	docType        string
	docNumber      string
	email          string
	phone          string
	notes          string
	concessionaire string
	uc             string
	installType    string
	consumption    string
	connection     string
	voltage        string
	breaker        string
}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "register a new client" }
func (*addClientCmd) Usage() string {
	return `sgs add-client -name <full name> [-status <status>] [-doc-type CPF|CNPJ|RG -doc <number>] ...

  Registers a new client record and prints its id. Identifiers are accepted
  with or without punctuation; CPF and CNPJ check digits are verified.

Usage Examples:
# Minimal registration.
$ sgs add-client -name "Maria Souza"

# With document and technical data.
$ sgs add-client -name "Maria Souza" -doc-type CPF -doc 529.982.247-25 -connection Trifásico -voltage 220 -breaker 63

`
}

func (c *addClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name of the client (required)")
	f.StringVar(&c.status, "status", "Ativo", "Commercial status (Ativo, Pendente, Inativo, Lead)")
	f.StringVar(&c.docType, "doc-type", "", "Identity document type (CPF, CNPJ, RG)")
	f.StringVar(&c.docNumber, "doc", "", "Identity document number")
	f.StringVar(&c.email, "email", "", "Contact e-mail")
	f.StringVar(&c.phone, "phone", "", "Contact phone")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.StringVar(&c.concessionaire, "concessionaire", "", "Energy concessionaire")
	f.StringVar(&c.uc, "uc", "", "Consumer unit number")
	f.StringVar(&c.installType, "install-type", "", "Installation type (Telhado, Solo, ...)")
	f.StringVar(&c.consumption, "consumption", "", "Average monthly consumption in kWh")
	f.StringVar(&c.connection, "connection", "", "Connection type (Monofásico, Bifásico, Trifásico)")
	f.StringVar(&c.voltage, "voltage", "", "Nominal voltage in V")
	f.StringVar(&c.breaker, "breaker", "", "Breaker amperage in A")
}

func (c *addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := sgsolar.ParseClientStatus(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client := sgsolar.Client{
		FullName:       c.name,
		Status:         status,
		Email:          c.email,
		Phone:          c.phone,
		Notes:          c.notes,
		Concessionaire: c.concessionaire,
		UC:             c.uc,
		InstallType:    c.installType,
		AvgConsumption: c.consumption,
		Voltage:        c.voltage,
		Breaker:        c.breaker,
	}

	if c.docType != "" {
		docType, err := sgsolar.ParseDocType(c.docType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := validateDoc(docType, c.docNumber); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		client.DocType = docType
		client.DocNumber = sgsolar.FormatDocNumber(docType, c.docNumber)
	}

	if c.connection != "" {
		connection, err := sgsolar.ParseConnectionType(c.connection)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		client.ConnectionType = connection
	}

	clients, _, _, err := OpenStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := clients.Create(&client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered %q with id %s\n", client.FullName, client.ID)
	return subcommands.ExitSuccess
}

// validateDoc applies the check-digit validation matching the type; RG has
// no national algorithm.
func validateDoc(t sgsolar.DocType, number string) error {
	switch t {
	case sgsolar.DocCPF:
		return sgsolar.ValidateCPF(number)
	case sgsolar.DocCNPJ:
		return sgsolar.ValidateCNPJ(number)
	}
	return nil
}
