package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/sgsolar/sgsolar/cmd"
)

func main() {
	// Shell completion answers and exits before anything else runs.
	completion().Complete("sgs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	statuses := predict.Set{"Ativo", "Pendente", "Inativo", "Lead"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add-client": {Flags: map[string]complete.Predictor{
				"status":     statuses,
				"doc-type":   predict.Set{"CPF", "CNPJ", "RG"},
				"connection": predict.Set{"Monofásico", "Bifásico", "Trifásico"},
			}},
			"clients":   {Flags: map[string]complete.Predictor{"status": statuses}},
			"rm-client": {},
			"dossier":   {},
			"set-address": {Flags: map[string]complete.Predictor{
				"cep": predict.Nothing,
			}},
			"set-coords": {},
			"locate":     {},
			"attach": {Flags: map[string]complete.Predictor{
				"cat": predict.Set{
					"identification", "energyBill", "other", "art", "locationMap",
					"diagram", "annex1", "memorial", "holderDoc", "powerOfAttorney",
					"inverterCert", "techRespDoc", "othersConc",
				},
			}, Args: predict.Files("*")},
			"add-tx": {Flags: map[string]complete.Predictor{
				"type": predict.Set{"receita", "despesa"},
			}},
			"rm-tx":  {},
			"tx":     {},
			"report": {},
			"backup": {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"restore": {Flags: map[string]complete.Predictor{
				"i":    predict.Files("*.json"),
				"mode": predict.Set{"merge", "replace"},
			}},
			"status": {},
			"topic": {Args: predict.Set{
				"getting-started", "documents", "geolocation", "backups", "readme",
			}},
		},
	}
}
