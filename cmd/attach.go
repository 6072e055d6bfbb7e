package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/sgsolar/sgsolar"
)

type attachCmd struct {
	category string
	list     bool
	remove   string
}

func (*attachCmd) Name() string     { return "attach" }
func (*attachCmd) Synopsis() string { return "manage the documents of a client" }
func (*attachCmd) Usage() string {
	return `sgs attach <id or name> -cat <category> <file> [<file> ...]
sgs attach <id or name> -list
sgs attach <id or name> -rm <file-id>

  Attaches files to one slot of the client's document checklist. Images are
  downscaled and re-encoded as JPEG; PDFs are stored untouched; files above
  10 MB are refused one by one.

Usage Examples:
$ sgs attach maria -cat energyBill fatura-julho.pdf foto-padrao.jpg

`
}

func (c *attachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "cat", "", "Checklist slot to attach into")
	f.BoolVar(&c.list, "list", false, "Show the checklist of the client")
	f.StringVar(&c.remove, "rm", "", "Remove the file with this id")
}

func (c *attachCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a client id or name")
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

	// The editing session mirrors the persisted checklist.
	session := sgsolar.NewDocumentStore()
	if err := session.Deserialize(client.Documents); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.list:
		return c.printChecklist(session)
	case c.remove != "":
		return c.removeFile(clients, client, session)
	default:
		return c.attachFiles(clients, client, session, f.Args()[1:])
	}
}

func (c *attachCmd) printChecklist(session *sgsolar.DocumentStore) subcommands.ExitStatus {
	for _, cat := range sgsolar.DocumentCategories() {
		files := session.Category(cat)
		if len(files) == 0 {
			fmt.Printf("[ ] %s (%s)\n", cat.Label(), cat)
			continue
		}
		fmt.Printf("[x] %s (%s)\n", cat.Label(), cat)
		for _, a := range files {
			fmt.Printf("      %s  %s (%s, %d bytes)\n", a.ID, a.Name, a.MIME, len(a.Data))
		}
	}
	return subcommands.ExitSuccess
}

func (c *attachCmd) removeFile(clients *sgsolar.ClientStore, client sgsolar.Client, session *sgsolar.DocumentStore) subcommands.ExitStatus {
	if !session.RemoveID(c.remove) {
		fmt.Fprintf(os.Stderr, "Error: no document %q on %q\n", c.remove, client.FullName)
		return subcommands.ExitFailure
	}
	client.Documents = session.Serialize()
	if err := clients.Update(client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed document %s from %q\n", c.remove, client.FullName)
	return subcommands.ExitSuccess
}

func (c *attachCmd) attachFiles(clients *sgsolar.ClientStore, client sgsolar.Client, session *sgsolar.DocumentStore, paths []string) subcommands.ExitStatus {
	if c.category == "" || len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected -cat <category> and at least one file")
		return subcommands.ExitUsageError
	}
	category := sgsolar.DocumentCategory(c.category)
	if !category.Known() {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q, see `sgs topic documents`\n", c.category)
		return subcommands.ExitUsageError
	}

	var files []sgsolar.FileInput
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		files = append(files, sgsolar.FileInput{Name: filepath.Base(path), Data: data})
	}

	added, rejected := session.Attach(category, files)
	for _, r := range rejected {
		fmt.Fprintf(os.Stderr, "Refused %q: %v\n", r.Name, r.Reason)
	}
	if len(added) == 0 {
		return subcommands.ExitFailure
	}

	client.Documents = session.Serialize()
	if err := clients.Update(client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, a := range added {
		fmt.Printf("Attached %q to %s (%s, %d bytes stored)\n", a.Name, category.Label(), a.ID, len(a.Data))
	}
	return subcommands.ExitSuccess
}
