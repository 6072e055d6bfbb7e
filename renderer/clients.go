package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/sgsolar/sgsolar"
)

// Clients renders the client listing.
func Clients(clients []sgsolar.Client) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Clientes")
	if len(clients) == 0 {
		doc.PlainText("Nenhum cliente cadastrado.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Nome", "Status", "Cidade", "Telefone", "Projeto", "ID"}}
	for _, c := range clients {
		table.Rows = append(table.Rows, []string{
			c.FullName,
			string(c.Status),
			orDash(c.City),
			orDash(sgsolar.FormatPhone(c.Phone)),
			orDash(string(c.ProjectStatus)),
			c.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}
