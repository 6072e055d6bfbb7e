// Package renderer turns records into the markdown documents printed by
// the CLI.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/sgsolar/sgsolar"
)

// Dossier renders the full project dossier of one client: registration
// data, address, technical sizing, location, project state and the
// document checklist.
func Dossier(c sgsolar.Client) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(c.FullName)
	doc.PlainTextf("Status: %s", md.Bold(string(c.Status)))
	doc.LF()

	doc.H2("Dados Pessoais")
	personal := md.TableSet{
		Header: []string{"Campo", "Valor"},
		Rows: [][]string{
			{"Documento", docCell(c)},
			{"E-mail", orDash(c.Email)},
			{"Telefone", orDash(sgsolar.FormatPhone(c.Phone))},
		},
	}
	if c.Notes != "" {
		personal.Rows = append(personal.Rows, []string{"Observações", c.Notes})
	}
	doc.Table(personal)

	doc.H2("Endereço")
	doc.Table(md.TableSet{
		Header: []string{"Campo", "Valor"},
		Rows: [][]string{
			{"CEP", orDash(c.CEP)},
			{"Logradouro", orDash(c.Street)},
			{"Número", orDash(c.Number)},
			{"Bairro", orDash(c.Neighborhood)},
			{"Cidade / UF", orDash(joinCityState(c.City, c.State))},
			{"Referência", orDash(c.Reference)},
		},
	})

	doc.H2("Dados Técnicos")
	technical := md.TableSet{
		Header: []string{"Campo", "Valor"},
		Rows: [][]string{
			{"Concessionária", orDash(c.Concessionaire)},
			{"UC", orDash(c.UC)},
			{"Tipo de Instalação", orDash(c.InstallType)},
			{"Ligação", orDash(string(c.ConnectionType))},
			{"Tensão", orDash(c.Voltage)},
			{"Disjuntor", orDash(c.Breaker)},
			{"Consumo Médio (kWh)", orDash(c.AvgConsumption)},
		},
	}
	if kw, ok := sgsolar.AvailablePowerKW(c.Voltage, c.Breaker, c.ConnectionType); ok {
		technical.Rows = append(technical.Rows, []string{"Potência Disponível", fmt.Sprintf("%.2f kW", kw)})
	}
	if kwp, ok := sgsolar.SuggestedSystemKWp(c.AvgConsumption); ok {
		technical.Rows = append(technical.Rows, []string{"Sistema Sugerido", fmt.Sprintf("%.2f kWp", kwp)})
	}
	doc.Table(technical)

	if c.HasCoordinates() {
		doc.H2("Localização")
		doc.Table(md.TableSet{
			Header: []string{"Campo", "Valor"},
			Rows: [][]string{
				{"Latitude", c.Latitude},
				{"Longitude", c.Longitude},
				{"Zona UTM", c.UTMZone},
				{"UTM Leste (E)", c.UTMEasting},
				{"UTM Norte (N)", c.UTMNorthing},
			},
		})
	}

	if c.ProjectStatus != "" {
		doc.H2("Projeto")
		project := md.TableSet{
			Header: []string{"Campo", "Valor"},
			Rows: [][]string{
				{"Etapa", workflowCell(c.ProjectStatus)},
				{"Data de Instalação", orDash(c.InstallDate)},
				{"Valor do Contrato", orDash(c.ContractValue)},
				{"Custo do Projeto", orDash(c.ProjectCost)},
			},
		}
		if c.EquipmentList != "" {
			project.Rows = append(project.Rows, []string{"Equipamentos", c.EquipmentList})
		}
		doc.Table(project)
	}

	doc.H2("Documentos")
	if len(c.Documents) == 0 {
		doc.PlainText("Nenhum documento anexado.")
	} else {
		doc.Table(documentChecklist(c.Documents))
	}

	return doc.String()
}

// documentChecklist groups the saved documents by checklist slot, keeping
// the form order and appending unknown slots at the end.
func documentChecklist(docs []sgsolar.SavedDocument) md.TableSet {
	byCategory := make(map[sgsolar.DocumentCategory][]string)
	var unknown []sgsolar.DocumentCategory
	for _, d := range docs {
		if _, seen := byCategory[d.CategoryID]; !seen && !d.CategoryID.Known() {
			unknown = append(unknown, d.CategoryID)
		}
		byCategory[d.CategoryID] = append(byCategory[d.CategoryID], d.Name)
	}

	table := md.TableSet{Header: []string{"Categoria", "Arquivos"}}
	for _, cat := range append(sgsolar.DocumentCategories(), unknown...) {
		names := byCategory[cat]
		if len(names) == 0 {
			continue
		}
		table.Rows = append(table.Rows, []string{cat.Label(), fmt.Sprintf("%d: %s", len(names), strings.Join(names, ", "))})
	}
	return table
}

func docCell(c sgsolar.Client) string {
	if c.DocNumber == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", c.DocType, sgsolar.FormatDocNumber(c.DocType, c.DocNumber))
}

func workflowCell(s sgsolar.ProjectStatus) string {
	return fmt.Sprintf("%d/%d %s", s.Rank()+1, len(sgsolar.ProjectWorkflow()), s)
}

func joinCityState(city, state string) string {
	switch {
	case city == "":
		return state
	case state == "":
		return city
	}
	return city + " / " + state
}

// orDash keeps empty cells visible in the rendered tables.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
