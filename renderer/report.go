package renderer

import (
	"bytes"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/sgsolar/sgsolar"
)

// Report renders the unified financial summary and the trailing monthly
// cash-flow series.
func Report(totals sgsolar.Totals, series []sgsolar.MonthBucket, meta *sgsolar.MetaStore, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Relatório Financeiro")
	doc.Table(md.TableSet{
		Header: []string{"Indicador", "Valor"},
		Rows: [][]string{
			{md.Bold("Receita Total"), totals.Revenue.String()},
			{"Despesas Totais", totals.Expenses.String()},
			{md.Bold("Lucro"), totals.Profit.String()},
		},
	})

	if len(series) > 0 {
		doc.H2("Fluxo de Caixa Mensal")
		table := md.TableSet{Header: []string{"Mês", "Receitas", "Despesas"}}
		for _, b := range series {
			table.Rows = append(table.Rows, []string{
				b.Month.Label() + " " + b.Month.String(),
				b.Income.String(),
				b.Expense.String(),
			})
		}
		doc.Table(table)
	}

	if meta != nil && meta.Outdated(now) {
		doc.LF()
		if last, ok := meta.LastBackup(); ok {
			doc.PlainTextf("Atenção: último backup em %s. Rode `sgs backup`.", last.Format("2006-01-02"))
		} else {
			doc.PlainText("Atenção: nenhum backup foi feito ainda. Rode `sgs backup`.")
		}
	}

	return doc.String()
}

// Transactions renders the movement history, newest first.
func Transactions(transactions []sgsolar.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Movimentações")
	if len(transactions) == 0 {
		doc.PlainText("Nenhuma movimentação registrada.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Data", "Descrição", "Tipo", "Valor", "Categoria", "ID"}}
	for _, t := range transactions {
		table.Rows = append(table.Rows, []string{
			t.Date,
			t.Description,
			t.Type.Label(),
			amountCell(t),
			orDash(t.Category),
			t.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}

// amountCell normalizes the stored amount for display; expenses are shown
// signed.
func amountCell(t sgsolar.Transaction) string {
	v := sgsolar.ParseBRLOrZero(t.Amount)
	if t.Type == sgsolar.Expense {
		v = v.Neg()
	}
	return v.String()
}
