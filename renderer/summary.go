package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tmonk/tracker"
)

// Summary renders the running totals for the active currency.
func Summary(s tracker.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary (%s)", s.Currency.Code))

	table := md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Income", money(s.Currency, s.Income)},
			{"Total Expenses", money(s.Currency, s.Expenses)},
			{"Net Balance", money(s.Currency, s.Balance)},
			{"This Month", money(s.Currency, s.MonthlyExpenses)},
			{"This Week", money(s.Currency, s.WeeklyExpenses)},
		},
	}
	doc.Table(table)

	return doc.String()
}

// Breakdown renders the per-category expense split for the active currency.
// An empty ledger and an income-only ledger get distinct empty states.
func Breakdown(b tracker.Breakdown, c tracker.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses by Category (%s)", c.Code))
	if !b.HasTransactions {
		doc.PlainText("No data to display")
		return doc.String()
	}
	if len(b.Entries) == 0 {
		doc.PlainText("No expense data to display")
		return doc.String()
	}

	rows := make([][]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		rows = append(rows, []string{
			e.Category.Emoji() + " " + e.Category.Name(),
			money(c, e.Amount),
			e.Share.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Amount", "Share"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total: %s", money(c, b.Total)))

	return doc.String()
}
