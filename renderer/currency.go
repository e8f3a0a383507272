package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/tmonk/tracker"
)

// Currencies renders the selectable currency list, marking the active one.
func Currencies(list []tracker.Currency, active tracker.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Currencies")

	rows := make([][]string, 0, len(list))
	for _, c := range list {
		mark := ""
		if c.Code == active.Code {
			mark = "✅"
		}
		rows = append(rows, []string{mark, c.Code, c.Symbol, c.Name, c.Country})
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Code", "Symbol", "Name", "Country"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Active: %s", active))

	return doc.String()
}
