package renderer

import (
	"fmt"
	"strings"

	"github.com/tmonk/tracker"
)

// Transaction renders a single transaction as a one-line summary.
func Transaction(t tracker.Transaction, today tracker.Date) string {
	sign := "-"
	if t.Type == tracker.Income {
		sign = "+"
	}
	return fmt.Sprintf("%s %s %s • %s • %s%s",
		t.Category.Emoji(), t.Description, FormatWhen(t.Date, today),
		t.Category.Name(), sign, money(t.Currency, t.Amount))
}

// Transactions renders the transaction list as markdown, newest first.
// Amounts keep their own currency; a record denominated differently from the
// active currency is marked with its code. The filtered flag selects the
// empty-state wording.
func Transactions(list []tracker.Transaction, active tracker.Currency, today tracker.Date, filtered bool) string {
	var sb strings.Builder
	sb.WriteString("# Transactions\n\n")
	if len(list) == 0 {
		if filtered {
			sb.WriteString("No transactions match your filters.\n\nTry adjusting your filters.\n")
		} else {
			sb.WriteString("No transactions recorded yet.\n\nAdd your first transaction to get started!\n")
		}
		return sb.String()
	}
	for _, t := range list {
		sign := "-"
		if t.Type == tracker.Income {
			sign = "+"
		}
		foreign := ""
		if t.Currency.Code != active.Code {
			foreign = fmt.Sprintf(" (%s)", t.Currency.Code)
		}
		fmt.Fprintf(&sb, "- %s **%s** • %s • %s • %s%s%s `#%d`\n",
			t.Category.Emoji(), t.Description,
			FormatWhen(t.Date, today), t.Category.Name(),
			sign, money(t.Currency, t.Amount), foreign, t.ID)
	}
	return sb.String()
}
