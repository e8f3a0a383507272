// Package renderer turns ledger values into markdown strings for display.
// It is read-only: nothing here mutates the store.
package renderer

import "github.com/tmonk/tracker"

// FormatWhen renders a date relative to today: "Today", "Yesterday", a short
// month/day form, plus the year when it differs from the current one.
func FormatWhen(d, today tracker.Date) string {
	switch {
	case d == today:
		return "Today"
	case d == today.Add(-1):
		return "Yesterday"
	case d.Year() == today.Year():
		return d.Format("Jan 2")
	default:
		return d.Format("Jan 2, 2006")
	}
}

// money renders an amount in its currency's display convention, with the
// symbol placement and grouping of that currency, e.g. "$1,234.50".
func money(c tracker.Currency, a tracker.Amount) string {
	return a.FormatIn(c.Code)
}
