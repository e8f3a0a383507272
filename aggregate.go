package tracker

import "sort"

// Aggregation is pure: every function here derives a value from a slice of
// transactions without touching the store. Amounts in different currencies
// are never combined, so callers filter by the active currency first.

// FilterByCurrency returns the transactions denominated in the given
// currency code.
func FilterByCurrency(transactions []Transaction, code string) []Transaction {
	var out []Transaction
	for _, t := range transactions {
		if t.Currency.Code == code {
			out = append(out, t)
		}
	}
	return out
}

// FilterBy returns the transactions matching the given type and category.
// An empty type or category matches everything.
func FilterBy(transactions []Transaction, typ TxType, category Category) []Transaction {
	var out []Transaction
	for _, t := range transactions {
		if typ != "" && t.Type != typ {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SumByType returns the sum of all transactions of the given type.
func SumByType(transactions []Transaction, typ TxType) Amount {
	var sum Amount
	for _, t := range transactions {
		if t.Type == typ {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// NetBalance returns total income minus total expenses.
func NetBalance(transactions []Transaction) Amount {
	return SumByType(transactions, Income).Sub(SumByType(transactions, Expense))
}

// MonthlyExpenses returns the sum of expenses falling in the same calendar
// month as now.
func MonthlyExpenses(transactions []Transaction, now Date) Amount {
	var sum Amount
	for _, t := range transactions {
		if t.Type == Expense && t.Date.SameMonth(now) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// WeeklyExpenses returns the sum of expenses on or after the start of the
// week containing now. Weeks start on Sunday.
func WeeklyExpenses(transactions []Transaction, now Date) Amount {
	start := now.StartOfWeek()
	var sum Amount
	for _, t := range transactions {
		if t.Type == Expense && !t.Date.Before(start) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// Summary is the set of running totals displayed for one currency.
type Summary struct {
	Currency        Currency
	Income          Amount
	Expenses        Amount
	Balance         Amount
	MonthlyExpenses Amount
	WeeklyExpenses  Amount
}

// NewSummary computes the running totals over the transactions denominated
// in the given currency, relative to now. Records in other currencies are
// ignored entirely, never converted.
func NewSummary(transactions []Transaction, currency Currency, now Date) Summary {
	scope := FilterByCurrency(transactions, currency.Code)
	income := SumByType(scope, Income)
	expenses := SumByType(scope, Expense)
	return Summary{
		Currency:        currency,
		Income:          income,
		Expenses:        expenses,
		Balance:         income.Sub(expenses),
		MonthlyExpenses: MonthlyExpenses(scope, now),
		WeeklyExpenses:  WeeklyExpenses(scope, now),
	}
}

// BreakdownEntry is one category's share of total expenses.
type BreakdownEntry struct {
	Category Category
	Amount   Amount
	Share    Percent
}

// Breakdown is the per-category split of total expenses, sorted by amount
// descending. HasTransactions distinguishes an empty ledger from a ledger
// holding only income.
type Breakdown struct {
	Entries         []BreakdownEntry
	Total           Amount
	HasTransactions bool
}

// CategoryBreakdown computes the expense breakdown for one currency.
// Percentages are shares of total expenses in that currency; categories tied
// on amount keep their first-seen order.
func CategoryBreakdown(transactions []Transaction, code string) Breakdown {
	scope := FilterByCurrency(transactions, code)
	b := Breakdown{HasTransactions: len(scope) > 0}

	totals := make(map[Category]Amount)
	var order []Category
	for _, t := range scope {
		if t.Type != Expense {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		b.Total = b.Total.Add(t.Amount)
	}

	for _, c := range order {
		b.Entries = append(b.Entries, BreakdownEntry{
			Category: c,
			Amount:   totals[c],
			Share:    totals[c].PercentOf(b.Total),
		})
	}
	sort.SliceStable(b.Entries, func(i, j int) bool {
		return b.Entries[j].Amount.LessThan(b.Entries[i].Amount)
	})
	return b
}
