package tracker

// Category identifies a spending or income category.
//
// Categories are a fixed vocabulary: each transaction type has its own set,
// and unknown identifiers render with a generic name and pin emoji rather
// than failing.
type Category string

type categoryInfo struct {
	id    Category
	name  string
	emoji string
}

var expenseCategories = []categoryInfo{
	{"food", "Food & Dining", "🍽️"},
	{"transport", "Transportation", "🚗"},
	{"shopping", "Shopping", "🛍️"},
	{"entertainment", "Entertainment", "🎬"},
	{"health", "Healthcare", "🏥"},
	{"bills", "Bills & Utilities", "📋"},
	{"education", "Education", "📚"},
	{"travel", "Travel", "✈️"},
	{"other", "Other", "📌"},
}

var incomeCategories = []categoryInfo{
	{"salary", "Salary", "💼"},
	{"freelance", "Freelance", "💻"},
	{"business", "Business", "🏢"},
	{"investment", "Investment", "📈"},
	{"bonus", "Bonus", "🎁"},
	{"gift", "Gift", "🎉"},
	{"refund", "Refund", "🔄"},
	{"other-income", "Other Income", "📌"},
}

// CategoriesFor returns the category identifiers selectable for the given
// transaction type, in display order.
func CategoriesFor(typ TxType) []Category {
	var src []categoryInfo
	switch typ {
	case Income:
		src = incomeCategories
	case Expense:
		src = expenseCategories
	default:
		return nil
	}
	ids := make([]Category, 0, len(src))
	for _, c := range src {
		ids = append(ids, c.id)
	}
	return ids
}

// KnownCategory reports whether id belongs to the category set of typ.
func KnownCategory(typ TxType, id Category) bool {
	for _, c := range CategoriesFor(typ) {
		if c == id {
			return true
		}
	}
	return false
}

func lookupCategory(id Category) (categoryInfo, bool) {
	for _, c := range expenseCategories {
		if c.id == id {
			return c, true
		}
	}
	for _, c := range incomeCategories {
		if c.id == id {
			return c, true
		}
	}
	return categoryInfo{}, false
}

// Name returns the human readable name of the category, or "Other" for
// identifiers outside the vocabulary.
func (c Category) Name() string {
	if info, ok := lookupCategory(c); ok {
		return info.name
	}
	return "Other"
}

// Emoji returns the emoji of the category, or a pin for identifiers outside
// the vocabulary.
func (c Category) Emoji() string {
	if info, ok := lookupCategory(c); ok {
		return info.emoji
	}
	return "📌"
}

func (c Category) String() string { return string(c) }
