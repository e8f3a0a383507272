package tracker

// USD is a helper for tests to get the US Dollar currency snapshot.
func USD() Currency {
	return Currency{Code: "USD", Symbol: "$", Name: "US Dollar", Country: "United States"}
}

// EUR is a helper for tests to get the Euro currency snapshot.
func EUR() Currency {
	return Currency{Code: "EUR", Symbol: "€", Name: "Euro", Country: "Eurozone"}
}

// tx is a helper for tests to build a transaction from consts.
func tx(id int64, typ TxType, desc string, amount float64, cat Category, on string, cur Currency) Transaction {
	return Transaction{
		ID:          id,
		Type:        typ,
		Description: desc,
		Amount:      A(amount),
		Category:    cat,
		Date:        MustParseDate(on),
		Currency:    cur,
	}
}
