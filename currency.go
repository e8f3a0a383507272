package tracker

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is a snapshot of a display currency.
//
// A transaction embeds the currency that was active when it was created, and
// that snapshot is never rewritten, even if the reference list changes later.
type Currency struct {
	Code    string `json:"code"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// DefaultCurrency is the currency used when no preference has been persisted.
var DefaultCurrency = Currency{Code: "USD", Symbol: "$", Name: "US Dollar", Country: "United States"}

// referenceCurrencies is the static lookup table of selectable currencies.
// It is display data only: stored transactions keep their own snapshot.
var referenceCurrencies = []Currency{
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Country: "Australia"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", Country: "Brazil"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Country: "Canada"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", Country: "China"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone", Country: "Denmark"},
	{Code: "EGP", Symbol: "E£", Name: "Egyptian Pound", Country: "Egypt"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Country: "Eurozone"},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar", Country: "Hong Kong"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Country: "India"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah", Country: "Indonesia"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli New Shekel", Country: "Israel"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Country: "Japan"},
	{Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling", Country: "Kenya"},
	{Code: "MXN", Symbol: "Mex$", Name: "Mexican Peso", Country: "Mexico"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar", Country: "New Zealand"},
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira", Country: "Nigeria"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone", Country: "Norway"},
	{Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee", Country: "Pakistan"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso", Country: "Philippines"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Złoty", Country: "Poland"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble", Country: "Russia"},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal", Country: "Saudi Arabia"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", Country: "Singapore"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand", Country: "South Africa"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won", Country: "South Korea"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona", Country: "Sweden"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc", Country: "Switzerland"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht", Country: "Thailand"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira", Country: "Turkey"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Country: "United Arab Emirates"},
	{Code: "GBP", Symbol: "£", Name: "Pound Sterling", Country: "United Kingdom"},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Country: "United States"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Đồng", Country: "Vietnam"},
}

// Currencies returns the selectable currencies sorted alphabetically by country name.
func Currencies() []Currency {
	list := slices.Clone(referenceCurrencies)
	slices.SortFunc(list, func(a, b Currency) int {
		return strings.Compare(a.Country, b.Country)
	})
	return list
}

// LookupCurrency resolves a currency code against the reference list.
// Codes absent from the list but known to the ISO table are still accepted,
// with the symbol resolved from that table.
func LookupCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range referenceCurrencies {
		if c.Code == code {
			return c, nil
		}
	}
	if iso := money.GetCurrency(code); iso != nil {
		return Currency{Code: iso.Code, Symbol: iso.Grapheme, Name: iso.Code, Country: ""}, nil
	}
	return Currency{}, fmt.Errorf("unknown currency code %q", code)
}

// ValidateCurrencyCode checks a currency code against the ISO table.
func ValidateCurrencyCode(code string) error {
	if code == "" {
		return errors.New("currency code is missing")
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// String renders the currency the way the selector displays it.
func (c Currency) String() string {
	if c.Country == "" {
		return fmt.Sprintf("%s - %s (%s)", c.Name, c.Symbol, c.Code)
	}
	return fmt.Sprintf("%s - %s (%s)", c.Country, c.Name, c.Code)
}
