package domain

// Currency represents a supported display currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	Symbol       string `json:"symbol"`       // e.g. "$"
	Name         string `json:"name"`         // e.g. "US Dollar"
}

// SupportedCurrencies is the static set the client's currency selector offers.
var SupportedCurrencies = []Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
	{CurrencyCode: "RON", Symbol: "lei", Name: "Romanian Leu"},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound"},
	{CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen"},
}
