package wyre

import "github.com/shopspring/decimal"

// Amount is an unscaled monetary quantity. Values represent real fund
// movements, so arbitrary-precision decimals are used throughout; never
// floats.
type Amount = decimal.Decimal

// Address is a postal address. All fields are optional on the wire.
type Address struct {
	// A valid street address
	Street1 *string `json:"street1"`

	// Additional street address
	Street2 *string `json:"street2"`

	// The city name
	City *string `json:"city"`

	// A valid state code, two uppercase letters (e.g. CA)
	State *string `json:"state"`

	// A valid US zipcode
	PostalCode *string `json:"postalCode"`

	// The alpha-2 country code
	Country *string `json:"country"`
}

// Currency is a fiat or crypto currency code.
//
// The API adds currencies server-side faster than client bindings update, so
// Currency is open: a code outside the named set decodes to itself rather
// than failing, keeping the raw token so two different unrecognized codes
// stay distinguishable. Recognized reports membership of the named set.
type Currency string

const (
	// Fiat
	USD Currency = "USD" // United States Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound Sterling
	AUD Currency = "AUD" // Australian Dollar
	CAD Currency = "CAD" // Canadian Dollar
	NZD Currency = "NZD" // New Zealand Dollar
	ARS Currency = "ARS" // Argentine Peso
	BRL Currency = "BRL" // Brazilian Real
	CHF Currency = "CHF" // Swiss Franc
	CLP Currency = "CLP" // Chilean Peso
	COP Currency = "COP" // Colombian Peso
	CZK Currency = "CZK" // Czech Koruna
	DKK Currency = "DKK" // Danish Krone
	HKD Currency = "HKD" // Hong Kong Dollar
	ILS Currency = "ILS" // Israeli New Shekel
	INR Currency = "INR" // Indian Rupee
	ISK Currency = "ISK" // Icelandic Krona
	JPY Currency = "JPY" // Japanese Yen
	KRW Currency = "KRW" // South Korean Won
	MXN Currency = "MXN" // Mexican Peso
	MYR Currency = "MYR" // Malaysian Ringgit
	NOK Currency = "NOK" // Norwegian Krone
	PHP Currency = "PHP" // Philippine Peso
	PLN Currency = "PLN" // Polish Zloty
	SEK Currency = "SEK" // Swedish Krona
	SGD Currency = "SGD" // Singapore Dollar
	THB Currency = "THB" // Thai Baht
	VND Currency = "VND" // Vietnamese Dong
	ZAR Currency = "ZAR" // South African Rand

	// Crypto
	BTC   Currency = "BTC"   // Bitcoin
	ETH   Currency = "ETH"   // Ethereum
	XLM   Currency = "XLM"   // Stellar
	SUSDC Currency = "sUSDC" // Stellar USDC
	AVAX  Currency = "AVAX"  // Avalanche
	DAI   Currency = "DAI"   // DAI
	PDAI  Currency = "pDAI"  // Palm DAI
	USDC  Currency = "USDC"  // USD Coin
	MUSDC Currency = "mUSDC" // Matic USDC
	LBTC  Currency = "L-BTC" // Liquid BTC
	USDT  Currency = "USDT"  // Tether
	BUSD  Currency = "BUSD"  // Binance USD
	GUSD  Currency = "GUSD"  // Gemini Dollar
	PAX   Currency = "PAX"   // Paxos Standard
	USDS  Currency = "USDS"  // Stably Dollar
	AAVE  Currency = "AAVE"  // Aave
	COMP  Currency = "COMP"  // Compound
	LINK  Currency = "LINK"  // Chainlink
	WBTC  Currency = "WBTC"  // Wrapped Bitcoin
	BAT   Currency = "BAT"   // Basic Attention Token
	CRV   Currency = "CRV"   // Curve
	MKR   Currency = "MKR"   // Maker
	SNX   Currency = "SNX"   // Synthetix
	UMA   Currency = "UMA"   // UMA
	UNI   Currency = "UNI"   // Uniswap
	YFI   Currency = "YFI"   // yearn.finance
	GYEN  Currency = "GYEN"  // Digital JPY
	ZUSD  Currency = "ZUSD"  // Digital USD
	MATIC Currency = "MATIC" // Polygon
)

var recognizedCurrencies = map[Currency]struct{}{
	USD: {}, EUR: {}, GBP: {}, AUD: {}, CAD: {}, NZD: {}, ARS: {}, BRL: {},
	CHF: {}, CLP: {}, COP: {}, CZK: {}, DKK: {}, HKD: {}, ILS: {}, INR: {},
	ISK: {}, JPY: {}, KRW: {}, MXN: {}, MYR: {}, NOK: {}, PHP: {}, PLN: {},
	SEK: {}, SGD: {}, THB: {}, VND: {}, ZAR: {},
	BTC: {}, ETH: {}, XLM: {}, SUSDC: {}, AVAX: {}, DAI: {}, PDAI: {},
	USDC: {}, MUSDC: {}, LBTC: {}, USDT: {}, BUSD: {}, GUSD: {}, PAX: {},
	USDS: {}, AAVE: {}, COMP: {}, LINK: {}, WBTC: {}, BAT: {}, CRV: {},
	MKR: {}, SNX: {}, UMA: {}, UNI: {}, YFI: {}, GYEN: {}, ZUSD: {}, MATIC: {},
}

// Recognized reports whether the code is one this binding was written
// against. Unrecognized codes are still valid values; they just postdate
// this client.
func (c Currency) Recognized() bool {
	_, ok := recognizedCurrencies[c]
	return ok
}

// String returns a pointer to s. Convenience for optional request fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
