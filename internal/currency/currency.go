// Package currency converts USD amounts into display strings for the
// storefront's supported currencies. Rates are static; conversion is
// display-only and must never be used for settlement.
package currency

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCode is used when an unknown currency code is requested.
const DefaultCode = "INR"

type rate struct {
	symbol string
	// multiplier converts from USD.
	multiplier decimal.Decimal
	// zeroDecimal currencies render without fraction digits.
	zeroDecimal bool
}

var rates = map[string]rate{
	"INR": {symbol: "₹", multiplier: decimal.NewFromFloat(83.5), zeroDecimal: true},
	"USD": {symbol: "$", multiplier: decimal.NewFromFloat(1)},
	"THB": {symbol: "฿", multiplier: decimal.NewFromFloat(34.5)},
	"JPY": {symbol: "¥", multiplier: decimal.NewFromFloat(149.5), zeroDecimal: true},
	"ZAR": {symbol: "R", multiplier: decimal.NewFromFloat(18.2)},
}

var printer = message.NewPrinter(language.English)

// Convert renders a USD amount in the given display currency: converted at the
// static rate, rounded half-up to 0 or 2 decimal places, grouped with
// thousands separators, and prefixed with the currency symbol. Unknown codes
// silently fall back to DefaultCode.
func Convert(amountUSD float64, code string) string {
	r, ok := rates[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		r = rates[DefaultCode]
	}
	places := int32(2)
	if r.zeroDecimal {
		places = 0
	}
	v := decimal.NewFromFloat(amountUSD).Mul(r.multiplier).Round(places)
	return r.symbol + grouped(v.StringFixed(places))
}

// Symbol returns the display symbol for a code, falling back like Convert.
func Symbol(code string) string {
	r, ok := rates[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		r = rates[DefaultCode]
	}
	return r.symbol
}

// Supported lists the supported currency codes in sorted order.
func Supported() []string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func grouped(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	out := printer.Sprintf("%d", n)
	if frac != "" {
		out += "." + frac
	}
	return out
}
