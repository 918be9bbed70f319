package message

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	nbsp = "\u00a0"

	// pt-MZ symbol for the metical.
	mznSymbol = "MTn"
)

var mzn = currency.MustParseISO("MZN")

// FormatMZN renders v the way pt-MZ formats MZN amounts: "2200,00 MTn",
// "12 500,00 MTn". Groups of three use a no-break space and only kick in
// once the integer part has five or more digits.
func FormatMZN(v decimal.Decimal) string {
	scale, _ := currency.Standard.Rounding(mzn)
	s := v.StringFixed(int32(scale))

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(groupThousands(intPart))
	if frac != "" {
		b.WriteString(",")
		b.WriteString(frac)
	}
	b.WriteString(nbsp)
	b.WriteString(mznSymbol)
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) < 5 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(nbsp)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
