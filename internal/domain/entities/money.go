package entities

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultPracticePrice is the placement fee in KRW.
var DefaultPracticePrice = decimal.NewFromInt(110000)

// FormatWon renders an amount with thousands separators and the 원 suffix, e.g. 110,000원.
func FormatWon(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return humanize.Comma(amount.IntPart()) + "원"
	}
	f, _ := amount.Float64()
	return humanize.FormatFloat("#,###.##", f) + "원"
}
