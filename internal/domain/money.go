package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var amountPrinter = message.NewPrinter(language.English)

// Money is an amount in minor units of a single currency.
type Money struct {
	Amount   int64
	Currency currency.Unit
}

func NewMoney(amount int64, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

// Formatted renders the amount with the currency's narrow symbol, grouped whole
// units and the currency's standard scale, e.g. 3000000000 EUR -> "€30,000,000.00".
func (m Money) Formatted() string {
	scale, _ := currency.Standard.Rounding(m.Currency)
	major := decimal.New(m.Amount, -int32(scale))

	sign := ""
	if major.IsNegative() {
		sign = "-"
		major = major.Neg()
	}

	whole := amountPrinter.Sprint(number.Decimal(major.IntPart()))
	if scale == 0 {
		return fmt.Sprintf("%s%s%s", sign, currency.NarrowSymbol(m.Currency), whole)
	}

	_, frac, _ := strings.Cut(major.StringFixed(int32(scale)), ".")

	return fmt.Sprintf("%s%s%s.%s", sign, currency.NarrowSymbol(m.Currency), whole, frac)
}
