// Package renderer turns analysis results into markdown for the terminal.
package renderer

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/vsrin/shelfstat"
)

// Amount formats a monetary value in the display currency. The report
// files keep raw numerics; currency formatting is a console-only concern.
// An unknown currency code falls back to the raw rounded value.
func Amount(m shelfstat.Money, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return m.Round(2).String()
	}
	minor := int64(math.Round(m.InexactFloat64() * math.Pow(10, float64(cur.Fraction))))
	return money.New(minor, code).Display()
}

// days formats a day count for a stats column.
func days(v float64) string { return fmt.Sprintf("%.1f d", v) }
