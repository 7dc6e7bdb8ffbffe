// Package display derives the read-only presentation values the dashboard
// renders: formatted currency, margin impact, and decision badge labels.
// It never mutates records.
package display

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/roach88/repricer/internal/model"
)

// Prices are catalog prices in Indian rupees; the locale drives the digit
// grouping.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders a price as whole rupees, e.g. "₹1,29,000".
func FormatPrice(v float64) string {
	return printer.Sprintf("₹%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// MarginImpact returns the percent difference between the current listed
// price and a candidate new price. ok is false when either price is zero,
// meaning the impact cannot be computed yet.
func MarginImpact(myPrice, newPrice float64) (impact float64, ok bool) {
	if myPrice == 0 || newPrice == 0 {
		return 0, false
	}
	return (newPrice - myPrice) / myPrice * 100, true
}

// FormatMargin renders a margin impact with an explicit sign, e.g. "+4.4%".
func FormatMargin(impact float64) string {
	return fmt.Sprintf("%+.1f%%", impact)
}

// BadgeLabel maps a decision to its operator-facing badge text.
func BadgeLabel(d model.Decision) string {
	switch d {
	case model.DecisionMatchPrice:
		return "Match Price"
	case model.DecisionBundleOffer:
		return "Bundle Offer"
	case model.DecisionHold:
		return "Hold"
	default:
		return string(d)
	}
}
