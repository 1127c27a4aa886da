// Package currency formats minor-unit amounts for storefront display.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NoPrice is rendered when a product has no live offer.
const NoPrice = "—"

// printer applies en-IN digit grouping (1,24,999). message.Printer is
// safe for concurrent use.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatPaise renders a paise amount as whole rupees, rounding to the
// nearest rupee. A nil amount renders as an em-dash.
func FormatPaise(paise *int64) string {
	if paise == nil {
		return NoPrice
	}
	rupees := int64(math.Round(float64(*paise) / 100))
	return printer.Sprintf("₹%v", number.Decimal(rupees))
}
