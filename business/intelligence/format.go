package intelligence

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// message.Printer is not safe for concurrent use, so each pass builds its own.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// quantity renders x with grouping separators and at most two decimals.
func quantity(p *message.Printer, x float64) string {
	return p.Sprint(number.Decimal(orZero(x), number.MaxFractionDigits(2)))
}

// money is quantity prefixed by the configured currency symbol.
func money(p *message.Printer, symbol string, amount float64) string {
	return symbol + quantity(p, amount)
}
