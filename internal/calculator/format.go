package calculator

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders amount in the given ISO 4217 currency using US
// English conventions, e.g. "$1,234.50".
func FormatAmount(amount float64, code string) string {
	return FormatAmountIn(language.AmericanEnglish, amount, code)
}

// FormatAmountIn renders amount for display in the given locale. The
// output is for display only: grouping and symbols make it lossy, so never
// parse it back. Unknown currency codes fall back to "CODE 12.34".
func FormatAmountIn(tag language.Tag, amount float64, code string) string {
	p := message.NewPrinter(tag)

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", strings.ToUpper(code), p.Sprint(number.Decimal(amount, number.Scale(2))))
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	scale, _ := currency.Standard.Rounding(unit)
	symbol := p.Sprint(currency.Symbol(unit))
	digits := p.Sprint(number.Decimal(amount, number.Scale(scale)))

	if symbolAfterAmount(tag) {
		return sign + digits + "\u00a0" + symbol
	}
	return sign + symbol + digits
}

// suffixSymbolLanguages write the currency symbol after the amount,
// separated by a no-break space ("1.234,50 €").
var suffixSymbolLanguages = map[string]bool{
	"bg": true, "ca": true, "cs": true, "da": true, "de": true, "el": true,
	"es": true, "et": true, "fi": true, "fr": true, "hr": true, "hu": true,
	"it": true, "lt": true, "lv": true, "nb": true, "no": true, "pl": true,
	"ro": true, "ru": true, "sk": true, "sl": true, "sv": true, "uk": true,
	"vi": true,
}

// symbolAfterAmount reports whether tag places the currency symbol after
// the number. Portuguese does so only in Portugal; Swiss and Liechtenstein
// German keep it in front.
func symbolAfterAmount(tag language.Tag) bool {
	base, _ := tag.Base()
	region, _ := tag.Region()
	switch base.String() {
	case "pt":
		return region.String() == "PT"
	case "de":
		return region.String() != "CH" && region.String() != "LI"
	}
	return suffixSymbolLanguages[base.String()]
}
