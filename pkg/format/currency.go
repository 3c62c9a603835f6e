// Package format renders amounts the way the zh-TW locale writes them.
package format

import (
	"github.com/iwvelando/living-cost/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the single display locale.
var Locale = language.MustParse("zh-TW")

// Number returns an integer with thousands separators (e.g., "-1,234").
func Number(n int64) string {
	return message.NewPrinter(Locale).Sprintf("%d", n)
}

// Currency returns a whole-dollar NT$ amount (e.g., "NT$ 20,379").
func Currency(amount int64) string {
	return constants.CurrencyPrefix + Number(amount)
}
