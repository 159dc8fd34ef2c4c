package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vndPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount in Vietnamese dong with locale grouping,
// e.g. 199000 -> "199.000 ₫".
func FormatVND(amount int64) string {
	return vndPrinter.Sprintf("%d ₫", amount)
}
