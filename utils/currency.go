package utils

import (
	"fmt"
	"strings"
)

// FormatAmount renders an amount with thousand separators and a
// currency tag, e.g. FormatAmount(1500, "USD") -> "USD 1,500.00".
func FormatAmount(amount float64, currency string) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	result := strings.Join(groups, ",") + "." + decimalPart
	if negative {
		result = "-" + result
	}
	return currency + " " + result
}
