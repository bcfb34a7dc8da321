package export

import (
	"strconv"
	"strings"
)

// formatAmount renders a float without a trailing ".00" and with thousands
// separators, matching how the dashboard displays money.
func formatAmount(value float64) string {
	raw := strconv.FormatFloat(value, 'f', -1, 64)

	negative := strings.HasPrefix(raw, "-")
	if negative {
		raw = raw[1:]
	}

	intPart := raw
	fracPart := ""
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		intPart = raw[:idx]
		fracPart = raw[idx:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}

// formatMoney prefixes the configured currency symbol.
func formatMoney(symbol string, value float64) string {
	return symbol + formatAmount(value)
}

// formatNumber renders the raw numeric value for CSV cells, no grouping.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
