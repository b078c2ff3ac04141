package view

import (
	"fmt"
	"strconv"
	"strings"
)

// comma formats an integer with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// pct1 formats a percentage with one decimal place.
func pct1(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// signedPct formats a signed percentage change with one decimal place.
func signedPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// kpiValue renders a KPI value with its unit.
func kpiValue(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	switch unit {
	case "%":
		return s + "%"
	case "pp":
		return s + " pp"
	}
	return s
}
