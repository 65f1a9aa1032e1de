package marketdata

import (
	"fmt"
	"math"
	"strings"
)

// FormatCompact abbreviates large values with K/M/B suffixes. Non-finite
// values render "N/A" rather than NaN/Infinity.
func FormatCompact(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// FormatPercent renders a percentage with two decimals, guarding non-finite
// values as "N/A".
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatPrice renders an INR amount with the lakh/crore digit grouping used
// by the dashboard (e.g. ₹12,34,567.89).
func FormatPrice(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	return sign + "₹" + groupIndian(parts[0]) + "." + parts[1]
}

// groupIndian inserts Indian-style separators: the last three digits form
// one group, the rest pair off (1234567 -> 12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
