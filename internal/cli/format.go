// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a CLP amount with a dollar sign and comma
// separators. e.g., 600000 -> "$600,000"
func FormatMoney(n int64) string {
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}

// FormatDate formats a date as dd/mm/yyyy, empty for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDays renders a day countdown for humans.
// e.g., -2 -> "2d overdue", 0 -> "today", 5 -> "in 5d"
func FormatDays(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	case days == 0:
		return "today"
	default:
		return fmt.Sprintf("in %dd", days)
	}
}

// FormatHours renders worked against estimated hours.
// e.g., 90, 120 -> "90/120h"
func FormatHours(worked, estimated int) string {
	return fmt.Sprintf("%d/%dh", worked, estimated)
}
