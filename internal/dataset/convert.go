package dataset

// convert.go provides coercion from raw CSV cells to typed values.
//
// Source files come from spreadsheet exports, so numeric cells may carry
// currency symbols, thousands separators, or accounting-style parentheses.
// ToFloat cleans those up before parsing; anything still unparseable becomes
// an absent Float rather than an error.

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ToFloat converts a raw cell to an optional float.
// Returns an absent Float for empty or unparseable input, never an error.
func ToFloat(s string) Float {
	s = strings.TrimSpace(s)
	if s == "" {
		return Float{}
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return Float{}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// cleanHeader normalizes a header cell: strips a UTF-8 BOM if present on the
// first column, then applies the same artifact cleanup as data cells.
func cleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return CleanCell(s)
}
