package etl

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonDigit = regexp.MustCompile(`\D`)

// FormatPhoneNumber standardizes phone numbers to (XXX) XXX-XXXX. Any input
// that does not contain exactly 10 digits, including an empty one, yields nil
// rather than a malformed string.
func FormatPhoneNumber(raw string) *string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) != 10 {
		return nil
	}

	formatted := fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	return &formatted
}

// CleanSalary coerces a raw salary to an integer, rounding half away from
// zero. Currency symbols, commas and whitespace are tolerated. Non-numeric or
// empty input yields nil; negative values pass through.
func CleanSalary(raw string) *int64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return nil
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return nil
	}

	rounded := int64(math.Round(val))
	return &rounded
}

// dateLayouts are tried in order. ISO first since cleaned data re-enters the
// pipeline in that form.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NormalizeDate re-emits a parseable calendar date as YYYY-MM-DD so that
// lexicographic ordering of stored dates equals chronological ordering.
// Unparsable input yields nil.
func NormalizeDate(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}

	return nil
}
