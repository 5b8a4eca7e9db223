// Package dates holds the date helpers used by the product form. Dates
// travel as YYYY-MM-DD strings on the wire and in form inputs.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// InputLayout is the canonical form-input and wire layout.
const InputLayout = "2006-01-02"

// Parse decomposes a YYYY-MM-DD string into a date. It reports false when
// the string does not split into three non-zero numeric components.
// Out-of-range days are normalized by time.Date (2023-02-31 rolls into
// March); callers rely on that behavior, do not validate it away.
func Parse(value string) (time.Time, bool) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n == 0 {
			return time.Time{}, false
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local), true
}

// FormatForInput renders a date as zero-padded YYYY-MM-DD.
func FormatForInput(t time.Time) string {
	return t.Format(InputLayout)
}

// Reformat normalizes an incoming date string to the input layout.
// Unparseable input falls back to the current date.
func Reformat(value string) string {
	t, ok := Parse(value)
	if !ok {
		t = time.Now()
	}
	return FormatForInput(t)
}

// AddYears returns a new date advanced by n years. Feb 29 plus one year
// lands on Mar 1 in a non-leap year (calendar normalization).
func AddYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}

// IsValid reports whether value parses as a date.
func IsValid(value string) bool {
	_, ok := Parse(value)
	return ok
}

// TodayFormatted returns the current date in the input layout.
func TodayFormatted() string {
	return FormatForInput(time.Now())
}
