package sqlite

import (
	"time"
)

// dateLayout is the storage format for calendar dates. The ISO form sorts and
// compares lexically, which the range queries rely on.
const dateLayout = "2006-01-02"

// FormatDateForDB formats a calendar date for storage.
func FormatDateForDB(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateFromDB parses a stored calendar date.
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// BoolToInt converts a bool to the integer form sqlite stores.
func BoolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
