package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Hours is a fixed-point count of worked hours with two fractional digits,
// held as hundredths of an hour (8.25 hours == 825). Integer arithmetic keeps
// increment and daily-total checks exact; float remainders are never used.
type Hours int64

const (
	// QuarterHour is the smallest bookable increment.
	QuarterHour Hours = 25

	// DailyHourLimit is the ceiling on summed hours per employee per date.
	DailyHourLimit Hours = 2400
)

// ParseHours parses a decimal string such as "8", "8.5" or "8.25".
// More than two fractional digits is an error, as is a missing integer part.
func ParseHours(s string) (Hours, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("hours value is empty")
	}

	negative := false
	if s[0] == '+' || s[0] == '-' {
		negative = s[0] == '-'
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot+1:]
	}
	if intPart == "" {
		return 0, fmt.Errorf("invalid hours value %q", s)
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("hours value %q has more than two decimal digits", s)
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours value %q", s)
	}

	frac := int64(0)
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hours value %q", s)
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
	}

	value := whole*100 + frac
	if negative {
		value = -value
	}
	return Hours(value), nil
}

// IsQuarterIncrement reports whether the value is an exact multiple of 0.25.
func (h Hours) IsQuarterIncrement() bool {
	return h%QuarterHour == 0
}

// String renders the value with two decimal digits, e.g. "8.25".
func (h Hours) String() string {
	v := int64(h)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the value as a JSON number with two decimal digits.
func (h Hours) MarshalJSON() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalJSON accepts a JSON number (or the same value quoted) and parses it
// exactly, rejecting values with more than two decimal digits.
func (h *Hours) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		return nil
	}
	parsed, err := ParseHours(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
