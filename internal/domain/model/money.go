// Package model defines the core domain entities for the storefront service.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents represents a monetary amount in integer cents.
//
// All pricing arithmetic in the service is done on Cents; floating point
// only appears at the JSON boundary where amounts are rendered with two
// decimal places.
type Cents int64

// Float64 returns the amount in dollars as a float. Presentation only.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// String formats the amount as a decimal string, e.g. "17.95" or "-3.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the amount as a JSON number with two decimal places.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON parses a JSON number such as 17.95, "17.95", or 17 into cents
// without going through floating point.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	parsed, err := ParseCents(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCents converts a decimal string ("17.95", "-3", "7.5") to Cents.
// At most two fractional digits are accepted.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	if negative || strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	dollars, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	total := dollars*100 + frac
	if negative {
		total = -total
	}
	return Cents(total), nil
}
