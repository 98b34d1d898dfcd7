package domain

import (
	"strconv"
	"strings"
)

// ParsePrice converts a catalog price string like "25.000" into an integer
// amount. Dots, commas and spaces are thousand separators in the seeded
// catalog and are stripped before parsing; anything unparsable counts as 0.
func ParsePrice(s string) int64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
