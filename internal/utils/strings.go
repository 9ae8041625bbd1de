package utils

import (
	"fmt"
	"strings"
)

// ContainsFold reports whether query is a case-insensitive substring of s.
func ContainsFold(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

// PadSequence renders prefix + n zero-padded to width digits.
func PadSequence(prefix string, n, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}
