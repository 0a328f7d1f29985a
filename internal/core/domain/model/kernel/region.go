package kernel

import "strings"

// NormalizeRegion returns the canonical form of a region code: trimmed and
// upper-cased, so "eu" and " EU" name the same region.
func NormalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}
