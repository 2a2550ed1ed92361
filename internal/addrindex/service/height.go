// Package service orchestrates index and node lookups for the address API.
package service

import "strconv"

// ResolveHeight parses a base-10 height floor. Anything unparsable, including
// an empty, signed, fractional or out-of-range value, resolves to 0.
func ResolveHeight(raw string) uint64 {
	height, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return height
}
