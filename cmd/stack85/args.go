package main

import (
	"fmt"
	"strconv"
)

// parseUintArg parses a decimal or 0x-prefixed hex command-line
// argument into an unsigned value of the given bit width.
func parseUintArg(s string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: %w", s, err)
	}
	return n, nil
}
