package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency amounts are carried as int64 minor units (cents) everywhere inside the
// system. Binary floating point is never used for money: summing float64 cents
// drifts, and the daily report must reconcile to the cent.

// ParseAmount converts a 2-decimal currency string (e.g. "6.11") into cents.
// Up to two fractional digits are accepted; more is rejected rather than rounded.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	negative := false
	if strings.HasPrefix(amount, "-") {
		negative = true
		amount = amount[1:]
	}

	wholePart := amount
	fracPart := ""
	if idx := strings.Index(amount, "."); idx >= 0 {
		wholePart = amount[:idx]
		fracPart = amount[idx+1:]
	}

	if wholePart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid amount %q", amount)
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("amount %q has more than 2 decimal places", amount)
	}
	// ParseInt would accept a sign inside the fraction ("6.-1"); only bare
	// digits are structurally valid there.
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid amount %q", amount)
		}
	}

	if wholePart == "" {
		wholePart = "0"
	}
	// Pad the fraction to exactly two digits so "6.1" means 610 cents.
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	whole, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	cents := whole*100 + frac
	if negative {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders cents as a 2-decimal currency string ("2343" -> "23.43").
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
