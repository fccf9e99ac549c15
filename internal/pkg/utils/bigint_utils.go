package utils

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatBigInt converts a big.Int value to a human-readable string,
// considering the given number of decimals.
// Example: amount=1234500000000000000, decimals=18 => "1.2345"
// With decimals == 0 the exact base-10 integer is returned.
func FormatBigInt(amount *big.Int, decimals uint8) (string, error) {
	if amount == nil {
		return "0", nil
	}
	if decimals == 0 {
		return amount.String(), nil
	}

	neg := amount.Sign() < 0
	digits := new(big.Int).Abs(amount).String()

	d := int(decimals)
	if len(digits) <= d {
		digits = strings.Repeat("0", d-len(digits)+1) + digits
	}
	intPart := digits[:len(digits)-d]
	fracPart := strings.TrimRight(digits[len(digits)-d:], "0")

	formatted := intPart
	if fracPart != "" {
		formatted += "." + fracPart
	}
	if neg && formatted != "0" {
		formatted = "-" + formatted
	}
	if formatted == "" {
		return "", fmt.Errorf("formatting resulted in empty string for %s", amount.String())
	}
	return formatted, nil
}
