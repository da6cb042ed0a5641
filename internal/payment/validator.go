// Package payment implements the simulated card-payment format check
// that gates in-game currency purchases. It validates shape only; no
// transaction of any kind takes place.
package payment

import (
	"strconv"
	"strings"
)

// Validate performs a format-only check of the supplied card details and
// returns whether they pass plus a human-readable reason. Card numbers
// must be 16 digits, the expiry must be MM/YY with a month in 1-12 and a
// year of 25 or later, and the CVV must be 3 digits.
func Validate(cardNumber, expiry, cvv string) (bool, string) {
	if len(cardNumber) != 16 || !isDigits(cardNumber) {
		return false, "Card number must be 16 digits!"
	}
	if !validExpiry(expiry) {
		return false, "Invalid expiration date! Use MM/YY."
	}
	if len(cvv) != 3 || !isDigits(cvv) {
		return false, "CVV must be 3 digits!"
	}
	return true, "Transaction simulated successfully!"
}

func validExpiry(expiry string) bool {
	if len(expiry) != 5 {
		return false
	}
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12 && year >= 25
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
