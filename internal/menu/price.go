package menu

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// PriceErrorMessage is shown under the price field when validation fails.
const PriceErrorMessage = "Please enter a valid price greater than 0"

// ErrInvalidPrice is returned for any price that is not a finite number above zero.
var ErrInvalidPrice = errors.New(PriceErrorMessage)

// IsValidPrice reports whether p is a finite number greater than zero.
func IsValidPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p > 0
}

// ParsePrice parses raw form input. Anything that is not a finite number > 0
// yields ErrInvalidPrice.
func ParsePrice(raw string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !IsValidPrice(p) {
		return 0, ErrInvalidPrice
	}
	return p, nil
}

// FormatPrice renders a price for display and for seeding a form field.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
