package validators

import (
	"errors"
	"regexp"
	"strconv"
)

var ErrInvalidAmount = errors.New("please enter a valid amount")

// Digits with at most one decimal point. Signs and exponents are rejected.
var amountRegex = regexp.MustCompile(`^\d*\.?\d*$`)

// ParseAmount validates bill amount input. Empty input returns ok=false with
// a nil error, meaning "no amount entered".
func ParseAmount(text string) (amount float64, ok bool, err error) {
	if text == "" {
		return 0, false, nil
	}
	if !amountRegex.MatchString(text) {
		return 0, false, ErrInvalidAmount
	}
	amount, err = strconv.ParseFloat(text, 64)
	if err != nil {
		// "." alone passes the pattern but is not a number
		return 0, false, ErrInvalidAmount
	}
	return amount, true, nil
}
