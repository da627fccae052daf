package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// OrderNumberLength is the number of digits in generated order numbers.
const OrderNumberLength = 16

// NewOrderNumber returns a random order number with a valid Luhn check digit.
func NewOrderNumber() string {
	return goluhn.Generate(OrderNumberLength)
}

// IsOrderNumber reports whether s is all digits and passes the Luhn check.
func IsOrderNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return goluhn.Validate(s) == nil
}
