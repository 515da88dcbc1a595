package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the number of decimal places money is displayed with
const MaxDecimalPlaces = 2

// MaxPaymentAmount is the largest amount a single payment may carry (₹10,00,000)
var MaxPaymentAmount = decimal.NewFromInt(1_000_000)

// ParseAmount converts user input into a decimal amount.
// Only the number format is checked here; range checks belong to the amount validator.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty amount", errs.ErrInvalidRequest)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	return value, nil
}

// FormatAmount renders an amount with exactly 2 decimal places, rounding half away from zero
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// FormatRupees renders an amount for user-facing messages, e.g. "₹500.00"
func FormatRupees(amount decimal.Decimal) string {
	return "₹" + FormatAmount(amount)
}

// IsPositiveAmount reports whether amount can be charged
func IsPositiveAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// ExceedsMaxAmount reports whether amount is above the per-payment ceiling
func ExceedsMaxAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(MaxPaymentAmount)
}
