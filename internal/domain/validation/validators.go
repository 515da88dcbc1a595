// Package validation holds the pure field validators used by signup, login and
// payment submission. Validators never panic and never return Go errors for bad
// input: the outcome is a Result carrying the user-facing reason.
package validation

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
	"github.com/shopspring/decimal"
)

// ValidReason is the reason attached to every successful Result
const ValidReason = "Valid"

// Result is the outcome of a single validator
type Result struct {
	Valid  bool
	Reason string
}

// Pass returns a successful result
func Pass() Result {
	return Result{Valid: true, Reason: ValidReason}
}

// Fail returns a failed result with reason
func Fail(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// Err converts a failed result into a ValidationError for field, or nil if valid
func (r Result) Err(field string) error {
	if r.Valid {
		return nil
	}
	return errs.NewValidationError(field, r.Reason)
}

// Supported banks and wallets
var (
	Banks   = []string{"SBI", "HDFC", "ICICI", "Axis", "PNB", "BOB"}
	Wallets = []string{"Paytm", "PhonePe", "GooglePay", "AmazonPay"}
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	upiPattern      = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	expiryPattern   = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// ValidateEmail checks the address shape
func ValidateEmail(email string) Result {
	if !emailPattern.MatchString(email) {
		return Fail("Invalid email format")
	}
	return Pass()
}

// ValidateUsername checks length (3 to 20) and the allowed character set
func ValidateUsername(username string) Result {
	length := utf8.RuneCountInString(username)
	if length < 3 {
		return Fail("Username must be at least 3 characters")
	}
	if length > 20 {
		return Fail("Username must be less than 20 characters")
	}
	if !usernamePattern.MatchString(username) {
		return Fail("Username can only contain letters, numbers, underscores, and hyphens")
	}
	return Pass()
}

// ValidatePassword checks length only (6 to 50)
func ValidatePassword(password string) Result {
	length := utf8.RuneCountInString(password)
	if length < 6 {
		return Fail("Password must be at least 6 characters")
	}
	if length > 50 {
		return Fail("Password must be less than 50 characters")
	}
	return Pass()
}

// ValidateFullName requires 3+ characters after trimming, letters and spaces only
func ValidateFullName(fullName string) Result {
	if utf8.RuneCountInString(strings.TrimSpace(fullName)) < 3 {
		return Fail("Full name must be at least 3 characters")
	}
	if !namePattern.MatchString(fullName) {
		return Fail("Full name must contain only letters and spaces")
	}
	return Pass()
}

// ValidateAmount parses raw and checks 0 < amount <= 1,000,000.
// The parsed amount is returned alongside a valid result.
func ValidateAmount(raw string) (decimal.Decimal, Result) {
	amount, err := entity.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, Fail("Invalid amount")
	}
	if !entity.IsPositiveAmount(amount) {
		return decimal.Zero, Fail("Amount must be greater than 0")
	}
	if entity.ExceedsMaxAmount(amount) {
		return decimal.Zero, Fail("Amount cannot exceed ₹10,00,000")
	}
	return amount, Pass()
}

// ValidateUPIID checks the handle@provider shape
func ValidateUPIID(upiID string) Result {
	if !upiPattern.MatchString(upiID) {
		return Fail("Invalid UPI ID format (e.g., username@bankname)")
	}
	return Pass()
}

// ValidateCardNumber strips spaces and hyphens, then checks digits, length 13 to 19 and the Luhn checksum
func ValidateCardNumber(number string) Result {
	digits := entity.NormalizeCardNumber(number)
	if !isASCIIDigits(digits) {
		return Fail("Card number must contain only digits")
	}
	if len(digits) < 13 || len(digits) > 19 {
		return Fail("Card number must be 13-19 digits")
	}
	if !PassesLuhn(digits) {
		return Fail("Invalid card number")
	}
	return Pass()
}

// ValidateExpiryDate checks the MM/YY shape and that the card has not expired at now.
// A card stays valid through its whole expiry month.
func ValidateExpiryDate(expiry string, now time.Time) Result {
	if !expiryPattern.MatchString(expiry) {
		return Fail("Expiry date must be in MM/YY format")
	}

	month, _ := strconv.Atoi(expiry[:2])
	yy, _ := strconv.Atoi(expiry[3:])
	year := 2000 + yy

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return Fail("Card has expired")
	}
	return Pass()
}

// ValidateCVV requires exactly 3 or 4 digits
func ValidateCVV(cvv string) Result {
	if !isASCIIDigits(cvv) || (len(cvv) != 3 && len(cvv) != 4) {
		return Fail("CVV must be 3-4 digits")
	}
	return Pass()
}

// ValidateCardholderName requires 3+ characters after trimming, letters and spaces only
func ValidateCardholderName(name string) Result {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 3 {
		return Fail("Cardholder name must be at least 3 characters")
	}
	if !namePattern.MatchString(name) {
		return Fail("Cardholder name must contain only letters and spaces")
	}
	return Pass()
}

// ValidateBank checks membership in Banks
func ValidateBank(bank string) Result {
	if !slices.Contains(Banks, bank) {
		return Fail("Please select a valid bank")
	}
	return Pass()
}

// ValidateWallet checks membership in Wallets
func ValidateWallet(wallet string) Result {
	if !slices.Contains(Wallets, wallet) {
		return Fail("Please select a valid wallet")
	}
	return Pass()
}

// PassesLuhn runs the mod-10 checksum over a string of ASCII digits
func PassesLuhn(number string) bool {
	sum := 0
	alternate := false
	for i := len(number) - 1; i >= 0; i-- {
		n := int(number[i] - '0')
		if alternate {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		alternate = !alternate
	}
	return sum%10 == 0
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
