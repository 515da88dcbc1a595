package validation

import (
	"time"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
)

type fieldCheck struct {
	field  string
	result func() Result
}

// ValidatePaymentMethod runs the validators of the chosen method and returns
// the first failure as a *ValidationError. Card fields are checked in the order
// cardholder, number, expiry, CVV.
func ValidatePaymentMethod(method entity.PaymentMethod, now time.Time) error {
	var checks []fieldCheck

	switch m := method.(type) {
	case entity.UPIPayment:
		checks = []fieldCheck{
			{entity.FieldUPIID, func() Result { return ValidateUPIID(m.UPIID) }},
		}
	case entity.CardPayment:
		checks = []fieldCheck{
			{entity.FieldCardholderName, func() Result { return ValidateCardholderName(m.CardholderName) }},
			{entity.FieldCardNumber, func() Result { return ValidateCardNumber(m.CardNumber) }},
			{entity.FieldExpiryDate, func() Result { return ValidateExpiryDate(m.ExpiryDate, now) }},
			{entity.FieldCVV, func() Result { return ValidateCVV(m.CVV) }},
		}
	case entity.NetBankingPayment:
		checks = []fieldCheck{
			{entity.FieldBank, func() Result { return ValidateBank(m.Bank) }},
		}
	case entity.WalletPayment:
		checks = []fieldCheck{
			{entity.FieldWallet, func() Result { return ValidateWallet(m.Wallet) }},
		}
	default:
		return errs.ErrInvalidPaymentMethod
	}

	for _, check := range checks {
		if err := check.result().Err(check.field); err != nil {
			return err
		}
	}
	return nil
}
