package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
)

// PaymentMethodType names a supported payment method
type PaymentMethodType string

// Supported payment methods. Values match the form field sent by the payment page.
const (
	MethodUPI        PaymentMethodType = "UPI"
	MethodCard       PaymentMethodType = "Card"
	MethodNetBanking PaymentMethodType = "Net Banking"
	MethodWallet     PaymentMethodType = "Wallet"
)

// Form field names used by the payment methods
const (
	FieldUPIID          = "upi_id"
	FieldCardholderName = "cardholder_name"
	FieldCardNumber     = "card_number"
	FieldExpiryDate     = "expiry_date"
	FieldCVV            = "cvv"
	FieldBank           = "bank"
	FieldWallet         = "wallet"
)

// PaymentMethod is the closed set of method-specific payment details.
// Only the variants declared in this package implement it.
type PaymentMethod interface {
	Type() PaymentMethodType
	isPaymentMethod()
}

// UPIPayment carries a UPI virtual payment address
type UPIPayment struct {
	UPIID string
}

// CardPayment carries raw card details. They are validated but never stored.
type CardPayment struct {
	CardholderName string
	CardNumber     string
	ExpiryDate     string
	CVV            string
}

// NetBankingPayment carries the selected bank
type NetBankingPayment struct {
	Bank string
}

// WalletPayment carries the selected wallet provider
type WalletPayment struct {
	Wallet string
}

func (UPIPayment) Type() PaymentMethodType        { return MethodUPI }
func (CardPayment) Type() PaymentMethodType       { return MethodCard }
func (NetBankingPayment) Type() PaymentMethodType { return MethodNetBanking }
func (WalletPayment) Type() PaymentMethodType     { return MethodWallet }

func (UPIPayment) isPaymentMethod()        {}
func (CardPayment) isPaymentMethod()       {}
func (NetBankingPayment) isPaymentMethod() {}
func (WalletPayment) isPaymentMethod()     {}

// ParsePaymentMethodType maps a raw method name onto a supported type
func ParsePaymentMethodType(raw string) (PaymentMethodType, error) {
	switch PaymentMethodType(strings.TrimSpace(raw)) {
	case MethodUPI:
		return MethodUPI, nil
	case MethodCard:
		return MethodCard, nil
	case MethodNetBanking:
		return MethodNetBanking, nil
	case MethodWallet:
		return MethodWallet, nil
	default:
		return "", errs.ErrInvalidPaymentMethod
	}
}

// NewPaymentMethod builds the variant for method from the submitted fields.
// Field values are trimmed; missing fields read as empty strings.
func NewPaymentMethod(method string, field func(name string) string) (PaymentMethod, error) {
	methodType, err := ParsePaymentMethodType(method)
	if err != nil {
		return nil, err
	}

	get := func(name string) string {
		return strings.TrimSpace(field(name))
	}

	switch methodType {
	case MethodUPI:
		return UPIPayment{UPIID: get(FieldUPIID)}, nil
	case MethodCard:
		return CardPayment{
			CardholderName: get(FieldCardholderName),
			CardNumber:     get(FieldCardNumber),
			ExpiryDate:     get(FieldExpiryDate),
			CVV:            get(FieldCVV),
		}, nil
	case MethodNetBanking:
		return NetBankingPayment{Bank: get(FieldBank)}, nil
	default:
		return WalletPayment{Wallet: get(FieldWallet)}, nil
	}
}

// NormalizeCardNumber strips the spaces and hyphens users type between digit groups
func NormalizeCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}
