package dto

import (
	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
)

// PaymentRequest is a JSON payment body for one method
type PaymentRequest interface {
	// Field returns the raw value of a payment form field
	Field(name string) string
}

// UPIPaymentRequest is the body of POST /api/pay/upi
type UPIPaymentRequest struct {
	UPIID string `json:"upi_id" validate:"required"`
}

// CardPaymentRequest is the body of POST /api/pay/card
type CardPaymentRequest struct {
	CardholderName string `json:"cardholder_name" validate:"required"`
	CardNumber     string `json:"card_number" validate:"required"`
	ExpiryDate     string `json:"expiry_date" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
}

// NetBankingPaymentRequest is the body of POST /api/pay/netbanking
type NetBankingPaymentRequest struct {
	Bank string `json:"bank" validate:"required"`
}

// WalletPaymentRequest is the body of POST /api/pay/wallet
type WalletPaymentRequest struct {
	Wallet string `json:"wallet" validate:"required"`
}

func (r *UPIPaymentRequest) Field(name string) string {
	if name == entity.FieldUPIID {
		return r.UPIID
	}
	return ""
}

func (r *CardPaymentRequest) Field(name string) string {
	switch name {
	case entity.FieldCardholderName:
		return r.CardholderName
	case entity.FieldCardNumber:
		return r.CardNumber
	case entity.FieldExpiryDate:
		return r.ExpiryDate
	case entity.FieldCVV:
		return r.CVV
	}
	return ""
}

func (r *NetBankingPaymentRequest) Field(name string) string {
	if name == entity.FieldBank {
		return r.Bank
	}
	return ""
}

func (r *WalletPaymentRequest) Field(name string) string {
	if name == entity.FieldWallet {
		return r.Wallet
	}
	return ""
}

// NewPaymentRequest returns an empty body for a URL method slug together
// with the method name it stands for. ok is false for unknown slugs.
func NewPaymentRequest(slug string) (req PaymentRequest, method entity.PaymentMethodType, ok bool) {
	switch slug {
	case "upi":
		return &UPIPaymentRequest{}, entity.MethodUPI, true
	case "card":
		return &CardPaymentRequest{}, entity.MethodCard, true
	case "netbanking":
		return &NetBankingPaymentRequest{}, entity.MethodNetBanking, true
	case "wallet":
		return &WalletPaymentRequest{}, entity.MethodWallet, true
	}
	return nil, "", false
}

// PaymentResponse is returned when a payment is recorded
type PaymentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}

// PaymentErrorResponse is returned when a payment is rejected
type PaymentErrorResponse struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Error   string       `json:"error"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// HealthResponse reports liveness and the state of backing stores
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
