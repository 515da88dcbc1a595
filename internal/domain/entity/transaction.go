package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the layout receipts display the creation time in
const TimestampLayout = "2006-01-02 15:04:05"

// TransactionRecord is the immutable receipt of a simulated payment.
// It never holds a full card number or CVV.
type TransactionRecord struct {
	TransactionID string            // TXN + 14-digit timestamp + 8 uppercase hex characters
	Method        PaymentMethodType // Method the user paid with
	Amount        decimal.Decimal   // Amount in rupees
	Username      string            // Payer username at the time of payment
	FullName      string            // Payer full name at the time of payment
	CreatedAt     time.Time         // When the payment was recorded

	// Method-specific, non-sensitive details. Only the fields of Method are set.
	UPIID      string
	CardLast4  string
	Cardholder string
	Bank       string
	Wallet     string
}

// TransactionResponse represents the API view of a receipt
type TransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Method        string `json:"method"`
	Amount        string `json:"amount"`
	User          string `json:"user"`
	FullName      string `json:"full_name"`
	Timestamp     string `json:"timestamp"`
	UPIID         string `json:"upi_id,omitempty"`
	CardLast4     string `json:"card_last_4,omitempty"`
	Cardholder    string `json:"cardholder,omitempty"`
	Bank          string `json:"bank,omitempty"`
	Wallet        string `json:"wallet,omitempty"`
}

// NewTransactionRecord builds the receipt for a validated payment.
// Sensitive card fields are reduced to the last four digits and the cardholder name.
func NewTransactionRecord(
	transactionID string,
	identity Identity,
	amount decimal.Decimal,
	method PaymentMethod,
	createdAt time.Time,
) *TransactionRecord {
	record := &TransactionRecord{
		TransactionID: transactionID,
		Method:        method.Type(),
		Amount:        amount,
		Username:      identity.Username,
		FullName:      identity.FullName,
		CreatedAt:     createdAt,
	}

	switch m := method.(type) {
	case UPIPayment:
		record.UPIID = m.UPIID
	case CardPayment:
		record.CardLast4 = lastFour(NormalizeCardNumber(m.CardNumber))
		record.Cardholder = m.CardholderName
	case NetBankingPayment:
		record.Bank = m.Bank
	case WalletPayment:
		record.Wallet = m.Wallet
	}

	return record
}

// Timestamp returns the creation time in receipt format
func (t *TransactionRecord) Timestamp() string {
	return t.CreatedAt.Format(TimestampLayout)
}

// FormattedAmount returns the amount with exactly 2 decimal places
func (t *TransactionRecord) FormattedAmount() string {
	return FormatAmount(t.Amount)
}

// OwnedBy reports whether the record was created by username
func (t *TransactionRecord) OwnedBy(username string) bool {
	return username != "" && t.Username == username
}

// Clone returns an independent copy of the record
func (t *TransactionRecord) Clone() *TransactionRecord {
	c := *t
	return &c
}

// ToResponse converts the record to a response object for API
func (t *TransactionRecord) ToResponse() TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Method:        string(t.Method),
		Amount:        t.FormattedAmount(),
		User:          t.Username,
		FullName:      t.FullName,
		Timestamp:     t.Timestamp(),
		UPIID:         t.UPIID,
		CardLast4:     t.CardLast4,
		Cardholder:    t.Cardholder,
		Bank:          t.Bank,
		Wallet:        t.Wallet,
	}
}

func lastFour(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
