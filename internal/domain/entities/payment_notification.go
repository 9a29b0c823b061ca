package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentNotification is the payload of a "payment completed" operator alert.
type PaymentNotification struct {
	Application   PracticeApplication
	TransactionID string
	Amount        decimal.NullDecimal
	PaymentMethod string
	PaidAt        time.Time
}

// AmountLabel prefers the amount reported by payapp, then the stored amount, then the default fee.
func (n PaymentNotification) AmountLabel() string {
	switch {
	case n.Amount.Valid:
		return FormatWon(n.Amount.Decimal)
	case !n.Application.PaymentAmount.IsZero():
		return FormatWon(n.Application.PaymentAmount)
	default:
		return FormatWon(DefaultPracticePrice)
	}
}
