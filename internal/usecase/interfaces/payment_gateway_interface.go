package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentRequest is what the landing page needs payapp to bill.
type PaymentRequest struct {
	ApplicationID string
	GoodsName     string
	Price         decimal.Decimal
	BuyerName     string
	RecvPhone     string
	FeedbackURL   string
	ReturnURL     string
}

type PaymentRequestResult struct {
	PayURL string
	MulNo  string
}

// IPaymentGateway abstracts the payapp payrequest API.
type IPaymentGateway interface {
	RequestPayment(ctx context.Context, req PaymentRequest) (PaymentRequestResult, error)
}
