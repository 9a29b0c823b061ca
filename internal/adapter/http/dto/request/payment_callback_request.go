package request

import (
	"net/url"
	"strings"

	"placement_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ParsePaymentCallback decodes payapp's flat key/value payload. Unparseable
// prices are dropped rather than rejected since the amount is informational.
func ParsePaymentCallback(values url.Values) entities.PaymentCallback {
	cb := entities.PaymentCallback{
		State:         get(values, "state"),
		TransactionID: get(values, "mul_no"),
		CorrelationID: get(values, "var1"),
		PaymentMethod: get(values, "paymethod"),
		ErrorMessage:  get(values, "errorMessage"),
		TradeID:       get(values, "tradeid"),
	}
	if cb.ErrorMessage == "" {
		cb.ErrorMessage = get(values, "message")
	}
	if raw := strings.ReplaceAll(get(values, "price"), ",", ""); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			cb.Amount = decimal.NewNullDecimal(d)
		}
	}
	return cb
}

func get(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
