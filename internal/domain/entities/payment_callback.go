package entities

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMissingCorrelationID = errors.New("missing var1 correlation id")

// CallbackChannel identifies which payapp receiver delivered a callback.
type CallbackChannel string

const (
	// CallbackChannelFeedback is payapp's server-to-server notification. It is authoritative.
	CallbackChannelFeedback CallbackChannel = "feedback"
	// CallbackChannelResult is the browser return after checkout.
	CallbackChannelResult CallbackChannel = "result"
)

type CallbackOutcome string

const (
	CallbackOutcomeSuccess       CallbackOutcome = "success"
	CallbackOutcomeFailure       CallbackOutcome = "failure"
	CallbackOutcomeIndeterminate CallbackOutcome = "indeterminate"
)

// stateOutcomes maps payapp's state vocabulary onto internal outcomes.
// Keys are compared lower-cased and trimmed.
var stateOutcomes = map[string]CallbackOutcome{
	"1":       CallbackOutcomeSuccess,
	"success": CallbackOutcomeSuccess,
	"ok":      CallbackOutcomeSuccess,
	"true":    CallbackOutcomeSuccess,
	"0":       CallbackOutcomeFailure,
	"fail":    CallbackOutcomeFailure,
	"failed":  CallbackOutcomeFailure,
	"false":   CallbackOutcomeFailure,
}

// PaymentCallback is the typed form of a payapp callback payload.
type PaymentCallback struct {
	State         string
	TransactionID string
	CorrelationID string
	Amount        decimal.NullDecimal
	PaymentMethod string
	ErrorMessage  string
	TradeID       string
}

func (c PaymentCallback) HasState() bool {
	return strings.TrimSpace(c.State) != ""
}

// MapState applies the state table alone. An absent or unknown state is indeterminate.
func MapState(state string) CallbackOutcome {
	if o, ok := stateOutcomes[strings.ToLower(strings.TrimSpace(state))]; ok {
		return o
	}
	return CallbackOutcomeIndeterminate
}

// Outcome resolves the callback for a channel.
//
// Fallback rules:
//   - feedback: absent state with a mul_no is success; anything still indeterminate is failure
//   - result: no fallback, indeterminate stays indeterminate
func (c PaymentCallback) Outcome(channel CallbackChannel) CallbackOutcome {
	outcome := MapState(c.State)
	if channel != CallbackChannelFeedback || outcome != CallbackOutcomeIndeterminate {
		return outcome
	}
	if !c.HasState() && strings.TrimSpace(c.TransactionID) != "" {
		return CallbackOutcomeSuccess
	}
	return CallbackOutcomeFailure
}

var payMethodLabels = map[string]string{
	"card":      "신용/체크카드",
	"kakaopay":  "카카오페이",
	"naverpay":  "네이버페이",
	"payco":     "페이코",
	"applepay":  "애플페이",
	"myaccount": "내통장결제",
}

// PayMethodLabel returns the display name for a payapp paymethod code.
// Unknown codes are returned as-is; an empty code is 미확인.
func PayMethodLabel(method string) string {
	method = strings.TrimSpace(method)
	if method == "" {
		return "미확인"
	}
	if label, ok := payMethodLabels[strings.ToLower(method)]; ok {
		return label
	}
	return method
}
