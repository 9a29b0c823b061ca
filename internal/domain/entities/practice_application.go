package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrPaymentAlreadyPaid is returned by stores when a failure write hits a row that is already paid.
var ErrPaymentAlreadyPaid = errors.New("payment already paid")

// PaymentStatus tracks the payapp side of an application.
//
// Transitions:
//   - not_requested -> requested (payrequest accepted)
//   - requested|failed -> paid | failed (callbacks)
//   - paid is terminal for callbacks
type PaymentStatus string

const (
	PaymentStatusNotRequested PaymentStatus = "not_requested"
	PaymentStatusRequested    PaymentStatus = "requested"
	PaymentStatusPaid         PaymentStatus = "paid"
	PaymentStatusFailed       PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusNotRequested, PaymentStatusRequested, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// ApplicationStatus is the operator-facing state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusConfirmed ApplicationStatus = "confirmed"
	ApplicationStatusCancelled ApplicationStatus = "cancelled"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusConfirmed, ApplicationStatusCancelled:
		return true
	}
	return false
}

// PracticeApplication is a practice placement request submitted from the landing page.
//
// Storage model:
//   - PK: id (uuid, also sent to payapp as var1)
//   - payment_id holds payapp's mul_no and is written once
type PracticeApplication struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Gender          string            `json:"gender"`
	Contact         string            `json:"contact"`
	BirthDate       string            `json:"birth_date"`
	Address         string            `json:"address"`
	AddressDetail   string            `json:"address_detail,omitempty"`
	Zonecode        string            `json:"zonecode,omitempty"`
	PracticeType    string            `json:"practice_type"`
	DesiredJobField string            `json:"desired_job_field"`
	EmploymentTypes []string          `json:"employment_types"`
	HasResume       bool              `json:"has_resume"`
	Certifications  string            `json:"certifications,omitempty"`
	PaymentAmount   decimal.Decimal   `json:"payment_amount"`
	PrivacyAgreed   bool              `json:"privacy_agreed"`
	TermsAgreed     bool              `json:"terms_agreed"`
	ClickSource     string            `json:"click_source,omitempty"`
	Status          ApplicationStatus `json:"status"`
	PaymentStatus   PaymentStatus     `json:"payment_status"`
	PaymentID       string            `json:"payment_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a PracticeApplication) IsPaid() bool {
	return a.PaymentStatus == PaymentStatusPaid
}

// FullAddress joins the street address and the optional detail line.
func (a PracticeApplication) FullAddress() string {
	if a.AddressDetail == "" {
		return a.Address
	}
	return a.Address + " " + a.AddressDetail
}

// PracticeApplicationPatch carries the admin-editable fields. Nil means unchanged.
type PracticeApplicationPatch struct {
	Status          *ApplicationStatus
	PaymentStatus   *PaymentStatus
	Name            *string
	Contact         *string
	Address         *string
	AddressDetail   *string
	PracticeType    *string
	DesiredJobField *string
	Certifications  *string
}

func (p PracticeApplicationPatch) IsEmpty() bool {
	return p.Status == nil && p.PaymentStatus == nil && p.Name == nil && p.Contact == nil &&
		p.Address == nil && p.AddressDetail == nil && p.PracticeType == nil &&
		p.DesiredJobField == nil && p.Certifications == nil
}
