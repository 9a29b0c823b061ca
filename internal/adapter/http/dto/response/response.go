package response

import (
	"time"

	"placement_service/internal/domain/entities"
)

// Envelope is the JSON shape of every non-payapp response.
type Envelope struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ListResponse[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func NewListResponse[T any](items []T, total int, filter entities.ListFilter) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Total: total, Page: filter.Page, PageSize: filter.PageSize}
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

type ConsultationResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Contact       string    `json:"contact"`
	Education     string    `json:"education,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	ClickSource   string    `json:"click_source,omitempty"`
	IsManualEntry bool      `json:"is_manual_entry"`
	Status        string    `json:"status"`
	IsCompleted   bool      `json:"is_completed"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromConsultation(c entities.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:            c.ID,
		Name:          c.Name,
		Contact:       c.Contact,
		Education:     c.Education,
		Reason:        c.Reason,
		ClickSource:   c.ClickSource,
		IsManualEntry: c.IsManualEntry,
		Status:        string(c.Status),
		IsCompleted:   c.IsCompleted,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromConsultations(items []entities.Consultation) []ConsultationResponse {
	out := make([]ConsultationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromConsultation(c))
	}
	return out
}

type PracticeApplicationResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Gender          string    `json:"gender"`
	Contact         string    `json:"contact"`
	BirthDate       string    `json:"birth_date"`
	Address         string    `json:"address"`
	AddressDetail   string    `json:"address_detail,omitempty"`
	Zonecode        string    `json:"zonecode,omitempty"`
	PracticeType    string    `json:"practice_type"`
	DesiredJobField string    `json:"desired_job_field"`
	EmploymentTypes []string  `json:"employment_types"`
	HasResume       bool      `json:"has_resume"`
	Certifications  string    `json:"certifications,omitempty"`
	PaymentAmount   string    `json:"payment_amount"`
	PrivacyAgreed   bool      `json:"privacy_agreed"`
	TermsAgreed     bool      `json:"terms_agreed"`
	ClickSource     string    `json:"click_source,omitempty"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentID       string    `json:"payment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromPracticeApplication(a entities.PracticeApplication) PracticeApplicationResponse {
	types := a.EmploymentTypes
	if types == nil {
		types = []string{}
	}
	return PracticeApplicationResponse{
		ID:              a.ID,
		Name:            a.Name,
		Gender:          a.Gender,
		Contact:         a.Contact,
		BirthDate:       a.BirthDate,
		Address:         a.Address,
		AddressDetail:   a.AddressDetail,
		Zonecode:        a.Zonecode,
		PracticeType:    a.PracticeType,
		DesiredJobField: a.DesiredJobField,
		EmploymentTypes: types,
		HasResume:       a.HasResume,
		Certifications:  a.Certifications,
		PaymentAmount:   a.PaymentAmount.String(),
		PrivacyAgreed:   a.PrivacyAgreed,
		TermsAgreed:     a.TermsAgreed,
		ClickSource:     a.ClickSource,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		PaymentID:       a.PaymentID,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromPracticeApplications(items []entities.PracticeApplication) []PracticeApplicationResponse {
	out := make([]PracticeApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromPracticeApplication(a))
	}
	return out
}

// PracticeSubmitResponse is returned by the public submit route. PayURL is empty
// when payapp is not configured.
type PracticeSubmitResponse struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"payment_status"`
	PayURL        string `json:"payurl,omitempty"`
}
