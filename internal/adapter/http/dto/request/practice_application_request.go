package request

import (
	"regexp"
	"strings"

	"placement_service/internal/domain/entities"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	mobilePattern    = regexp.MustCompile(`^01[016789]\d{7,8}$`)
	birthDatePattern = regexp.MustCompile(`^\d{6}$`)
)

// PracticeApplicationCreateRequest is the payload collected across the landing page steps.
type PracticeApplicationCreateRequest struct {
	Name            string   `json:"name"`
	Gender          string   `json:"gender"`
	Contact         string   `json:"contact"`
	BirthDate       string   `json:"birth_date"`
	Address         string   `json:"address"`
	AddressDetail   string   `json:"address_detail,omitempty"`
	Zonecode        string   `json:"zonecode,omitempty"`
	PracticeType    string   `json:"practice_type"`
	DesiredJobField string   `json:"desired_job_field"`
	EmploymentTypes []string `json:"employment_types"`
	HasResume       bool     `json:"has_resume"`
	Certifications  string   `json:"certifications,omitempty"`
	PrivacyAgreed   bool     `json:"privacy_agreed"`
	TermsAgreed     bool     `json:"terms_agreed"`
	ClickSource     string   `json:"click_source,omitempty"`
}

func (r PracticeApplicationCreateRequest) Validate() error {
	contact := strings.ReplaceAll(strings.TrimSpace(r.Contact), "-", "")
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.By(notBlank("name is required")),
			validation.RuneLength(1, 50),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("gender is required"),
			validation.In("남", "여").Error("gender must be 남 or 여"),
		),
		validation.Field(&r.Contact,
			validation.Required.Error("contact is required"),
			validation.By(func(interface{}) error {
				if !mobilePattern.MatchString(contact) {
					return validation.NewError("validation_contact", "contact must be a mobile number starting with 010, 011, 016, 017, 018 or 019")
				}
				return nil
			}),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birth_date is required"),
			validation.Match(birthDatePattern).Error("birth_date must be 6 digits (YYMMDD)"),
		),
		validation.Field(&r.Address, validation.By(notBlank("address is required"))),
		validation.Field(&r.PracticeType, validation.By(notBlank("practice_type is required"))),
		validation.Field(&r.DesiredJobField, validation.By(notBlank("desired_job_field is required"))),
		validation.Field(&r.EmploymentTypes,
			validation.Required.Error("select at least one employment type"),
			validation.Each(validation.By(notBlank("employment type must not be blank"))),
		),
		validation.Field(&r.PrivacyAgreed, validation.Required.Error("privacy agreement is required")),
		validation.Field(&r.TermsAgreed, validation.Required.Error("terms agreement is required")),
	)
}

func (r PracticeApplicationCreateRequest) ToEntity() entities.PracticeApplication {
	types := make([]string, 0, len(r.EmploymentTypes))
	for _, t := range r.EmploymentTypes {
		types = append(types, strings.TrimSpace(t))
	}
	return entities.PracticeApplication{
		Name:            strings.TrimSpace(r.Name),
		Gender:          r.Gender,
		Contact:         strings.ReplaceAll(strings.TrimSpace(r.Contact), "-", ""),
		BirthDate:       r.BirthDate,
		Address:         strings.TrimSpace(r.Address),
		AddressDetail:   strings.TrimSpace(r.AddressDetail),
		Zonecode:        strings.TrimSpace(r.Zonecode),
		PracticeType:    strings.TrimSpace(r.PracticeType),
		DesiredJobField: strings.TrimSpace(r.DesiredJobField),
		EmploymentTypes: types,
		HasResume:       r.HasResume,
		Certifications:  strings.TrimSpace(r.Certifications),
		PrivacyAgreed:   r.PrivacyAgreed,
		TermsAgreed:     r.TermsAgreed,
		ClickSource:     strings.TrimSpace(r.ClickSource),
	}
}

// PracticeApplicationUpdateRequest carries admin edits; omitted fields are left alone.
type PracticeApplicationUpdateRequest struct {
	ID              string  `json:"id"`
	Status          *string `json:"status,omitempty"`
	PaymentStatus   *string `json:"payment_status,omitempty"`
	Name            *string `json:"name,omitempty"`
	Contact         *string `json:"contact,omitempty"`
	Address         *string `json:"address,omitempty"`
	AddressDetail   *string `json:"address_detail,omitempty"`
	PracticeType    *string `json:"practice_type,omitempty"`
	DesiredJobField *string `json:"desired_job_field,omitempty"`
	Certifications  *string `json:"certifications,omitempty"`
}

func (r PracticeApplicationUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.By(notBlank("id is required"))),
		validation.Field(&r.Status, validation.When(r.Status != nil,
			validation.In(
				string(entities.ApplicationStatusPending),
				string(entities.ApplicationStatusConfirmed),
				string(entities.ApplicationStatusCancelled),
			).Error("status must be one of pending, confirmed, cancelled"),
		)),
		validation.Field(&r.PaymentStatus, validation.When(r.PaymentStatus != nil,
			validation.In(
				string(entities.PaymentStatusNotRequested),
				string(entities.PaymentStatusRequested),
				string(entities.PaymentStatusPaid),
				string(entities.PaymentStatusFailed),
			).Error("payment_status must be one of not_requested, requested, paid, failed"),
		)),
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.By(notBlank("name must not be blank")))),
		validation.Field(&r.Contact, validation.When(r.Contact != nil, validation.By(notBlank("contact must not be blank")))),
	)
}

func (r PracticeApplicationUpdateRequest) ToPatch() entities.PracticeApplicationPatch {
	patch := entities.PracticeApplicationPatch{
		Name:            r.Name,
		Contact:         r.Contact,
		Address:         r.Address,
		AddressDetail:   r.AddressDetail,
		PracticeType:    r.PracticeType,
		DesiredJobField: r.DesiredJobField,
		Certifications:  r.Certifications,
	}
	if r.Status != nil {
		s := entities.ApplicationStatus(*r.Status)
		patch.Status = &s
	}
	if r.PaymentStatus != nil {
		s := entities.PaymentStatus(*r.PaymentStatus)
		patch.PaymentStatus = &s
	}
	return patch
}
