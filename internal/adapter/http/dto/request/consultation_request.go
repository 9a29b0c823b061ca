package request

import (
	"strings"

	"placement_service/internal/domain/entities"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ConsultationCreateRequest struct {
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	Education     string `json:"education,omitempty"`
	Reason        string `json:"reason,omitempty"`
	ClickSource   string `json:"click_source,omitempty"`
	IsManualEntry bool   `json:"is_manual_entry,omitempty"`
}

func (r ConsultationCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.By(notBlank("name is required")),
			validation.RuneLength(1, 100),
		),
		validation.Field(&r.Contact,
			validation.By(notBlank("contact is required")),
			validation.RuneLength(1, 50),
		),
		validation.Field(&r.Reason, validation.RuneLength(0, 2000)),
	)
}

func (r ConsultationCreateRequest) ToEntity() entities.Consultation {
	return entities.Consultation{
		Name:          strings.TrimSpace(r.Name),
		Contact:       strings.TrimSpace(r.Contact),
		Education:     strings.TrimSpace(r.Education),
		Reason:        strings.TrimSpace(r.Reason),
		ClickSource:   strings.TrimSpace(r.ClickSource),
		IsManualEntry: r.IsManualEntry,
	}
}

type ConsultationUpdateRequest struct {
	ID          string  `json:"id"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r ConsultationUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.By(notBlank("id is required"))),
		validation.Field(&r.Status, validation.When(r.Status != nil,
			validation.In(
				string(entities.ConsultationStatusPending),
				string(entities.ConsultationStatusInProgress),
				string(entities.ConsultationStatusCompleted),
			).Error("status must be one of pending, in_progress, completed"),
		)),
	)
}

func (r ConsultationUpdateRequest) ToPatch() entities.ConsultationPatch {
	patch := entities.ConsultationPatch{IsCompleted: r.IsCompleted, Notes: r.Notes}
	if r.Status != nil {
		s := entities.ConsultationStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

// DeleteRequest is shared by the bulk delete routes.
type DeleteRequest struct {
	IDs []string `json:"ids"`
}

func (r DeleteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDs,
			validation.Required.Error("ids must not be empty"),
			validation.Each(validation.By(notBlank("id must not be blank"))),
		),
	)
}

// ListQuery binds the admin listing query string.
type ListQuery struct {
	Status   string `form:"status"`
	Query    string `form:"q"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (q ListQuery) ToFilter() entities.ListFilter {
	return entities.ListFilter{Status: q.Status, Query: q.Query, Page: q.Page, PageSize: q.PageSize}.Normalize()
}

// ToExportFilter keeps the filters but drops pagination.
func (q ListQuery) ToExportFilter() entities.ListFilter {
	return entities.ListFilter{Status: q.Status, Query: q.Query, All: true}.Normalize()
}

func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		v, _ := validation.Indirect(value)
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}
