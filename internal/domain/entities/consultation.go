package entities

import "time"

type ConsultationStatus string

const (
	ConsultationStatusPending    ConsultationStatus = "pending"
	ConsultationStatusInProgress ConsultationStatus = "in_progress"
	ConsultationStatusCompleted  ConsultationStatus = "completed"
)

func (s ConsultationStatus) Valid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusInProgress, ConsultationStatusCompleted:
		return true
	}
	return false
}

// Consultation is a callback request left through the contact form.
type Consultation struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Contact       string             `json:"contact"`
	Education     string             `json:"education,omitempty"`
	Reason        string             `json:"reason,omitempty"`
	ClickSource   string             `json:"click_source,omitempty"`
	IsManualEntry bool               `json:"is_manual_entry"`
	Status        ConsultationStatus `json:"status"`
	IsCompleted   bool               `json:"is_completed"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ConsultationPatch holds an admin update. Nil means unchanged.
type ConsultationPatch struct {
	IsCompleted *bool
	Notes       *string
	Status      *ConsultationStatus
}

// Normalize keeps is_completed in step with status: completed forces true, pending forces false.
func (p ConsultationPatch) Normalize() ConsultationPatch {
	if p.Status == nil {
		return p
	}
	var done bool
	switch *p.Status {
	case ConsultationStatusCompleted:
		done = true
	case ConsultationStatusPending:
		done = false
	default:
		return p
	}
	p.IsCompleted = &done
	return p
}

func (p ConsultationPatch) IsEmpty() bool {
	return p.IsCompleted == nil && p.Notes == nil && p.Status == nil
}
