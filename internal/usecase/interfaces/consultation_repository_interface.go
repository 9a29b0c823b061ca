package interfaces

import (
	"context"
	"placement_service/internal/domain/entities"
)

// IConsultationRepository abstracts persistence for Consultation.

type IConsultationRepository interface {
	Create(ctx context.Context, c entities.Consultation) (entities.Consultation, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Consultation, int, error)
	Update(ctx context.Context, id string, patch entities.ConsultationPatch) (entities.Consultation, error)
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}
