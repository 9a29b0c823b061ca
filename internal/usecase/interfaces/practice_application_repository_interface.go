package interfaces

import (
	"context"
	"placement_service/internal/domain/entities"
)

// IPracticeApplicationRepository abstracts persistence for PracticeApplication.
//
// Lookups and updates on a missing id return an empty entity and a nil error.
// Payment transitions are single conditional writes:
//   - MarkPaid sets paid/confirmed and fills payment_id only when it is still empty
//   - MarkFailed refuses rows already paid with entities.ErrPaymentAlreadyPaid
type IPracticeApplicationRepository interface {
	Create(ctx context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error)
	GetByID(ctx context.Context, id string) (entities.PracticeApplication, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.PracticeApplication, int, error)
	MarkRequested(ctx context.Context, id string) (entities.PracticeApplication, error)
	MarkPaid(ctx context.Context, id, paymentID string) (entities.PracticeApplication, error)
	MarkFailed(ctx context.Context, id string) (entities.PracticeApplication, error)
	Update(ctx context.Context, id string, patch entities.PracticeApplicationPatch) (entities.PracticeApplication, error)
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}
