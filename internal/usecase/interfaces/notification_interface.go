package interfaces

import (
	"context"
	"placement_service/internal/domain/entities"
)

// INotifier posts operator alerts to the team chat.
type INotifier interface {
	NotifyPaymentCompleted(ctx context.Context, n entities.PaymentNotification) error
	NotifyApplicationSubmitted(ctx context.Context, app entities.PracticeApplication) error
}

// INotificationDeduper guards against alerting twice for the same delivery.
// Acquire reports true when the caller owns the key and should notify.
type INotificationDeduper interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// IMailer sends operator email.
type IMailer interface {
	SendConsultationNotice(ctx context.Context, c entities.Consultation) error
}
