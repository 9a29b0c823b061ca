package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"
	"placement_service/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidID                   = errors.New("invalid id")
	ErrPracticeApplicationNotFound = errors.New("practice application not found")
	ErrEmptyPatch                  = errors.New("no fields to update")
	ErrInvalidStatus               = errors.New("invalid status")
	ErrEmptyIDs                    = errors.New("ids must not be empty")
	ErrPaymentRequestFailed        = errors.New("payment request failed")
)

// PaymentSettings are the payapp request parameters that do not depend on the applicant.
type PaymentSettings struct {
	GoodsName   string
	Price       decimal.Decimal
	FeedbackURL string
	ReturnURL   string
}

type SubmitResult struct {
	Application entities.PracticeApplication
	// PayURL is empty when payment requests are not configured.
	PayURL string
}

// IPracticeApplicationUseCase covers submission and the admin table.
type IPracticeApplicationUseCase interface {
	Submit(ctx context.Context, a entities.PracticeApplication) (SubmitResult, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.PracticeApplication, int, error)
	Update(ctx context.Context, id string, patch entities.PracticeApplicationPatch) (entities.PracticeApplication, error)
	Delete(ctx context.Context, ids []string) (int, error)
}

type PracticeApplicationUseCase struct {
	repo     interfaces.IPracticeApplicationRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier
	settings PaymentSettings
	now      func() time.Time
	// notifyTimeout bounds the submission alert.
	notifyTimeout time.Duration
}

var _ IPracticeApplicationUseCase = (*PracticeApplicationUseCase)(nil)

// NewPracticeApplicationUseCase builds the use case. A nil gateway disables payment
// requests and a nil notifier disables submission alerts.
func NewPracticeApplicationUseCase(repo interfaces.IPracticeApplicationRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier, settings PaymentSettings) *PracticeApplicationUseCase {
	if settings.Price.IsZero() {
		settings.Price = entities.DefaultPracticePrice
	}
	return &PracticeApplicationUseCase{
		repo:          repo,
		gateway:       gateway,
		notifier:      notifier,
		settings:      settings,
		now:           time.Now,
		notifyTimeout: 5 * time.Second,
	}
}

func (u *PracticeApplicationUseCase) Submit(ctx context.Context, a entities.PracticeApplication) (SubmitResult, error) {
	now := u.now().UTC()
	a.ID = uuid.NewString()
	a.Status = entities.ApplicationStatusPending
	a.PaymentStatus = entities.PaymentStatusNotRequested
	a.PaymentID = ""
	a.PaymentAmount = u.settings.Price
	a.CreatedAt = now
	a.UpdatedAt = now

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Error().Err(err).Msg("[practice][usecase] create failed")
		return SubmitResult{}, err
	}
	log.Info().
		Str("id", created.ID).
		Str("contact", logger.MaskContact(created.Contact)).
		Str("practice_type", created.PracticeType).
		Msg("[practice][usecase] application created")

	u.notifySubmitted(ctx, created)

	if u.gateway == nil {
		log.Info().Str("id", created.ID).Msg("[practice][usecase] payment gateway not configured, skipping payrequest")
		return SubmitResult{Application: created}, nil
	}

	payment, err := u.gateway.RequestPayment(ctx, interfaces.PaymentRequest{
		ApplicationID: created.ID,
		GoodsName:     u.settings.GoodsName,
		Price:         u.settings.Price,
		BuyerName:     created.Name,
		RecvPhone:     digitsOnly(created.Contact),
		FeedbackURL:   u.settings.FeedbackURL,
		ReturnURL:     u.settings.ReturnURL,
	})
	if err != nil {
		log.Error().Err(err).Str("id", created.ID).Msg("[practice][usecase] payrequest failed")
		return SubmitResult{Application: created}, fmt.Errorf("%w: %w", ErrPaymentRequestFailed, err)
	}

	requested, err := u.repo.MarkRequested(ctx, created.ID)
	if err != nil {
		// The payurl is still valid; the feedback callback settles the status.
		log.Error().Err(err).Str("id", created.ID).Msg("[practice][usecase] mark requested failed")
	} else if requested.ID != "" {
		created = requested
	}
	log.Info().Str("id", created.ID).Str("mul_no", payment.MulNo).Msg("[practice][usecase] payrequest accepted")

	return SubmitResult{Application: created, PayURL: payment.PayURL}, nil
}

// notifySubmitted alerts operators about every new application, paid or not.
// Failures are logged and never reach the applicant.
func (u *PracticeApplicationUseCase) notifySubmitted(ctx context.Context, app entities.PracticeApplication) {
	if u.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("id", app.ID).Msg("[practice][usecase] submission alert panic")
		}
	}()

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.notifyTimeout)
	defer cancel()
	if err := u.notifier.NotifyApplicationSubmitted(nctx, app); err != nil {
		log.Warn().Err(err).Str("id", app.ID).Msg("[practice][usecase] submission alert failed")
	}
}

func (u *PracticeApplicationUseCase) List(ctx context.Context, filter entities.ListFilter) ([]entities.PracticeApplication, int, error) {
	return u.repo.List(ctx, filter.Normalize())
}

func (u *PracticeApplicationUseCase) Update(ctx context.Context, id string, patch entities.PracticeApplicationPatch) (entities.PracticeApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PracticeApplication{}, ErrInvalidID
	}
	if patch.IsEmpty() {
		return entities.PracticeApplication{}, ErrEmptyPatch
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.PracticeApplication{}, ErrInvalidStatus
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.Valid() {
		return entities.PracticeApplication{}, ErrInvalidStatus
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.PracticeApplication{}, err
	}
	if updated.ID == "" {
		return entities.PracticeApplication{}, ErrPracticeApplicationNotFound
	}
	log.Info().Str("id", id).Str("status", string(updated.Status)).Str("payment_status", string(updated.PaymentStatus)).Msg("[practice][usecase] application updated")
	return updated, nil
}

func (u *PracticeApplicationUseCase) Delete(ctx context.Context, ids []string) (int, error) {
	clean := cleanIDs(ids)
	if len(clean) == 0 {
		return 0, ErrEmptyIDs
	}
	n, err := u.repo.DeleteByIDs(ctx, clean)
	if err != nil {
		return 0, err
	}
	log.Info().Int("requested", len(clean)).Int("deleted", n).Msg("[practice][usecase] applications deleted")
	return n, nil
}

func cleanIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
