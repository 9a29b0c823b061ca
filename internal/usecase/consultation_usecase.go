package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"
	"placement_service/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidConsultation  = errors.New("name and contact are required")
	ErrConsultationNotFound = errors.New("consultation not found")
)

type IConsultationUseCase interface {
	Create(ctx context.Context, c entities.Consultation) (entities.Consultation, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Consultation, int, error)
	Update(ctx context.Context, id string, patch entities.ConsultationPatch) (entities.Consultation, error)
	Delete(ctx context.Context, ids []string) (int, error)
}

type ConsultationUseCase struct {
	repo   interfaces.IConsultationRepository
	mailer interfaces.IMailer
	now    func() time.Time
}

var _ IConsultationUseCase = (*ConsultationUseCase)(nil)

// NewConsultationUseCase builds the use case. A nil mailer disables email notices.
func NewConsultationUseCase(repo interfaces.IConsultationRepository, mailer interfaces.IMailer) *ConsultationUseCase {
	return &ConsultationUseCase{repo: repo, mailer: mailer, now: time.Now}
}

func (u *ConsultationUseCase) Create(ctx context.Context, c entities.Consultation) (entities.Consultation, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Contact = strings.TrimSpace(c.Contact)
	if c.Name == "" || c.Contact == "" {
		return entities.Consultation{}, ErrInvalidConsultation
	}

	now := u.now().UTC()
	c.ID = uuid.NewString()
	c.Status = entities.ConsultationStatusPending
	c.IsCompleted = false
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Error().Err(err).Msg("[consultation][usecase] create failed")
		return entities.Consultation{}, err
	}
	log.Info().Str("id", created.ID).Str("contact", logger.MaskContact(created.Contact)).Msg("[consultation][usecase] consultation created")

	if u.mailer != nil {
		// Email is a courtesy; the consultation is already stored.
		if err := u.mailer.SendConsultationNotice(ctx, created); err != nil {
			log.Error().Err(err).Str("id", created.ID).Msg("[consultation][usecase] email notice failed")
		} else {
			log.Info().Str("id", created.ID).Msg("[consultation][usecase] email notice sent")
		}
	}
	return created, nil
}

func (u *ConsultationUseCase) List(ctx context.Context, filter entities.ListFilter) ([]entities.Consultation, int, error) {
	return u.repo.List(ctx, filter.Normalize())
}

func (u *ConsultationUseCase) Update(ctx context.Context, id string, patch entities.ConsultationPatch) (entities.Consultation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Consultation{}, ErrInvalidID
	}
	if patch.IsEmpty() {
		return entities.Consultation{}, ErrEmptyPatch
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Consultation{}, ErrInvalidStatus
	}

	updated, err := u.repo.Update(ctx, id, patch.Normalize())
	if err != nil {
		return entities.Consultation{}, err
	}
	if updated.ID == "" {
		return entities.Consultation{}, ErrConsultationNotFound
	}
	return updated, nil
}

func (u *ConsultationUseCase) Delete(ctx context.Context, ids []string) (int, error) {
	clean := cleanIDs(ids)
	if len(clean) == 0 {
		return 0, ErrEmptyIDs
	}
	return u.repo.DeleteByIDs(ctx, clean)
}
