package usecase

import (
	"context"
	"errors"
	"testing"

	"placement_service/internal/domain/entities"
	mock_interfaces "placement_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestConsultationUseCase_Create(t *testing.T) {
	t.Run("name and contact required", func(t *testing.T) {
		uc := NewConsultationUseCase(nil, nil)
		if _, err := uc.Create(context.Background(), entities.Consultation{Name: " ", Contact: "010"}); !errors.Is(err, ErrInvalidConsultation) {
			t.Fatalf("expected ErrInvalidConsultation, got %v", err)
		}
	})

	t.Run("mail failure does not fail the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConsultationRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewConsultationUseCase(repo, mailer)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Consultation) (entities.Consultation, error) {
				if c.ID == "" || c.Status != entities.ConsultationStatusPending || c.IsCompleted || c.Name != "홍길동" {
					t.Fatalf("unexpected consultation: %+v", c)
				}
				return c, nil
			},
		)
		mailer.EXPECT().SendConsultationNotice(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		got, err := uc.Create(context.Background(), entities.Consultation{Name: " 홍길동 ", Contact: "010-1111-2222"})
		if err != nil || got.ID == "" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConsultationRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewConsultationUseCase(repo, mailer)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Consultation{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), entities.Consultation{Name: "a", Contact: "b"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestConsultationUseCase_Update(t *testing.T) {
	completed := entities.ConsultationStatusCompleted

	t.Run("status completed forces is_completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConsultationRepository(ctrl)
		uc := NewConsultationUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.ConsultationPatch) (entities.Consultation, error) {
				if p.IsCompleted == nil || !*p.IsCompleted {
					t.Fatalf("expected is_completed=true, got %+v", p)
				}
				return entities.Consultation{ID: "c1", Status: completed, IsCompleted: true}, nil
			},
		)

		got, err := uc.Update(context.Background(), "c1", entities.ConsultationPatch{Status: &completed})
		if err != nil || !got.IsCompleted {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConsultationRepository(ctrl)
		uc := NewConsultationUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).Return(entities.Consultation{}, nil)

		if _, err := uc.Update(context.Background(), "c1", entities.ConsultationPatch{Status: &completed}); !errors.Is(err, ErrConsultationNotFound) {
			t.Fatalf("expected ErrConsultationNotFound, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewConsultationUseCase(nil, nil)
		bogus := entities.ConsultationStatus("closed")
		if _, err := uc.Update(context.Background(), "", entities.ConsultationPatch{Status: &completed}); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "c1", entities.ConsultationPatch{}); !errors.Is(err, ErrEmptyPatch) {
			t.Fatalf("expected ErrEmptyPatch, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "c1", entities.ConsultationPatch{Status: &bogus}); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestConsultationUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIConsultationRepository(ctrl)
	uc := NewConsultationUseCase(repo, nil)

	if _, err := uc.Delete(context.Background(), nil); !errors.Is(err, ErrEmptyIDs) {
		t.Fatalf("expected ErrEmptyIDs, got %v", err)
	}
	repo.EXPECT().DeleteByIDs(gomock.Any(), []string{"c1"}).Return(1, nil)
	if n, err := uc.Delete(context.Background(), []string{"c1"}); err != nil || n != 1 {
		t.Fatalf("unexpected delete: %d %v", n, err)
	}
}
