package usecase

import (
	"context"
	"errors"
	"testing"

	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"
	mock_interfaces "placement_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testSettings() PaymentSettings {
	return PaymentSettings{
		GoodsName:   "실습 섭외 신청",
		Price:       decimal.NewFromInt(110000),
		FeedbackURL: "https://api.example.com/v1/payapp/feedback",
		ReturnURL:   "https://api.example.com/v1/payapp/result",
	}
}

func TestPracticeApplicationUseCase_Submit(t *testing.T) {
	input := entities.PracticeApplication{
		Name:         "김민수",
		Contact:      "010-1234-5678",
		PracticeType: "사회복지사 실습 160시간",
		Status:       entities.ApplicationStatusConfirmed,
		PaymentID:    "forged",
	}

	t.Run("create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		uc := NewPracticeApplicationUseCase(repo, nil, nil, testSettings())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PracticeApplication{}, errors.New("db"))

		if _, err := uc.Submit(context.Background(), input); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("without gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		uc := NewPracticeApplicationUseCase(repo, nil, nil, testSettings())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PracticeApplication{})).DoAndReturn(
			func(_ context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
				if a.ID == "" || a.Status != entities.ApplicationStatusPending || a.PaymentStatus != entities.PaymentStatusNotRequested {
					t.Fatalf("unexpected application: %+v", a)
				}
				if a.PaymentID != "" || !a.PaymentAmount.Equal(decimal.NewFromInt(110000)) {
					t.Fatalf("unexpected payment fields: %+v", a)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return a, nil
			},
		)

		res, err := uc.Submit(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PayURL != "" || res.Application.ID == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("payrequest accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPracticeApplicationUseCase(repo, gateway, nil, testSettings())

		var createdID string
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
				createdID = a.ID
				return a, nil
			},
		)
		gateway.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.PaymentRequest) (interfaces.PaymentRequestResult, error) {
				if req.ApplicationID != createdID || req.RecvPhone != "01012345678" || req.BuyerName != "김민수" {
					t.Fatalf("unexpected request: %+v", req)
				}
				if req.FeedbackURL != testSettings().FeedbackURL || req.ReturnURL != testSettings().ReturnURL {
					t.Fatalf("unexpected urls: %+v", req)
				}
				return interfaces.PaymentRequestResult{PayURL: "https://payapp.kr/pay/1", MulNo: "TX1"}, nil
			},
		)
		repo.EXPECT().MarkRequested(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.PracticeApplication, error) {
				return entities.PracticeApplication{ID: id, PaymentStatus: entities.PaymentStatusRequested}, nil
			},
		)

		res, err := uc.Submit(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PayURL != "https://payapp.kr/pay/1" || res.Application.PaymentStatus != entities.PaymentStatusRequested {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("payrequest rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPracticeApplicationUseCase(repo, gateway, nil, testSettings())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
				return a, nil
			},
		)
		gateway.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).Return(interfaces.PaymentRequestResult{}, errors.New("state=0"))

		res, err := uc.Submit(context.Background(), input)
		if !errors.Is(err, ErrPaymentRequestFailed) {
			t.Fatalf("expected ErrPaymentRequestFailed, got %v", err)
		}
		if res.Application.ID == "" {
			t.Fatalf("expected stored application in result")
		}
	})

	t.Run("mark requested failure keeps payurl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPracticeApplicationUseCase(repo, gateway, nil, testSettings())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
				return a, nil
			},
		)
		gateway.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).Return(interfaces.PaymentRequestResult{PayURL: "u"}, nil)
		repo.EXPECT().MarkRequested(gomock.Any(), gomock.Any()).Return(entities.PracticeApplication{}, errors.New("db"))

		res, err := uc.Submit(context.Background(), input)
		if err != nil || res.PayURL != "u" || res.Application.PaymentStatus != entities.PaymentStatusNotRequested {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("submission alert is sent for the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewPracticeApplicationUseCase(repo, nil, notifier, testSettings())

		var createdID string
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
					createdID = a.ID
					return a, nil
				},
			),
			notifier.EXPECT().NotifyApplicationSubmitted(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, app entities.PracticeApplication) error {
					if app.ID != createdID || app.Name != "김민수" {
						t.Fatalf("unexpected alert payload: %+v", app)
					}
					return nil
				},
			),
		)

		if _, err := uc.Submit(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("submission alert failure does not fail the submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewPracticeApplicationUseCase(repo, gateway, notifier, testSettings())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
				return a, nil
			},
		)
		notifier.EXPECT().NotifyApplicationSubmitted(gomock.Any(), gomock.Any()).Return(errors.New("slack down"))
		gateway.EXPECT().RequestPayment(gomock.Any(), gomock.Any()).Return(interfaces.PaymentRequestResult{PayURL: "u"}, nil)
		repo.EXPECT().MarkRequested(gomock.Any(), gomock.Any()).Return(entities.PracticeApplication{}, nil)

		res, err := uc.Submit(context.Background(), input)
		if err != nil || res.PayURL != "u" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("no alert when the row was not stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewPracticeApplicationUseCase(repo, nil, notifier, testSettings())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PracticeApplication{}, errors.New("db"))

		if _, err := uc.Submit(context.Background(), input); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPracticeApplicationUseCase_Update(t *testing.T) {
	confirmed := entities.ApplicationStatusConfirmed
	bogus := entities.ApplicationStatus("done")

	t.Run("validation", func(t *testing.T) {
		uc := NewPracticeApplicationUseCase(nil, nil, nil, testSettings())
		if _, err := uc.Update(context.Background(), " ", entities.PracticeApplicationPatch{Status: &confirmed}); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "a", entities.PracticeApplicationPatch{}); !errors.Is(err, ErrEmptyPatch) {
			t.Fatalf("expected ErrEmptyPatch, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "a", entities.PracticeApplicationPatch{Status: &bogus}); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		uc := NewPracticeApplicationUseCase(repo, nil, nil, testSettings())

		repo.EXPECT().Update(gomock.Any(), "a", gomock.Any()).Return(entities.PracticeApplication{}, nil)

		if _, err := uc.Update(context.Background(), "a", entities.PracticeApplicationPatch{Status: &confirmed}); !errors.Is(err, ErrPracticeApplicationNotFound) {
			t.Fatalf("expected ErrPracticeApplicationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
		uc := NewPracticeApplicationUseCase(repo, nil, nil, testSettings())

		repo.EXPECT().Update(gomock.Any(), "a", gomock.Any()).Return(entities.PracticeApplication{ID: "a", Status: confirmed}, nil)

		got, err := uc.Update(context.Background(), " a ", entities.PracticeApplicationPatch{Status: &confirmed})
		if err != nil || got.Status != confirmed {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestPracticeApplicationUseCase_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPracticeApplicationRepository(ctrl)
	uc := NewPracticeApplicationUseCase(repo, nil, nil, testSettings())

	repo.EXPECT().List(gomock.Any(), entities.ListFilter{Page: 1, PageSize: entities.DefaultPageSize}).Return([]entities.PracticeApplication{{ID: "a"}}, 1, nil)
	items, total, err := uc.List(context.Background(), entities.ListFilter{})
	if err != nil || total != 1 || len(items) != 1 {
		t.Fatalf("unexpected list: %v %d %v", items, total, err)
	}

	if _, err := uc.Delete(context.Background(), []string{" ", ""}); !errors.Is(err, ErrEmptyIDs) {
		t.Fatalf("expected ErrEmptyIDs, got %v", err)
	}

	repo.EXPECT().DeleteByIDs(gomock.Any(), []string{"a", "b"}).Return(2, nil)
	n, err := uc.Delete(context.Background(), []string{"a", " b", "a"})
	if err != nil || n != 2 {
		t.Fatalf("unexpected delete: %d %v", n, err)
	}
}
