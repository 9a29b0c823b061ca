package routes

import (
	"context"
	"fmt"

	"placement_service/internal/adapter/http/handlers"
	"placement_service/internal/adapter/notification"
	"placement_service/internal/adapter/persistence/repository"
	"placement_service/internal/config"
	"placement_service/internal/infrastructure/database"
	"placement_service/internal/infrastructure/mail"
	"placement_service/internal/infrastructure/payments"
	"placement_service/internal/usecase"
	"placement_service/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// Dependencies holds the handlers and the resources they keep open.
type Dependencies struct {
	PayappHandler       *handlers.PayappHandler
	ConsultationHandler *handlers.ConsultationHandler
	PracticeHandler     *handlers.PracticeApplicationHandler

	closers []func() error
}

func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Warn().Err(err).Msg("[routes] close resource")
		}
	}
}

type stores struct {
	practice      interfaces.IPracticeApplicationRepository
	consultations interfaces.IConsultationRepository
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{}

	st, err := openStores(ctx, cfg, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	// Optional collaborators degrade to nil; the usecases treat nil as disabled.
	var notifier interfaces.INotifier
	if slack, err := notification.NewSlackNotifier(cfg.Slack); err != nil {
		log.Warn().Err(err).Msg("[routes] slack notifications disabled")
	} else {
		notifier = slack
	}

	var deduper interfaces.INotificationDeduper
	if cfg.Redis.Enabled() {
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("[routes] redis unavailable, notification dedupe disabled")
		} else {
			deps.closers = append(deps.closers, rdb.Close)
			deduper = notification.NewRedisDeduper(rdb, cfg.Redis.DedupeTTL)
		}
	}

	mailer, err := mail.New(ctx, cfg.Mail, cfg.DynamoDB)
	if err != nil {
		deps.Close()
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	if cfg.Payapp.Enabled() {
		g, err := payments.NewPayappGateway(cfg.Payapp)
		if err != nil {
			deps.Close()
			return nil, err
		}
		gateway = g
	} else {
		log.Warn().Msg("[routes] payapp not configured, submissions will not open a payment request")
	}

	reconciler := usecase.NewPaymentCallbackUseCase(st.practice, notifier, deduper, cfg.Slack.Timeout)
	practiceUC := usecase.NewPracticeApplicationUseCase(st.practice, gateway, notifier, usecase.PaymentSettings{
		GoodsName:   cfg.Payapp.GoodsName,
		Price:       cfg.Payapp.Price,
		FeedbackURL: cfg.App.APIBaseURL + "/v1" + PathPayapp + "/feedback",
		ReturnURL:   cfg.App.APIBaseURL + "/v1" + PathPayapp + "/result",
	})
	consultationUC := usecase.NewConsultationUseCase(st.consultations, mailer)

	deps.PayappHandler = handlers.NewPayappHandler(reconciler, handlers.PayappHandlerConfig{
		FailurePolicy:   cfg.Payapp.PersistenceFailurePolicy,
		ContinuationURL: cfg.ContinuationURL(3),
		HomeURL:         cfg.App.PublicBaseURL + "/",
	})
	deps.PracticeHandler = handlers.NewPracticeApplicationHandler(practiceUC)
	deps.ConsultationHandler = handlers.NewConsultationHandler(consultationUC)
	return deps, nil
}

func openStores(ctx context.Context, cfg *config.Config, deps *Dependencies) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return stores{}, err
		}
		deps.closers = append(deps.closers, db.Close)
		if err := database.Migrate(ctx, db); err != nil {
			return stores{}, err
		}
		return stores{
			practice:      repository.NewPracticeApplicationPostgresRepository(db),
			consultations: repository.NewConsultationPostgresRepository(db),
		}, nil

	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return stores{}, err
		}
		return stores{
			practice:      repository.NewPracticeApplicationDynamoRepository(ddb, cfg.DynamoDB.PracticeApplicationsTable),
			consultations: repository.NewConsultationDynamoRepository(ddb, cfg.DynamoDB.ConsultationsTable),
		}, nil
	}
	return stores{}, fmt.Errorf("%w: %q", config.ErrUnknownStoreDriver, cfg.Store.Driver)
}
