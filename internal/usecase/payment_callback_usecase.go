package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrPersistence = errors.New("payment state persistence failed")

const defaultNotifyTimeout = 5 * time.Second

// ReconcileStatus is the settled result of one callback delivery.
type ReconcileStatus string

const (
	ReconcileStatusReconciled                  ReconcileStatus = "reconciled"
	ReconcileStatusReconciledNotificationFails ReconcileStatus = "reconciled_with_notification_failure"
	ReconcileStatusAlreadyPaid                 ReconcileStatus = "already_paid"
	ReconcileStatusNotFound                    ReconcileStatus = "not_found"
	ReconcileStatusSkipped                     ReconcileStatus = "skipped"
	ReconcileStatusPersistenceFailed           ReconcileStatus = "persistence_failed"
)

type ReconcileResult struct {
	Status      ReconcileStatus
	Outcome     entities.CallbackOutcome
	Application entities.PracticeApplication
}

// Persisted reports whether the store reflects the callback (or never needed to).
func (r ReconcileResult) Persisted() bool {
	return r.Status != ReconcileStatusPersistenceFailed
}

// IPaymentCallbackUseCase is shared by the feedback and result receivers.
//
// Ordered effects:
//   - primary: one conditional store write (paid or failed); its error is returned
//   - secondary: feedback-channel paid writes only; dedupe, then chat alert.
//     Failures are logged and reported through the result status, never returned.
type IPaymentCallbackUseCase interface {
	Reconcile(ctx context.Context, channel entities.CallbackChannel, cb entities.PaymentCallback) (ReconcileResult, error)
}

type PaymentCallbackUseCase struct {
	repo          interfaces.IPracticeApplicationRepository
	notifier      interfaces.INotifier
	deduper       interfaces.INotificationDeduper
	notifyTimeout time.Duration
	now           func() time.Time
}

var _ IPaymentCallbackUseCase = (*PaymentCallbackUseCase)(nil)

// NewPaymentCallbackUseCase wires the reconciler. notifier and deduper may be nil.
func NewPaymentCallbackUseCase(repo interfaces.IPracticeApplicationRepository, notifier interfaces.INotifier, deduper interfaces.INotificationDeduper, notifyTimeout time.Duration) *PaymentCallbackUseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &PaymentCallbackUseCase{
		repo:          repo,
		notifier:      notifier,
		deduper:       deduper,
		notifyTimeout: notifyTimeout,
		now:           time.Now,
	}
}

func (u *PaymentCallbackUseCase) Reconcile(ctx context.Context, channel entities.CallbackChannel, cb entities.PaymentCallback) (ReconcileResult, error) {
	id := strings.TrimSpace(cb.CorrelationID)
	if id == "" {
		log.Warn().Str("channel", string(channel)).Msg("[payapp][usecase] missing var1")
		return ReconcileResult{}, entities.ErrMissingCorrelationID
	}
	mulNo := strings.TrimSpace(cb.TransactionID)
	outcome := cb.Outcome(channel)

	logger := log.With().
		Str("channel", string(channel)).
		Str("var1", id).
		Str("mul_no", mulNo).
		Str("state", cb.State).
		Str("tradeid", cb.TradeID).
		Str("outcome", string(outcome)).
		Logger()
	logger.Info().Msg("[payapp][usecase] reconcile start")

	res := ReconcileResult{Outcome: outcome}

	switch outcome {
	case entities.CallbackOutcomeSuccess:
		app, err := u.repo.MarkPaid(ctx, id, mulNo)
		if err != nil {
			logger.Error().Err(err).Msg("[payapp][usecase] mark paid failed")
			res.Status = ReconcileStatusPersistenceFailed
			return res, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		if app.ID == "" {
			logger.Warn().Msg("[payapp][usecase] application not found")
			res.Status = ReconcileStatusNotFound
			return res, nil
		}
		res.Application = app
		res.Status = ReconcileStatusReconciled
		logger.Info().Str("price", cb.Amount.Decimal.String()).Msg("[payapp][usecase] payment marked paid")

		if channel == entities.CallbackChannelFeedback {
			if err := u.notifyPaid(ctx, app, cb); err != nil {
				logger.Error().Err(err).Msg("[payapp][usecase] payment notification failed")
				res.Status = ReconcileStatusReconciledNotificationFails
			}
		}
		return res, nil

	case entities.CallbackOutcomeFailure:
		app, err := u.repo.MarkFailed(ctx, id)
		if errors.Is(err, entities.ErrPaymentAlreadyPaid) {
			logger.Warn().Msg("[payapp][usecase] failure callback ignored, application already paid")
			res.Status = ReconcileStatusAlreadyPaid
			return res, nil
		}
		if err != nil {
			logger.Error().Err(err).Msg("[payapp][usecase] mark failed failed")
			res.Status = ReconcileStatusPersistenceFailed
			return res, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		if app.ID == "" {
			logger.Warn().Msg("[payapp][usecase] application not found")
			res.Status = ReconcileStatusNotFound
			return res, nil
		}
		res.Application = app
		res.Status = ReconcileStatusReconciled
		logger.Info().Str("error_message", cb.ErrorMessage).Msg("[payapp][usecase] payment marked failed")
		return res, nil

	default:
		logger.Info().Msg("[payapp][usecase] indeterminate callback, no write")
		res.Status = ReconcileStatusSkipped
		return res, nil
	}
}

// notifyPaid runs the secondary effects of a paid write. A panic in a collaborator is
// reported as an error so the primary result stands.
func (u *PaymentCallbackUseCase) notifyPaid(ctx context.Context, app entities.PracticeApplication, cb entities.PaymentCallback) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notification panic: %v", r)
		}
	}()

	if u.notifier == nil {
		return nil
	}

	// The notification outlives a cancelled request but not its own deadline.
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.notifyTimeout)
	defer cancel()

	key := NotificationKey(app.ID, cb.TransactionID)
	if u.deduper != nil {
		acquired, derr := u.deduper.Acquire(nctx, key)
		switch {
		case derr != nil:
			log.Warn().Err(derr).Str("key", key).Msg("[payapp][usecase] dedupe unavailable, notifying anyway")
		case !acquired:
			log.Info().Str("key", key).Msg("[payapp][usecase] duplicate delivery, notification skipped")
			return nil
		}
	}

	err = u.notifier.NotifyPaymentCompleted(nctx, entities.PaymentNotification{
		Application:   app,
		TransactionID: strings.TrimSpace(cb.TransactionID),
		Amount:        cb.Amount,
		PaymentMethod: cb.PaymentMethod,
		PaidAt:        u.now(),
	})
	if err != nil && u.deduper != nil {
		// Let a redelivery try again.
		if rerr := u.deduper.Release(nctx, key); rerr != nil {
			log.Warn().Err(rerr).Str("key", key).Msg("[payapp][usecase] dedupe release failed")
		}
	}
	return err
}

// NotificationKey identifies one paid delivery for deduplication.
func NotificationKey(applicationID, mulNo string) string {
	mulNo = strings.TrimSpace(mulNo)
	if mulNo == "" {
		mulNo = "-"
	}
	return "payapp:notified:" + applicationID + ":" + mulNo
}
