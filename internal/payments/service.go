package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anandmehra/dailybasket-backend/internal/orders"
	"github.com/anandmehra/dailybasket-backend/pkg/config"
	"github.com/anandmehra/dailybasket-backend/pkg/db/models"
	pkgerrors "github.com/anandmehra/dailybasket-backend/pkg/errors"
	"github.com/anandmehra/dailybasket-backend/pkg/logger"
	"github.com/anandmehra/dailybasket-backend/pkg/metrics"
	"github.com/anandmehra/dailybasket-backend/pkg/redis"
)

// Service submits payments for orders. One submission per session runs at a
// time; the in-flight lock lives in redis so it holds across instances.
type Service interface {
	Pay(ctx context.Context, input PayInput) (*models.Order, error)
}

// PayInput captures a payment submission.
type PayInput struct {
	SessionID uuid.UUID
	OrderID   string
	UPIID     string
	Now       time.Time
}

type service struct {
	orders    orders.Service
	locker    redis.Locker
	processor Processor
	cfg       config.PaymentsConfig
	metrics   *metrics.OrderMetrics
	logg      *logger.Logger
}

// NewService builds a payments service with the required dependencies.
func NewService(ord orders.Service, locker redis.Locker, processor Processor, cfg config.PaymentsConfig, m *metrics.OrderMetrics, logg *logger.Logger) (Service, error) {
	if ord == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if locker == nil {
		return nil, fmt.Errorf("locker required")
	}
	if processor == nil {
		return nil, fmt.Errorf("payment processor required")
	}
	return &service{
		orders:    ord,
		locker:    locker,
		processor: processor,
		cfg:       cfg,
		metrics:   m,
		logg:      logg,
	}, nil
}

func (s *service) Pay(ctx context.Context, input PayInput) (*models.Order, error) {
	if input.SessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if strings.TrimSpace(input.UPIID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "upi id required")
	}
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	order, err := s.orders.Get(ctx, input.SessionID, input.OrderID)
	if err != nil {
		return nil, err
	}

	lockKey := s.locker.PaymentInflightKey(input.SessionID.String())
	acquired, err := s.locker.AcquireLock(ctx, lockKey, s.cfg.InflightLockTTL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire payment lock")
	}
	if !acquired {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "a payment is already in progress for this session")
	}
	defer func() {
		if releaseErr := s.locker.ReleaseLock(context.WithoutCancel(ctx), lockKey); releaseErr != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", releaseErr.Error()), "releasing payment lock failed")
		}
	}()

	started := time.Now()
	procCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	err = s.processor.Process(procCtx, ChargeRequest{
		OrderID: order.PublicID,
		UPIID:   input.UPIID,
		Amount:  order.OneTimeTotal,
	})
	s.metrics.ObservePaymentDuration(time.Since(started))
	if err != nil {
		s.metrics.IncPaymentOutcome("failure")
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "payment provider timed out")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "payment provider failed")
	}

	paid, err := s.orders.RecordPayment(ctx, input.SessionID, input.OrderID, now)
	if err != nil {
		s.metrics.IncPaymentOutcome("failure")
		return nil, err
	}
	s.metrics.IncPaymentOutcome("success")
	return paid, nil
}
