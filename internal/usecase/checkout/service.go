package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domorder "example.com/musicstore/internal/domain/order"
	"example.com/musicstore/internal/domain/view"
	"example.com/musicstore/internal/observability"
)

// PromoCode is the only code the store honors; anything else sends the
// caller back to the form.
const PromoCode = "FREE"

type OrderRepository interface {
	Create(ctx context.Context, o *domorder.Order) (int64, error)
	GetByID(ctx context.Context, id int64) (*domorder.Order, error)
}

type Service struct {
	orders   OrderRepository
	validate *validator.Validate
	logger   *zap.Logger
	metrics  *observability.Metrics
}

func NewService(orders OrderRepository, logger *zap.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		orders:   orders,
		validate: validator.New(),
		logger:   logger,
		metrics:  metrics,
	}
}

// SubmitAddressAndPayment runs the submission decision chain. The first
// matching rule wins: cancelled request, field validation failure, promo code
// mismatch, then persist. The store is only touched on the success path, and
// every non-success outcome carries the caller's order instance back so the
// entered values re-display unchanged.
func (s *Service) SubmitAddressAndPayment(ctx context.Context, o *domorder.Order, promoCode, username string) view.Result {
	if ctx.Err() != nil {
		s.metrics.IncCheckoutOutcome(observability.OutcomeCancelled)
		s.logger.Info("checkout submission cancelled before processing",
			zap.String("username", username),
		)
		return view.Cancelled{Order: o}
	}

	if err := s.validate.Struct(o); err != nil {
		s.metrics.IncCheckoutOutcome(observability.OutcomeRedisplay)
		s.logger.Info("checkout submission failed validation",
			zap.String("username", username),
			zap.Error(err),
		)
		return view.Redisplay{Order: o, Errors: err}
	}

	if promoCode != PromoCode {
		s.metrics.IncCheckoutOutcome(observability.OutcomeRedisplay)
		s.logger.Info("checkout submission rejected promo code",
			zap.String("username", username),
		)
		return view.Redisplay{Order: o}
	}

	o.Username = username
	o.OrderDate = time.Now()

	// Validation above may have suspended on upstream I/O; a cancellation
	// that arrived in the meantime must not race the write.
	if ctx.Err() != nil {
		s.metrics.IncCheckoutOutcome(observability.OutcomeCancelled)
		s.logger.Info("checkout submission cancelled before persist",
			zap.String("username", username),
		)
		return view.Cancelled{Order: o}
	}

	id, err := s.orders.Create(ctx, o)
	if err != nil {
		s.metrics.IncCheckoutOutcome(observability.OutcomeError)
		s.logger.Error("failed to persist order",
			zap.String("username", username),
			zap.Error(err),
		)
		return view.Error{Err: err}
	}
	o.ID = id

	s.metrics.IncCheckoutOutcome(observability.OutcomeAccepted)
	s.logger.Info("order accepted",
		zap.Int64("order_id", id),
		zap.String("username", username),
	)
	return view.Accepted{OrderID: id}
}

// Complete confirms an order for its owner. A missing order and an order
// owned by someone else produce the same outcome so order identifiers cannot
// be probed; an empty username never matches any owner.
func (s *Service) Complete(ctx context.Context, orderID int64, username string) view.Result {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domorder.ErrOrderNotFound) {
			s.metrics.IncCheckoutOutcome(observability.OutcomeError)
			s.logger.Error("failed to load order",
				zap.Int64("order_id", orderID),
				zap.Error(err),
			)
			return view.Error{Err: err}
		}
		s.metrics.IncCheckoutOutcome(observability.OutcomeError)
		s.logger.Info("completion requested for unknown order",
			zap.Int64("order_id", orderID),
			zap.String("username", username),
		)
		return view.Error{Err: domorder.ErrOrderNotFound}
	}

	if username == "" || o.Username != username {
		s.metrics.IncCheckoutOutcome(observability.OutcomeError)
		s.logger.Info("completion requested by non-owner",
			zap.Int64("order_id", orderID),
			zap.String("username", username),
		)
		return view.Error{Err: domorder.ErrOrderNotFound}
	}

	s.metrics.IncCheckoutOutcome(observability.OutcomeCompleted)
	s.logger.Info("order completed",
		zap.Int64("order_id", orderID),
		zap.String("username", username),
	)
	return view.Completed{OrderID: orderID}
}
