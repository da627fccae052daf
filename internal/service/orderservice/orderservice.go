package orderservice

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
	"github.com/GlebRadaev/rafflemart/pkg/validate"
)

type Repo interface {
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Transition(ctx context.Context, number string, from, to domain.OrderStatus, at time.Time) (*domain.Order, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error)
	RecordPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, order *domain.Order) (*domain.PaymentSession, error)
}

type Service struct {
	repo      Repo
	ledger    Ledger
	payments  PaymentGateway
	txManager pg.TXManager
	clock     clock.Clock
}

func New(repo Repo, ledger Ledger, payments PaymentGateway, txManager pg.TXManager, clk clock.Clock) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		payments:  payments,
		txManager: txManager,
		clock:     clk,
	}
}

// CreateOrder records a pending order for an already revalidated cart. For
// processor payments the session is opened before anything is stored, so a
// processor failure leaves no order behind.
func (s *Service) CreateOrder(ctx context.Context, userID string, cart *domain.ValidatedCart, method domain.PaymentMethod, email string) (*domain.Order, error) {
	if !method.Valid() {
		return nil, domain.Reject(domain.ErrInvalidPaymentMethod, "unsupported payment method: %q", method)
	}
	if cart == nil || !cart.Total.IsPositive() {
		return nil, domain.ErrInvalidTotal
	}
	email = strings.TrimSpace(email)
	if (method == domain.PaymentMethodManualTransfer || email != "") && !strings.Contains(email, "@") {
		return nil, domain.Reject(domain.ErrInvalidEmail, "invalid email: %q", email)
	}

	now := s.clock.Now()
	order := &domain.Order{
		ID:            uuid.NewString(),
		Number:        validate.NewOrderNumber(),
		UserID:        userID,
		Items:         cart.Items,
		TotalAmount:   cart.Total,
		TotalTickets:  cart.TotalTickets,
		PaymentMethod: method,
		Status:        domain.OrderStatusPending,
		Email:         email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if method == domain.PaymentMethodProcessor {
		session, err := s.payments.CreateSession(ctx, order)
		if err != nil {
			zap.L().Error("can't open payment session", zap.String("order", order.Number), zap.Error(err))
			return nil, err
		}
		order.PaymentRef = session.ID
		order.PaymentURL = session.URL
		expiresAt := session.ExpiresAt
		order.ExpiresAt = &expiresAt
	}

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}

	zap.L().Info("order created",
		zap.String("order", order.Number),
		zap.String("method", string(method)),
		zap.String("total", order.TotalAmount.StringFixed(2)),
		zap.Int64("tickets", order.TotalTickets),
	)
	return order, nil
}

// ConfirmOrder marks a pending order as paid and credits its tickets in one
// transaction. Only the caller that wins the pending→confirmed update credits.
func (s *Service) ConfirmOrder(ctx context.Context, number string) (*domain.Order, error) {
	var confirmed *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.clock.Now()
		order, err := s.repo.Transition(ctx, number, domain.OrderStatusPending, domain.OrderStatusConfirmed, now)
		if err != nil {
			return err
		}
		if order == nil {
			return s.notPending(ctx, number)
		}

		if order.TotalTickets > 0 {
			if _, err := s.ledger.Credit(ctx, order.UserID, order.TotalTickets); err != nil {
				return err
			}
		}
		_, err = s.ledger.RecordPurchase(ctx, &domain.Purchase{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			UserID:    order.UserID,
			Tickets:   order.TotalTickets,
			Amount:    order.TotalAmount,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		confirmed = order
		return nil
	})
	if err != nil {
		zap.L().Warn("order confirmation failed", zap.String("order", number), zap.Error(err))
		return nil, err
	}

	zap.L().Info("order confirmed", zap.String("order", number), zap.Int64("tickets", confirmed.TotalTickets))
	return confirmed, nil
}

// ConfirmPayment confirms an order from a processor notification. The order
// must have been created for the processor with the notified session.
func (s *Service) ConfirmPayment(ctx context.Context, number, sessionID string) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, number)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != domain.PaymentMethodProcessor || sessionID == "" || order.PaymentRef != sessionID {
		zap.L().Warn("payment notification does not match order",
			zap.String("order", number),
			zap.String("method", string(order.PaymentMethod)),
			zap.String("session", sessionID),
		)
		return nil, domain.Reject(domain.ErrPaymentMismatch, "order %s was not paid by session %q", number, sessionID)
	}
	return s.ConfirmOrder(ctx, number)
}

func (s *Service) CancelOrder(ctx context.Context, number string) (*domain.Order, error) {
	order, err := s.repo.Transition(ctx, number, domain.OrderStatusPending, domain.OrderStatusCancelled, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, s.notPending(ctx, number)
	}
	zap.L().Info("order cancelled", zap.String("order", number))
	return order, nil
}

func (s *Service) notPending(ctx context.Context, number string) error {
	order, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.Reject(domain.ErrOrderNotFound, "order %s not found", number)
	}
	return domain.Reject(domain.ErrOrderNotPending, "order %s is %s", number, order.Status)
}

func (s *Service) GetOrder(ctx context.Context, number string) (*domain.Order, error) {
	order, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.Reject(domain.ErrOrderNotFound, "order %s not found", number)
	}
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
