package ticketservice

//go:generate mockgen -source=ticketservice.go -destination=mock_ticketservice.go -package=ticketservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
)

type Repo interface {
	GetBalance(ctx context.Context, userID string) (*domain.TicketBalance, error)
	CreateBalance(ctx context.Context, userID string) (*domain.TicketBalance, error)
	Credit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error)
	Debit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Purchase, error)
}

type Service struct {
	ticketRepo   Repo
	purchaseRepo PurchaseRepo
}

func New(ticketRepo Repo, purchaseRepo PurchaseRepo) *Service {
	return &Service{
		ticketRepo:   ticketRepo,
		purchaseRepo: purchaseRepo,
	}
}

// GetBalance returns a zero balance for users without a ledger row.
func (s *Service) GetBalance(ctx context.Context, userID string) (*domain.TicketBalance, error) {
	balance, err := s.ticketRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get ticket balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return &domain.TicketBalance{UserID: userID}, nil
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID string) (*domain.TicketBalance, error) {
	balance, err := s.ticketRepo.CreateBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create ticket balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) Credit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error) {
	if amount <= 0 {
		return nil, domain.Reject(domain.ErrInvalidTicketAmount, "can't credit %d tickets", amount)
	}
	balance, err := s.ticketRepo.Credit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	zap.L().Info("tickets credited", zap.String("userID", userID), zap.Int64("amount", amount), zap.Int64("balance", balance.Balance))
	return balance, nil
}

// Debit never lets the balance go negative: the repository only updates rows
// whose balance covers amount.
func (s *Service) Debit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error) {
	if amount <= 0 {
		return nil, domain.Reject(domain.ErrInvalidTicketAmount, "can't debit %d tickets", amount)
	}
	balance, err := s.ticketRepo.Debit(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientTickets) {
			zap.L().Info("debit rejected", zap.String("userID", userID), zap.Int64("amount", amount))
		}
		return nil, err
	}
	return balance, nil
}

func (s *Service) RecordPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	return s.purchaseRepo.Create(ctx, purchase)
}

func (s *Service) GetPurchases(ctx context.Context, userID string) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
