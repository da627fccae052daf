package ticketrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanBalance(row pgx.Row) (*domain.TicketBalance, error) {
	var balance domain.TicketBalance
	err := row.Scan(&balance.UserID, &balance.Balance, &balance.EarnedTotal, &balance.SpentTotal)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) GetBalance(ctx context.Context, userID string) (*domain.TicketBalance, error) {
	query := `
        SELECT user_id, balance, earned_total, spent_total
        FROM ticket_balances
        WHERE user_id = $1
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get ticket balance", zap.Error(err))
		return nil, domain.Unavailable(err, "get ticket balance")
	}
	return balance, nil
}

func (r *Repository) CreateBalance(ctx context.Context, userID string) (*domain.TicketBalance, error) {
	query := `
        INSERT INTO ticket_balances (user_id, balance, earned_total, spent_total)
        VALUES ($1, 0, 0, 0)
        RETURNING user_id, balance, earned_total, spent_total
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create ticket balance", zap.Error(err))
		return nil, domain.Unavailable(err, "create ticket balance")
	}
	return balance, nil
}

// Credit adds amount in a single upsert so concurrent credits never lose updates.
func (r *Repository) Credit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error) {
	query := `
        INSERT INTO ticket_balances (user_id, balance, earned_total, spent_total)
        VALUES ($1, $2, $2, 0)
        ON CONFLICT (user_id) DO UPDATE
        SET balance = ticket_balances.balance + EXCLUDED.balance,
            earned_total = ticket_balances.earned_total + EXCLUDED.earned_total
        RETURNING user_id, balance, earned_total, spent_total
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, userID, amount))
	if err != nil {
		zap.L().Error("failed to credit tickets", zap.Error(err))
		return nil, domain.Unavailable(err, "credit tickets")
	}
	return balance, nil
}

// Debit subtracts amount only when the balance covers it.
func (r *Repository) Debit(ctx context.Context, userID string, amount int64) (*domain.TicketBalance, error) {
	query := `
        UPDATE ticket_balances
        SET balance = balance - $2,
            spent_total = spent_total + $2
        WHERE user_id = $1 AND balance >= $2
        RETURNING user_id, balance, earned_total, spent_total
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, userID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientTickets
		}
		zap.L().Error("failed to debit tickets", zap.Error(err))
		return nil, domain.Unavailable(err, "debit tickets")
	}
	return balance, nil
}
