package purchaserepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/internal/pricing"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create records the ticket credit of an order. order_id is unique, so a second
// record for the same order fails with ErrOrderNotPending.
func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
		INSERT INTO purchases (id, order_id, user_id, tickets, amount_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		purchase.ID,
		purchase.OrderID,
		purchase.UserID,
		purchase.Tickets,
		pricing.ToMinorUnits(purchase.Amount),
		purchase.CreatedAt,
	).Scan(&purchase.ID)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.Reject(domain.ErrOrderNotPending, "order %s already credited", purchase.OrderID)
		}
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, domain.Unavailable(err, "save purchase")
	}
	return purchase, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]domain.Purchase, error) {
	query := `
        SELECT id, order_id, user_id, tickets, amount_cents, created_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, domain.Unavailable(err, "fetch purchases")
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var (
			p     domain.Purchase
			cents int64
		)
		err := rows.Scan(&p.ID, &p.OrderID, &p.UserID, &p.Tickets, &cents, &p.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan purchase row", zap.Error(err))
			return nil, domain.Unavailable(err, "scan purchase")
		}
		p.Amount = pricing.FromMinorUnits(cents)
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable(err, "iterate purchases")
	}

	return purchases, nil
}
