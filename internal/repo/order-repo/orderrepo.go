package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/internal/pricing"
)

const orderColumns = `id, number, user_id, items, total_cents, total_tickets, payment_method, status, email, payment_ref, expires_at, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*domain.Order, error) {
	var (
		order         domain.Order
		items         []byte
		totalCents    int64
		paymentMethod string
		status        string
	)
	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.UserID,
		&items,
		&totalCents,
		&order.TotalTickets,
		&paymentMethod,
		&status,
		&order.Email,
		&order.PaymentRef,
		&order.ExpiresAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, err
	}
	order.TotalAmount = pricing.FromMinorUnits(totalCents)
	order.PaymentMethod = domain.PaymentMethod(paymentMethod)
	order.Status = domain.OrderStatus(status)
	return &order, nil
}

func (r *Repository) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, number))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, domain.Unavailable(err, "find order")
	}
	return order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, domain.Unavailable(err, "get orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, domain.Unavailable(err, "scan order")
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable(err, "iterate orders")
	}
	return orders, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, number, user_id, items, total_cents, total_tickets, payment_method, status, email, payment_ref, expires_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query,
		order.ID,
		order.Number,
		order.UserID,
		items,
		pricing.ToMinorUnits(order.TotalAmount),
		order.TotalTickets,
		string(order.PaymentMethod),
		string(order.Status),
		order.Email,
		order.PaymentRef,
		order.ExpiresAt,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return domain.Unavailable(err, "save order")
	}
	return nil
}

// Transition moves an order from one status to another in a single conditional
// update. It returns nil when the order is missing or not in status from.
func (r *Repository) Transition(ctx context.Context, number string, from, to domain.OrderStatus, at time.Time) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET status = $3, updated_at = $4
        WHERE number = $1 AND status = $2
        RETURNING ` + orderColumns

	order, err := scanOrder(r.db.QueryRow(ctx, query, number, string(from), string(to), at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return nil, domain.Unavailable(err, "update order status")
	}
	return order, nil
}
