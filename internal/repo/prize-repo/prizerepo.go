package prizerepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) Create(ctx context.Context, prize *domain.Prize) (*domain.Prize, error) {
	query := `
		INSERT INTO prizes (id, name, description, draw_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, prize.ID, prize.Name, prize.Description, prize.DrawAt, prize.CreatedAt).Scan(&prize.ID)
	if err != nil {
		zap.L().Error("can't save prize", zap.Error(err))
		return nil, domain.Unavailable(err, "save prize")
	}
	return prize, nil
}

func (r *Repository) FindByID(ctx context.Context, prizeID string) (*domain.Prize, error) {
	return r.findOne(ctx, prizeID, "")
}

// LockForEntry reads the prize and holds a shared row lock until the
// surrounding transaction ends. Entries hold it while they debit tickets.
func (r *Repository) LockForEntry(ctx context.Context, prizeID string) (*domain.Prize, error) {
	return r.findOne(ctx, prizeID, "FOR SHARE")
}

// LockForDraw reads the prize and holds an exclusive row lock, so a draw waits
// for in-flight entries and blocks new ones until it commits.
func (r *Repository) LockForDraw(ctx context.Context, prizeID string) (*domain.Prize, error) {
	return r.findOne(ctx, prizeID, "FOR UPDATE")
}

func (r *Repository) findOne(ctx context.Context, prizeID, lock string) (*domain.Prize, error) {
	query := `
        SELECT id, name, description, draw_at, created_at
        FROM prizes
        WHERE id = $1 ` + lock

	var prize domain.Prize
	err := r.db.QueryRow(ctx, query, prizeID).Scan(&prize.ID, &prize.Name, &prize.Description, &prize.DrawAt, &prize.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find prize", zap.String("prizeID", prizeID), zap.Error(err))
		return nil, domain.Unavailable(err, "find prize")
	}
	return &prize, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Prize, error) {
	query := `
        SELECT id, name, description, draw_at, created_at
        FROM prizes
        ORDER BY draw_at ASC
    `
	return r.list(ctx, query)
}

// FindDue returns prizes whose draw time has passed, that have at least one
// entry and no winner yet. Prizes closed without entries can never be drawn
// and are left out so they don't fill the batch.
func (r *Repository) FindDue(ctx context.Context, now time.Time, limit uint32) ([]domain.Prize, error) {
	query := `
        SELECT p.id, p.name, p.description, p.draw_at, p.created_at
        FROM prizes p
        LEFT JOIN winners w ON w.prize_id = p.id
        WHERE w.prize_id IS NULL AND p.draw_at <= $1
          AND EXISTS (SELECT 1 FROM entries e WHERE e.prize_id = p.id)
        ORDER BY p.draw_at ASC
        LIMIT $2
    `
	return r.list(ctx, query, now, int(limit))
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Prize, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get prizes", zap.Error(err))
		return nil, domain.Unavailable(err, "get prizes")
	}
	defer rows.Close()

	var prizes []domain.Prize
	for rows.Next() {
		var prize domain.Prize
		if err := rows.Scan(&prize.ID, &prize.Name, &prize.Description, &prize.DrawAt, &prize.CreatedAt); err != nil {
			zap.L().Error("can't scan prize row", zap.Error(err))
			return nil, domain.Unavailable(err, "scan prize")
		}
		prizes = append(prizes, prize)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable(err, "iterate prizes")
	}
	return prizes, nil
}
