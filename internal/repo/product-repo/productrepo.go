package productrepo

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

func (r *Repository) FindActive(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT id, name, price_cents, special_offer, offer_type
        FROM products
        WHERE active
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't load products", zap.Error(err))
		return nil, domain.Unavailable(err, "load products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var (
			p     domain.Product
			cents int64
		)
		if err := rows.Scan(&p.ID, &p.Name, &cents, &p.SpecialOffer, &p.OfferType); err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, domain.Unavailable(err, "scan product")
		}
		p.Price = pricing.FromMinorUnits(cents)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable(err, "iterate products")
	}
	return products, nil
}
