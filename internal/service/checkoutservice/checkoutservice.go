package checkoutservice

//go:generate mockgen -source=checkoutservice.go -destination=mock_checkoutservice.go -package=checkoutservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/internal/pricing"
)

type CatalogSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, userID string, cart *domain.ValidatedCart, method domain.PaymentMethod, email string) (*domain.Order, error)
}

type Service struct {
	catalog CatalogSource
	orders  OrderCreator
}

func New(catalog CatalogSource, orders OrderCreator) *Service {
	return &Service{
		catalog: catalog,
		orders:  orders,
	}
}

// Revalidate prices raw cart lines against the current catalog. The catalog is
// loaded on every call.
func (s *Service) Revalidate(ctx context.Context, raw []domain.CartLineItem) (*domain.ValidatedCart, error) {
	if len(raw) == 0 {
		return nil, domain.ErrEmptyCart
	}
	products, err := s.catalog.Products(ctx)
	if err != nil {
		zap.L().Error("can't load catalog", zap.Error(err))
		return nil, domain.Unavailable(err, "load catalog")
	}

	cart, err := pricing.Revalidate(raw, pricing.NewCatalog(products))
	if err != nil {
		zap.L().Info("cart rejected", zap.String("kind", domain.Kind(err)), zap.Error(err))
		return nil, err
	}
	return cart, nil
}

// Checkout revalidates the cart and turns it into a pending order.
func (s *Service) Checkout(ctx context.Context, userID string, raw []domain.CartLineItem, method domain.PaymentMethod, email string) (*domain.Order, error) {
	cart, err := s.Revalidate(ctx, raw)
	if err != nil {
		return nil, err
	}
	return s.orders.CreateOrder(ctx, userID, cart, method, email)
}
