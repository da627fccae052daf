package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rafflemart/internal/catalog"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/internal/repo"
	"github.com/GlebRadaev/rafflemart/internal/service/authservice"
	"github.com/GlebRadaev/rafflemart/internal/service/contestservice"
	"github.com/GlebRadaev/rafflemart/internal/service/orderservice"
	"github.com/GlebRadaev/rafflemart/internal/service/ticketservice"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:     authservice.NewMockRepo(ctrl),
		OrderRepo:    orderservice.NewMockRepo(ctrl),
		TicketRepo:   ticketservice.NewMockRepo(ctrl),
		PurchaseRepo: ticketservice.NewMockPurchaseRepo(ctrl),
		ProductRepo:  catalog.NewMockProductRepo(ctrl),
		PrizeRepo:    contestservice.NewMockPrizeRepo(ctrl),
		EntryRepo:    contestservice.NewMockEntryRepo(ctrl),
		WinnerRepo:   contestservice.NewMockWinnerRepo(ctrl),
	}

	services := New(repos, Deps{
		TXManager:  pg.NewMockTXManager(ctrl),
		Catalog:    catalog.NewDBSource(repos.ProductRepo),
		Payments:   orderservice.NewMockPaymentGateway(ctrl),
		JWTService: auth.NewMockJWTServiceInterface(ctrl),
		Clock:      clock.NewRealClock(),
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CheckoutService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.TicketService)
	assert.NotNil(t, services.ContestService)
	assert.Same(t, services.ContestService, services.Draws)
}
