package service

import (
	"github.com/GlebRadaev/rafflemart/internal/drawer"
	"github.com/GlebRadaev/rafflemart/internal/handlers/auth"
	"github.com/GlebRadaev/rafflemart/internal/handlers/checkout"
	"github.com/GlebRadaev/rafflemart/internal/handlers/contests"
	"github.com/GlebRadaev/rafflemart/internal/handlers/orders"
	"github.com/GlebRadaev/rafflemart/internal/handlers/tickets"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	"github.com/GlebRadaev/rafflemart/internal/repo"
	"github.com/GlebRadaev/rafflemart/pkg/clock"

	pkgauth "github.com/GlebRadaev/rafflemart/pkg/auth"

	authservice "github.com/GlebRadaev/rafflemart/internal/service/authservice"
	checkoutservice "github.com/GlebRadaev/rafflemart/internal/service/checkoutservice"
	contestservice "github.com/GlebRadaev/rafflemart/internal/service/contestservice"
	orderservice "github.com/GlebRadaev/rafflemart/internal/service/orderservice"
	ticketservice "github.com/GlebRadaev/rafflemart/internal/service/ticketservice"
)

// Deps are the collaborators services need besides repositories.
type Deps struct {
	TXManager  pg.TXManager
	Catalog    checkoutservice.CatalogSource
	Payments   orderservice.PaymentGateway
	JWTService pkgauth.JWTServiceInterface
	Hasher     pkgauth.PasswordHasher
	Clock      clock.Clock
}

type Services struct {
	AuthService     auth.Service
	CheckoutService checkout.Service
	OrderService    orders.Service
	TicketService   tickets.Service
	ContestService  contests.Service
	Draws           drawer.Contest
}

func New(repo *repo.Repositories, deps Deps) *Services {
	ticketService := ticketservice.New(repo.TicketRepo, repo.PurchaseRepo)
	orderService := orderservice.New(repo.OrderRepo, ticketService, deps.Payments, deps.TXManager, deps.Clock)
	checkoutService := checkoutservice.New(deps.Catalog, orderService)
	contestService := contestservice.New(repo.PrizeRepo, repo.EntryRepo, repo.WinnerRepo, ticketService, deps.TXManager, deps.Clock)
	authService := authservice.New(repo.UserRepo, ticketService, deps.Hasher, deps.JWTService, deps.TXManager, deps.Clock)

	return &Services{
		AuthService:     authService,
		CheckoutService: checkoutService,
		OrderService:    orderService,
		TicketService:   ticketService,
		ContestService:  contestService,
		Draws:           contestService,
	}
}
