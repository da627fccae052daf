package repo

import (
	"github.com/GlebRadaev/rafflemart/internal/catalog"
	"github.com/GlebRadaev/rafflemart/internal/pg"
	entryrepo "github.com/GlebRadaev/rafflemart/internal/repo/entry-repo"
	orderrepo "github.com/GlebRadaev/rafflemart/internal/repo/order-repo"
	prizerepo "github.com/GlebRadaev/rafflemart/internal/repo/prize-repo"
	productrepo "github.com/GlebRadaev/rafflemart/internal/repo/product-repo"
	purchaserepo "github.com/GlebRadaev/rafflemart/internal/repo/purchase-repo"
	ticketrepo "github.com/GlebRadaev/rafflemart/internal/repo/ticket-repo"
	userrepo "github.com/GlebRadaev/rafflemart/internal/repo/user-repo"
	winnerrepo "github.com/GlebRadaev/rafflemart/internal/repo/winner-repo"
	"github.com/GlebRadaev/rafflemart/internal/service/authservice"
	"github.com/GlebRadaev/rafflemart/internal/service/contestservice"
	"github.com/GlebRadaev/rafflemart/internal/service/orderservice"
	"github.com/GlebRadaev/rafflemart/internal/service/ticketservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	OrderRepo    orderservice.Repo
	TicketRepo   ticketservice.Repo
	PurchaseRepo ticketservice.PurchaseRepo
	ProductRepo  catalog.ProductRepo
	PrizeRepo    contestservice.PrizeRepo
	EntryRepo    contestservice.EntryRepo
	WinnerRepo   contestservice.WinnerRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		OrderRepo:    orderrepo.New(conn),
		TicketRepo:   ticketrepo.New(conn),
		PurchaseRepo: purchaserepo.New(conn),
		ProductRepo:  productrepo.New(conn),
		PrizeRepo:    prizerepo.New(conn),
		EntryRepo:    entryrepo.New(conn),
		WinnerRepo:   winnerrepo.New(conn),
	}
}
