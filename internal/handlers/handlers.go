package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/rafflemart/docs"
	authhandlers "github.com/GlebRadaev/rafflemart/internal/handlers/auth"
	checkouthandlers "github.com/GlebRadaev/rafflemart/internal/handlers/checkout"
	contesthandlers "github.com/GlebRadaev/rafflemart/internal/handlers/contests"
	ordershandlers "github.com/GlebRadaev/rafflemart/internal/handlers/orders"
	paymenthandlers "github.com/GlebRadaev/rafflemart/internal/handlers/payments"
	tickethandlers "github.com/GlebRadaev/rafflemart/internal/handlers/tickets"
	"github.com/GlebRadaev/rafflemart/internal/ratelimit"
	"github.com/GlebRadaev/rafflemart/internal/service"
	"github.com/GlebRadaev/rafflemart/pkg/auth"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CheckoutHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	GetOrders(w http.ResponseWriter, r *http.Request)
	ConfirmOrder(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
}

type TicketHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
}

type ContestHandler interface {
	GetPrizes(w http.ResponseWriter, r *http.Request)
	CreatePrize(w http.ResponseWriter, r *http.Request)
	Enter(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
	GetWinner(w http.ResponseWriter, r *http.Request)
	DrawWinner(w http.ResponseWriter, r *http.Request)
	DrawDue(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Webhook(w http.ResponseWriter, r *http.Request)
}

// Options configure the middleware shared by all routes.
type Options struct {
	JWTService    auth.JWTServiceInterface
	Limiter       ratelimit.Store
	RateLimit     int
	RateWindow    time.Duration
	WebhookSecret string
	Clock         clock.Clock
}

type Handlers struct {
	AuthHandler     AuthHandler
	CheckoutHandler CheckoutHandler
	OrderHandler    OrderHandler
	TicketHandler   TicketHandler
	ContestHandler  ContestHandler
	PaymentHandler  PaymentHandler

	opts Options
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CheckoutHandler: checkouthandlers.New(s.CheckoutService),
		OrderHandler:    ordershandlers.New(s.OrderService),
		TicketHandler:   tickethandlers.New(s.TicketService),
		ContestHandler:  contesthandlers.New(s.ContestService),
		PaymentHandler:  paymenthandlers.New(s.OrderService, opts.WebhookSecret),
		opts:            opts,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	authenticated := auth.AuthMiddleware(h.opts.JWTService)
	limited := ratelimit.Middleware(h.opts.Limiter, h.opts.RateLimit, h.opts.RateWindow, h.opts.Clock)

	r.Route("/api", func(r chi.Router) {
		r.Post("/payments/webhook", h.PaymentHandler.Webhook)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Get("/orders", h.OrderHandler.GetOrders)
				r.Get("/tickets", h.TicketHandler.GetBalance)
				r.Get("/purchases", h.TicketHandler.GetPurchases)
				r.Get("/entries", h.ContestHandler.GetEntries)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.With(limited).Post("/cart/validate", h.CheckoutHandler.Validate)
			r.With(limited).Post("/checkout", h.CheckoutHandler.Checkout)

			r.Get("/prizes", h.ContestHandler.GetPrizes)
			r.Post("/prizes/{prizeID}/entries", h.ContestHandler.Enter)
			r.Get("/prizes/{prizeID}/winner", h.ContestHandler.GetWinner)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticated, auth.RequireAdmin)
			r.Post("/orders/{number}/confirm", h.OrderHandler.ConfirmOrder)
			r.Post("/orders/{number}/cancel", h.OrderHandler.CancelOrder)
			r.Post("/prizes", h.ContestHandler.CreatePrize)
			r.Post("/prizes/{prizeID}/draw", h.ContestHandler.DrawWinner)
			r.Post("/draws", h.ContestHandler.DrawDue)
		})
	})

	return r
}
