package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string    `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// OfferBuy10Get2 charges 10 of every 12 units.
const OfferBuy10Get2 = "buy10get2"

type Product struct {
	ID           string          `db:"id" yaml:"id"`
	Name         string          `db:"name" yaml:"name"`
	Price        decimal.Decimal `db:"price_cents" yaml:"price"`
	SpecialOffer bool            `db:"special_offer" yaml:"special_offer"`
	OfferType    string          `db:"offer_type" yaml:"offer_type"`
}

// CartLineItem is what the client submits. It carries no price on purpose.
type CartLineItem struct {
	ProductID string
	Quantity  int
}

type ValidatedLineItem struct {
	ProductID        string          `json:"product_id"`
	Name             string          `json:"name"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	PaidQuantity     int             `json:"paid_quantity"`
	FreeQuantity     int             `json:"free_quantity"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TicketsEarned    int64           `json:"tickets_earned"`
	OriginalQuantity int             `json:"original_quantity"`
}

type ValidatedCart struct {
	Items        []ValidatedLineItem
	Total        decimal.Decimal
	TotalTickets int64
}

type PaymentMethod string

const (
	PaymentMethodProcessor      PaymentMethod = "processor"
	PaymentMethodManualTransfer PaymentMethod = "manual_transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodProcessor || m == PaymentMethodManualTransfer
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            string              `db:"id"`
	Number        string              `db:"number"`
	UserID        string              `db:"user_id"`
	Items         []ValidatedLineItem `db:"items"`
	TotalAmount   decimal.Decimal     `db:"total_cents"`
	TotalTickets  int64               `db:"total_tickets"`
	PaymentMethod PaymentMethod       `db:"payment_method"`
	Status        OrderStatus         `db:"status"`
	Email         string              `db:"email"`
	PaymentRef    string              `db:"payment_ref"`
	PaymentURL    string              `db:"-"`
	ExpiresAt     *time.Time          `db:"expires_at"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

type TicketBalance struct {
	UserID      string `db:"user_id"`
	Balance     int64  `db:"balance"`
	EarnedTotal int64  `db:"earned_total"`
	SpentTotal  int64  `db:"spent_total"`
}

// Purchase links a confirmed order to the tickets it credited.
type Purchase struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	UserID    string          `db:"user_id"`
	Tickets   int64           `db:"tickets"`
	Amount    decimal.Decimal `db:"amount_cents"`
	CreatedAt time.Time       `db:"created_at"`
}

type Prize struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	DrawAt      time.Time `db:"draw_at"`
	CreatedAt   time.Time `db:"created_at"`
}

type Entry struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	PrizeID     string    `db:"prize_id"`
	TicketsUsed int64     `db:"tickets_used"`
	CreatedAt   time.Time `db:"created_at"`
}

type Winner struct {
	PrizeID     string    `db:"prize_id" json:"prize_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	EntryID     string    `db:"entry_id" json:"entry_id"`
	TicketsUsed int64     `db:"tickets_used" json:"tickets_used"`
	DrawnAt     time.Time `db:"drawn_at" json:"drawn_at"`
}

// PaymentSession is a hosted checkout session opened at the payment processor.
type PaymentSession struct {
	ID        string
	URL       string
	ExpiresAt time.Time
}
