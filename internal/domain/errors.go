package domain

import (
	stderrors "errors"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidProduct       = errors.New("invalid product")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidTotal         = errors.New("invalid total")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInsufficientTickets  = errors.New("insufficient tickets")
	ErrInvalidTicketAmount  = errors.New("ticket amount must be positive")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotPending      = errors.New("order is not pending")
	ErrPaymentMismatch      = errors.New("payment does not match order")
	ErrPrizeNotFound        = errors.New("prize not found")
	ErrPrizeClosed          = errors.New("prize is closed for entries")
	ErrWinnerAlreadyDrawn   = errors.New("winner already drawn")
	ErrRateLimited          = errors.New("rate limited")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrLoginTaken           = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrInvalidPrize         = errors.New("invalid prize")
)

var kinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidProduct, "invalid_product"},
	{ErrInvalidQuantity, "invalid_quantity"},
	{ErrEmptyCart, "empty_cart"},
	{ErrInvalidTotal, "invalid_total"},
	{ErrInvalidEmail, "invalid_email"},
	{ErrInvalidPaymentMethod, "invalid_payment_method"},
	{ErrInsufficientTickets, "insufficient_tickets"},
	{ErrInvalidTicketAmount, "invalid_ticket_amount"},
	{ErrOrderNotFound, "order_not_found"},
	{ErrOrderNotPending, "order_not_pending"},
	{ErrPaymentMismatch, "payment_mismatch"},
	{ErrPrizeNotFound, "prize_not_found"},
	{ErrPrizeClosed, "prize_closed"},
	{ErrWinnerAlreadyDrawn, "winner_already_drawn"},
	{ErrRateLimited, "rate_limited"},
	{ErrUpstreamUnavailable, "upstream_unavailable"},
	{ErrLoginTaken, "login_taken"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrInvalidPassword, "invalid_password"},
	{ErrInvalidPrize, "invalid_prize"},
}

// Kind returns the stable machine-readable name of err, or "internal".
func Kind(err error) string {
	for _, k := range kinds {
		if stderrors.Is(err, k.err) {
			return k.kind
		}
	}
	return "internal"
}

// kindError keeps a detailed cause while also unwrapping to its kind sentinel.
type kindError struct {
	cause error
	kind  error
}

func (e *kindError) Error() string { return e.cause.Error() }

func (e *kindError) Unwrap() []error { return []error{e.cause, e.kind} }

// Reject builds an error that matches kind under errors.Is and carries a detailed message.
func Reject(kind error, format string, args ...interface{}) error {
	return &kindError{cause: errors.Newf(format, args...), kind: kind}
}

// Unavailable marks an infrastructure failure as ErrUpstreamUnavailable, keeping the cause.
func Unavailable(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &kindError{cause: errors.Wrap(err, msg), kind: ErrUpstreamUnavailable}
}
