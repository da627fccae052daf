package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/rafflemart/internal/domain"
)

const (
	// MaxQuantity is the largest quantity accepted for a single line.
	MaxQuantity = 100

	offerSetSize  = 12
	offerPaidSize = 10
	// offerTicketBonus multiplies tickets earned on special-offer lines.
	offerTicketBonus = 10
)

var ticketUnit = decimal.NewFromInt(100)

// Catalog is the authoritative product list keyed by product id.
type Catalog map[string]domain.Product

func NewCatalog(products []domain.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

// SplitOffer splits a requested quantity into charged and free units under buy10get2.
func SplitOffer(quantity int) (paid, free int) {
	if quantity <= 0 {
		return 0, 0
	}
	sets := quantity / offerSetSize
	remainder := quantity % offerSetSize
	paid = sets*offerPaidSize + min(remainder, offerPaidSize)
	free = sets*(offerSetSize-offerPaidSize) + max(remainder-offerPaidSize, 0)
	return paid, free
}

// TicketsFor returns one ticket per full 100 of subtotal.
func TicketsFor(subtotal decimal.Decimal) int64 {
	if !subtotal.IsPositive() {
		return 0
	}
	return subtotal.Div(ticketUnit).Floor().IntPart()
}

func isOffer(p domain.Product) bool {
	if !p.SpecialOffer {
		return false
	}
	return p.OfferType == "" || p.OfferType == domain.OfferBuy10Get2
}

// PriceLine prices one line against its catalog product.
func PriceLine(p domain.Product, quantity int) domain.ValidatedLineItem {
	item := domain.ValidatedLineItem{
		ProductID:        p.ID,
		Name:             p.Name,
		UnitPrice:        p.Price,
		OriginalQuantity: quantity,
	}
	if isOffer(p) {
		item.PaidQuantity, item.FreeQuantity = SplitOffer(quantity)
		item.Subtotal = p.Price.Mul(decimal.NewFromInt(int64(item.PaidQuantity)))
		item.TicketsEarned = TicketsFor(item.Subtotal) * offerTicketBonus
		return item
	}
	item.PaidQuantity = quantity
	item.Subtotal = p.Price.Mul(decimal.NewFromInt(int64(quantity)))
	item.TicketsEarned = TicketsFor(item.Subtotal)
	return item
}

// Compute prices every line and sums totals. Items must already reference catalog products.
func Compute(items []domain.CartLineItem, catalog Catalog) *domain.ValidatedCart {
	cart := &domain.ValidatedCart{
		Items: make([]domain.ValidatedLineItem, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, it := range items {
		line := PriceLine(catalog[it.ProductID], it.Quantity)
		cart.Items = append(cart.Items, line)
		cart.Total = cart.Total.Add(line.Subtotal)
		cart.TotalTickets += line.TicketsEarned
	}
	return cart
}

// Revalidate checks a raw cart against the catalog and prices it.
// The whole cart is rejected on the first bad line.
func Revalidate(items []domain.CartLineItem, catalog Catalog) (*domain.ValidatedCart, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, it := range items {
		if _, ok := catalog[it.ProductID]; !ok {
			return nil, domain.Reject(domain.ErrInvalidProduct, "invalid product: %s", it.ProductID)
		}
		if it.Quantity <= 0 || it.Quantity > MaxQuantity {
			return nil, domain.Reject(domain.ErrInvalidQuantity, "invalid quantity for product: %s", it.ProductID)
		}
	}

	cart := Compute(items, catalog)
	if !cart.Total.IsPositive() {
		return nil, domain.Reject(domain.ErrInvalidTotal, "invalid total: %s", cart.Total.StringFixed(2))
	}
	return cart, nil
}

// ToMinorUnits converts an amount to integer cents for processor APIs.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts stored cents back to a decimal amount.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
