// Package cart keeps the shopping cart of a request's session: the guest cart
// stored in the session itself, or the persisted cart of the logged-in account.
package cart

import (
	"context"
	"errors"
	"strconv"
	"time"

	"freshbasket/catalog"
	"freshbasket/models"
	"freshbasket/session"
	"freshbasket/store"
)

// MaxQuantity caps the units of one product in a cart.
const MaxQuantity = 99

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")
	ErrProductNotFound = errors.New("product not found")
)

type Service struct {
	catalog *catalog.Catalog
	carts   store.Carts
	now     func() time.Time
}

func NewService(cat *catalog.Catalog, carts store.Carts) *Service {
	return &Service{catalog: cat, carts: carts, now: time.Now}
}

// Total is the sum of price times quantity over lines.
func Total(lines []models.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// Units counts the items across lines.
func Units(lines []models.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// AddLine adds qty of p to a guest cart, merging into an existing line for the
// same product. New lines snapshot the product's name, price, unit and image.
// A line may not grow past MaxQuantity.
func AddLine(lines []models.CartLine, p models.Product, qty int) ([]models.CartLine, error) {
	if qty < 1 || qty > MaxQuantity {
		return lines, ErrInvalidQuantity
	}
	for i := range lines {
		if lines[i].ID == p.ID {
			if lines[i].Quantity > MaxQuantity-qty {
				return lines, ErrInvalidQuantity
			}
			lines[i].Quantity += qty
			return lines, nil
		}
	}
	return append(lines, models.CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Unit:     p.Unit,
		Quantity: qty,
		Image:    p.Image,
	}), nil
}

// RemoveLine drops the line for product id from a guest cart.
func RemoveLine(lines []models.CartLine, id int) []models.CartLine {
	kept := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return kept
}

// Lines returns the cart of the session: the account's persisted lines when
// logged in, otherwise the guest cart.
func (s *Service) Lines(ctx context.Context, sess *session.Session) ([]models.CartLine, error) {
	if !sess.IsLoggedIn() {
		lines := sess.GuestCart()
		if lines == nil {
			lines = []models.CartLine{}
		}
		return lines, nil
	}
	return s.carts.List(ctx, sess.UserEmail)
}

// Add puts qty units of product id into the session's cart.
func (s *Service) Add(ctx context.Context, sess *session.Session, id, qty int) error {
	if qty < 1 || qty > MaxQuantity {
		return ErrInvalidQuantity
	}
	product, err := s.catalog.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	if !sess.IsLoggedIn() {
		lines, err := AddLine(sess.GuestCart(), product, qty)
		if err != nil {
			return err
		}
		sess.SetGuestCart(lines)
		return nil
	}
	err = s.carts.Add(ctx, models.CartLine{
		UserEmail: sess.UserEmail,
		ProductID: product.ProductID,
		Name:      product.Name,
		Price:     product.Price,
		Unit:      product.Unit,
		Quantity:  qty,
		Image:     product.Image,
		AddedAt:   s.now().Format(models.TimeLayout),
	}, MaxQuantity)
	if errors.Is(err, store.ErrLimitExceeded) {
		return ErrInvalidQuantity
	}
	return err
}

// Remove deletes the line for product id. A missing line is not an error.
func (s *Service) Remove(ctx context.Context, sess *session.Session, id int) error {
	if !sess.IsLoggedIn() {
		sess.SetGuestCart(RemoveLine(sess.GuestCart(), id))
		return nil
	}
	return s.carts.Remove(ctx, sess.UserEmail, strconv.Itoa(id))
}
