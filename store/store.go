// Package store holds the persistence ports of the storefront and their
// MongoDB and in-memory implementations.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"freshbasket/models"
)

var (
	// ErrNotFound means the key is absent.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate means a conditional insert found the key already present.
	ErrDuplicate = errors.New("store: duplicate key")
	// ErrLimitExceeded means an increment would take a quantity past its cap.
	ErrLimitExceeded = errors.New("store: quantity limit exceeded")
	// ErrUnavailable wraps every other failure of the backing store.
	ErrUnavailable = errors.New("store: unavailable")
)

// unavailable wraps err so that errors.Is(err, ErrUnavailable) holds while the
// driver error stays inspectable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// Products is the catalog store.
type Products interface {
	ListActive(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, productID string) (models.Product, error)
	Count(ctx context.Context) (total, active int, err error)
	// SeedIfEmpty inserts products only when the catalog holds nothing and
	// reports whether it did.
	SeedIfEmpty(ctx context.Context, products []models.Product) (bool, error)
}

// Accounts is the account store keyed by email.
type Accounts interface {
	// Create is a conditional insert; it returns ErrDuplicate when the email
	// is taken.
	Create(ctx context.Context, a models.Account) error
	Get(ctx context.Context, email string) (models.Account, error)
	UpdateProfile(ctx context.Context, email, name, phone, address string) error
	Count(ctx context.Context) (int, error)
}

// Carts is the persisted cart of authenticated users.
type Carts interface {
	List(ctx context.Context, email string) ([]models.CartLine, error)
	// Add increments the quantity of an existing line or inserts line as given.
	// It fails with ErrLimitExceeded, leaving the line untouched, when the
	// resulting quantity would pass limit.
	Add(ctx context.Context, line models.CartLine, limit int) error
	// Remove deletes a line; removing a missing line is not an error.
	Remove(ctx context.Context, email, productID string) error
}

// Orders is the order history.
type Orders interface {
	ListByUser(ctx context.Context, email string) ([]models.Order, error)
}

// Contacts is the append-only contact inbox.
type Contacts interface {
	Insert(ctx context.Context, m models.ContactMessage) error
	Recent(ctx context.Context, limit int) ([]models.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}

// NumericID converts a digit-string product key to its numeric form. Keys that
// are not numbers map to 0.
func NumericID(productID string) int {
	n, err := strconv.Atoi(productID)
	if err != nil {
		return 0
	}
	return n
}
