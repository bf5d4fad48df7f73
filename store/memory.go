package store

import (
	"context"
	"sort"
	"sync"

	"freshbasket/models"
)

// Memory keeps every collection in process. It backs STORE_BACKEND=memory and
// the tests; all methods are safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	products map[string]models.Product
	accounts map[string]models.Account
	carts    map[string]map[string]models.CartLine // email -> product id -> line
	orders   map[string]models.Order
	messages []models.ContactMessage
}

func NewMemory() *Memory {
	return &Memory{
		products: make(map[string]models.Product),
		accounts: make(map[string]models.Account),
		carts:    make(map[string]map[string]models.CartLine),
		orders:   make(map[string]models.Order),
	}
}

// Ensure interfaces
var (
	_ Products = (*MemoryProducts)(nil)
	_ Accounts = (*MemoryAccounts)(nil)
	_ Carts    = (*MemoryCarts)(nil)
	_ Orders   = (*MemoryOrders)(nil)
	_ Contacts = (*MemoryContacts)(nil)
)

type (
	MemoryProducts struct{ m *Memory }
	MemoryAccounts struct{ m *Memory }
	MemoryCarts    struct{ m *Memory }
	MemoryOrders   struct{ m *Memory }
	MemoryContacts struct{ m *Memory }
)

func (m *Memory) Products() *MemoryProducts { return &MemoryProducts{m} }
func (m *Memory) Accounts() *MemoryAccounts { return &MemoryAccounts{m} }
func (m *Memory) Carts() *MemoryCarts       { return &MemoryCarts{m} }
func (m *Memory) Orders() *MemoryOrders     { return &MemoryOrders{m} }
func (m *Memory) Contacts() *MemoryContacts { return &MemoryContacts{m} }

// Products

func (s *MemoryProducts) ListActive(ctx context.Context) ([]models.Product, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.Product, 0, len(s.m.products))
	for _, p := range s.m.products {
		if !p.Active {
			continue
		}
		p.ID = NumericID(p.ProductID)
		out = append(out, p)
	}
	SortProducts(out)
	return out, nil
}

func (s *MemoryProducts) Get(ctx context.Context, productID string) (models.Product, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	p, ok := s.m.products[productID]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	p.ID = NumericID(p.ProductID)
	return p, nil
}

func (s *MemoryProducts) Count(ctx context.Context) (int, int, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	active := 0
	for _, p := range s.m.products {
		if p.Active {
			active++
		}
	}
	return len(s.m.products), active, nil
}

func (s *MemoryProducts) SeedIfEmpty(ctx context.Context, products []models.Product) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if len(s.m.products) > 0 {
		return false, nil
	}
	for _, p := range products {
		s.m.products[p.ProductID] = p
	}
	return true, nil
}

// Accounts

func (s *MemoryAccounts) Create(ctx context.Context, a models.Account) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.accounts[a.Email]; ok {
		return ErrDuplicate
	}
	s.m.accounts[a.Email] = a
	return nil
}

func (s *MemoryAccounts) Get(ctx context.Context, email string) (models.Account, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	a, ok := s.m.accounts[email]
	if !ok {
		return models.Account{}, ErrNotFound
	}
	return a, nil
}

func (s *MemoryAccounts) UpdateProfile(ctx context.Context, email, name, phone, address string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	a, ok := s.m.accounts[email]
	if !ok {
		return ErrNotFound
	}
	a.Name, a.Phone, a.Address = name, phone, address
	s.m.accounts[email] = a
	return nil
}

func (s *MemoryAccounts) Count(ctx context.Context) (int, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	return len(s.m.accounts), nil
}

// Carts

func (s *MemoryCarts) List(ctx context.Context, email string) ([]models.CartLine, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	lines := make([]models.CartLine, 0, len(s.m.carts[email]))
	for _, l := range s.m.carts[email] {
		l.ID = NumericID(l.ProductID)
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].AddedAt != lines[j].AddedAt {
			return lines[i].AddedAt < lines[j].AddedAt
		}
		return lines[i].ID < lines[j].ID
	})
	return lines, nil
}

func (s *MemoryCarts) Add(ctx context.Context, line models.CartLine, limit int) error {
	if line.Quantity > limit {
		return ErrLimitExceeded
	}
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	userCart, ok := s.m.carts[line.UserEmail]
	if !ok {
		userCart = make(map[string]models.CartLine)
		s.m.carts[line.UserEmail] = userCart
	}
	if existing, ok := userCart[line.ProductID]; ok {
		if existing.Quantity > limit-line.Quantity {
			return ErrLimitExceeded
		}
		existing.Quantity += line.Quantity
		userCart[line.ProductID] = existing
		return nil
	}
	userCart[line.ProductID] = line
	return nil
}

func (s *MemoryCarts) Remove(ctx context.Context, email, productID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.carts[email], productID)
	return nil
}

// Orders

func (s *MemoryOrders) ListByUser(ctx context.Context, email string) ([]models.Order, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.Order, 0)
	for _, o := range s.m.orders {
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

// Put stores an order. No storefront route calls it.
func (s *MemoryOrders) Put(o models.Order) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.orders[o.OrderID] = o
}

// Contacts

func (s *MemoryContacts) Insert(ctx context.Context, msg models.ContactMessage) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.messages {
		if existing.MessageID == msg.MessageID {
			return ErrDuplicate
		}
	}
	s.m.messages = append(s.m.messages, msg)
	return nil
}

func (s *MemoryContacts) Recent(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.ContactMessage, 0, limit)
	for i := len(s.m.messages) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.m.messages[i])
	}
	return out, nil
}

func (s *MemoryContacts) Count(ctx context.Context) (int, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	return len(s.m.messages), nil
}

// SortProducts orders products by ascending numeric id.
func SortProducts(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool { return products[i].ID < products[j].ID })
}
