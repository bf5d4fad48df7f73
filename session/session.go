// Package session carries per-request shopper state: identity, the guest
// cart and pending flash messages. A session is persisted server side and
// referenced by a signed cookie.
package session

import (
	"context"

	"freshbasket/models"
)

// Flash categories.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashDanger  = "danger"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type Session struct {
	ID        string            `json:"-"`
	UserEmail string            `json:"user_email,omitempty"`
	UserName  string            `json:"user_name,omitempty"`
	UserType  string            `json:"user_type,omitempty"`
	Cart      []models.CartLine `json:"cart"` // nil until initialized
	Flashes   []Flash           `json:"flashes,omitempty"`

	modified bool
}

func New(id string) *Session {
	return &Session{ID: id}
}

func (s *Session) IsLoggedIn() bool { return s.UserEmail != "" }

func (s *Session) IsAdmin() bool {
	return s.IsLoggedIn() && s.UserType == models.UserTypeAdmin
}

// Modified reports whether the session must be written back.
func (s *Session) Modified() bool { return s.modified }

// Login records the identity of an authenticated account.
func (s *Session) Login(a models.Account) {
	s.UserEmail = a.Email
	s.UserName = a.Name
	s.UserType = a.UserType
	if s.UserType == "" {
		s.UserType = models.UserTypeCustomer
	}
	s.modified = true
}

func (s *Session) SetUserName(name string) {
	s.UserName = name
	s.modified = true
}

// Clear drops identity, guest cart and flashes.
func (s *Session) Clear() {
	id := s.ID
	*s = Session{ID: id, modified: true}
}

// InitCart gives an anonymous session an empty guest cart if it has none.
func (s *Session) InitCart() {
	if !s.IsLoggedIn() && s.Cart == nil {
		s.Cart = []models.CartLine{}
		s.modified = true
	}
}

// GuestCart returns the guest cart lines.
func (s *Session) GuestCart() []models.CartLine {
	return s.Cart
}

func (s *Session) SetGuestCart(lines []models.CartLine) {
	if lines == nil {
		lines = []models.CartLine{}
	}
	s.Cart = lines
	s.modified = true
}

func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
	s.modified = true
}

// PopFlashes returns and clears pending flash messages.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	if len(flashes) > 0 {
		s.Flashes = nil
		s.modified = true
	}
	if flashes == nil {
		flashes = []Flash{}
	}
	return flashes
}

type ctxKey struct{}

// NewContext returns ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request session. Outside the session middleware it
// returns a fresh, unsaved session so callers never see nil.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
		return s
	}
	return New("")
}
