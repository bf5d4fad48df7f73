package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"freshbasket/catalog"
	"freshbasket/models"
	"freshbasket/session"
	"freshbasket/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	cat := catalog.New(mem.Products(), nil)
	if err := cat.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	svc := NewService(cat, mem.Carts())
	svc.now = func() time.Time { return time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC) }
	return svc, mem
}

func customer() *session.Session {
	sess := session.New("sid")
	sess.Login(models.Account{Email: "c@example.com", Name: "C", UserType: models.UserTypeCustomer})
	return sess
}

func TestTotal(t *testing.T) {
	lines := []models.CartLine{{Price: 120, Quantity: 2}, {Price: 50, Quantity: 3}}
	if got := Total(lines); got != 390 {
		t.Fatalf("Total() = %d, want 390", got)
	}
	if got := Total(nil); got != 0 {
		t.Fatalf("Total(nil) = %d, want 0", got)
	}
	if got := Units(lines); got != 5 {
		t.Fatalf("Units() = %d, want 5", got)
	}
}

func TestGuestCart_AddTwiceThenRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sess := session.New("guest")
	sess.InitCart()

	if err := svc.Add(ctx, sess, 3, 2); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := svc.Add(ctx, sess, 3, 1); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	lines, _ := svc.Lines(ctx, sess)
	if len(lines) != 1 || lines[0].Quantity != 3 || lines[0].ID != 3 {
		t.Fatalf("expected one line with quantity 3, got %+v", lines)
	}
	if lines[0].Name != "Bananas" || lines[0].Price != 50 {
		t.Fatalf("line must snapshot the product, got %+v", lines[0])
	}
	if !sess.Modified() {
		t.Fatal("guest cart change must mark the session modified")
	}

	if err := svc.Remove(ctx, sess, 3); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if lines, _ := svc.Lines(ctx, sess); len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
	if err := svc.Remove(ctx, sess, 3); err != nil {
		t.Fatalf("removing a missing line must be a no-op, got %v", err)
	}
}

func TestAuthenticatedCart_AddTwiceThenRemove(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()
	sess := customer()

	for _, qty := range []int{1, 4} {
		if err := svc.Add(ctx, sess, 1, qty); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	lines, err := mem.Carts().List(ctx, "c@example.com")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 5 {
		t.Fatalf("expected one line with quantity 5, got %+v", lines)
	}
	if lines[0].ProductID != "1" || lines[0].AddedAt != "2025-05-02 08:00:00" {
		t.Fatalf("unexpected line %+v", lines[0])
	}
	if sess.GuestCart() != nil {
		t.Fatal("authenticated adds must not touch the guest cart")
	}

	if err := svc.Remove(ctx, sess, 1); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if lines, _ := svc.Lines(ctx, sess); len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestAdd_Rejections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sess := session.New("guest")

	if err := svc.Add(ctx, sess, 999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product: got %v", err)
	}
	if err := svc.Add(ctx, sess, 1, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity: got %v", err)
	}
	if err := svc.Add(ctx, sess, 1, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity: got %v", err)
	}
	if err := svc.Add(ctx, sess, 1, MaxQuantity+1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("quantity above the cap: got %v", err)
	}
	if len(sess.GuestCart()) != 0 {
		t.Fatalf("rejected adds must leave the cart alone, got %+v", sess.GuestCart())
	}
}

func TestAdd_QuantityCap(t *testing.T) {
	tests := []struct {
		name string
		sess func() *session.Session
	}{
		{name: "guest", sess: func() *session.Session { return session.New("guest") }},
		{name: "authenticated", sess: customer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := context.Background()
			sess := tt.sess()

			if err := svc.Add(ctx, sess, 1, math.MaxInt); !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("huge quantity: got %v", err)
			}
			if err := svc.Add(ctx, sess, 1, MaxQuantity); err != nil {
				t.Fatalf("Add() up to the cap error = %v", err)
			}
			if err := svc.Add(ctx, sess, 1, 1); !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("add past the cap: got %v", err)
			}

			lines, _ := svc.Lines(ctx, sess)
			if len(lines) != 1 || lines[0].Quantity != MaxQuantity {
				t.Fatalf("expected one line at the cap, got %+v", lines)
			}
			if total := Total(lines); total != int64(MaxQuantity)*120 {
				t.Fatalf("Total() = %d", total)
			}
		})
	}
}

func TestAddLine_RefusesOverflow(t *testing.T) {
	p := models.Product{ID: 1, Name: "Green Apples", Price: 120}
	lines, err := AddLine(nil, p, MaxQuantity-1)
	if err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	lines, err = AddLine(lines, p, 2)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if lines[0].Quantity != MaxQuantity-1 {
		t.Fatalf("refused add changed the line: %+v", lines[0])
	}
	if _, err := AddLine(nil, p, math.MaxInt); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestGuestLinesKeepAddTimePrice(t *testing.T) {
	p := models.Product{ID: 7, Name: "Watermelon", Price: 30, Unit: "kg"}
	lines, _ := AddLine(nil, p, 1)
	p.Price = 45
	lines, _ = AddLine(lines, p, 1)
	if len(lines) != 1 || lines[0].Price != 30 || lines[0].Quantity != 2 {
		t.Fatalf("price must stay at its add-time value, got %+v", lines)
	}
}

func serve(h func(http.ResponseWriter, *http.Request), sess *session.Session, body string) map[string]any {
	req := httptest.NewRequest(http.MethodPost, "/add_to_cart", strings.NewReader(body))
	req = req.WithContext(session.NewContext(req.Context(), sess))
	rec := httptest.NewRecorder()
	h(rec, req)
	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}

func TestHandlers(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHandler(svc, time.Second)
	sess := session.New("guest")
	add := func(w http.ResponseWriter, r *http.Request) { h.Add(w, r, nil) }
	remove := func(w http.ResponseWriter, r *http.Request) { h.Remove(w, r, nil) }

	tests := []struct {
		name    string
		handler func(http.ResponseWriter, *http.Request)
		body    string
		success bool
		message string
	}{
		{name: "numeric id", handler: add, body: `{"product_id": 2, "quantity": 2}`, success: true},
		{name: "string id, default quantity", handler: add, body: `{"product_id": "2"}`, success: true},
		{name: "unknown product", handler: add, body: `{"product_id": 404}`, message: "Product not found"},
		{name: "missing product", handler: add, body: `{}`, message: "Product not found"},
		{name: "zero quantity", handler: add, body: `{"product_id": 2, "quantity": 0}`, message: "Quantity must be between 1 and 99"},
		{name: "remove", handler: remove, body: `{"product_id": "2"}`, success: true},
		{name: "remove again", handler: remove, body: `{"product_id": 2}`, success: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := serve(tt.handler, sess, tt.body)
			if out["success"] != tt.success {
				t.Fatalf("success = %v, want %v (%v)", out["success"], tt.success, out)
			}
			if tt.message != "" && out["message"] != tt.message {
				t.Fatalf("message = %v, want %q", out["message"], tt.message)
			}
		})
		if tt.name == "string id, default quantity" {
			if got := sess.GuestCart(); len(got) != 1 || got[0].Quantity != 3 {
				t.Fatalf("expected one line of 3 after two adds, got %+v", got)
			}
		}
	}
	if len(sess.GuestCart()) != 0 {
		t.Fatalf("expected empty cart after removal, got %+v", sess.GuestCart())
	}
}

// brokenCarts fails every call the way an unreachable database does.
type brokenCarts struct{}

func (brokenCarts) List(context.Context, string) ([]models.CartLine, error) {
	return nil, fmt.Errorf("list cart: %w", store.ErrUnavailable)
}

func (brokenCarts) Add(context.Context, models.CartLine, int) error {
	return fmt.Errorf("add cart line: %w", store.ErrUnavailable)
}

func (brokenCarts) Remove(context.Context, string, string) error {
	return fmt.Errorf("remove cart line: %w", store.ErrUnavailable)
}

func TestHandlers_StoreUnavailable(t *testing.T) {
	mem := store.NewMemory()
	cat := catalog.New(mem.Products(), nil)
	if err := cat.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	h := NewHandler(NewService(cat, brokenCarts{}), time.Second)
	sess := customer()

	out := serve(func(w http.ResponseWriter, r *http.Request) { h.Add(w, r, nil) }, sess, `{"product_id": 1}`)
	if out["success"] != false || out["message"] != "Could not add to cart" {
		t.Fatalf("unexpected add response %v", out)
	}
	out = serve(func(w http.ResponseWriter, r *http.Request) { h.Remove(w, r, nil) }, sess, `{"product_id": 1}`)
	if out["success"] != false || out["message"] != "Could not remove from cart" {
		t.Fatalf("unexpected remove response %v", out)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req = req.WithContext(session.NewContext(req.Context(), sess))
	rec := httptest.NewRecorder()
	h.View(rec, req, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("cart view status = %d, want 500", rec.Code)
	}
}
