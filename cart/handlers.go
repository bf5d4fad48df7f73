package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"freshbasket/session"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

// flexInt accepts a JSON number or a numeric string.
type flexInt struct {
	value int
	set   bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return errors.New("not an integer")
	}
	f.value, f.set = n, true
	return nil
}

type cartRequest struct {
	ProductID flexInt `json:"product_id"`
	Quantity  flexInt `json:"quantity"`
}

type Handler struct {
	svc     *Service
	timeout time.Duration
}

func NewHandler(svc *Service, timeout time.Duration) *Handler {
	return &Handler{svc: svc, timeout: timeout}
}

// View handles GET /cart
func (h *Handler) View(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := session.FromContext(r.Context())
	sess.InitCart()
	lines, err := h.svc.Lines(ctx, sess)
	if err != nil {
		log.Printf("Cart view error: %v", err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load cart"})
		return
	}
	utils.RenderPage(w, r, http.StatusOK, "cart", utils.M{
		"cart_items": lines,
		"total":      Total(lines),
		"item_count": Units(lines),
	})
}

// Add handles POST /add_to_cart
func (h *Handler) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.ProductID.set {
		utils.JSONResult(w, false, "Product not found", nil)
		return
	}
	qty := 1
	if req.Quantity.set {
		qty = req.Quantity.value
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := session.FromContext(r.Context())
	sess.InitCart()
	err := h.svc.Add(ctx, sess, req.ProductID.value, qty)
	switch {
	case err == nil:
		utils.JSONResult(w, true, "", nil)
	case errors.Is(err, ErrProductNotFound):
		utils.JSONResult(w, false, "Product not found", nil)
	case errors.Is(err, ErrInvalidQuantity):
		utils.JSONResult(w, false, "Quantity must be between 1 and 99", nil)
	default:
		log.Printf("Add to cart error: %v", err)
		utils.JSONResult(w, false, "Could not add to cart", nil)
	}
}

// Remove handles POST /remove_from_cart
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.ProductID.set {
		utils.JSONResult(w, false, "Invalid product", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.svc.Remove(ctx, session.FromContext(r.Context()), req.ProductID.value); err != nil {
		log.Printf("Remove from cart error: %v", err)
		utils.JSONResult(w, false, "Could not remove from cart", nil)
		return
	}
	utils.JSONResult(w, true, "", nil)
}
