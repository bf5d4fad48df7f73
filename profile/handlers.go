// Package profile serves the account pages of a logged-in shopper: profile,
// profile edits and order history.
package profile

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"freshbasket/auth"
	"freshbasket/session"
	"freshbasket/store"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

// RecentOrders is how many orders the profile page shows.
const RecentOrders = 5

type Handler struct {
	accounts *auth.Service
	orders   store.Orders
	timeout  time.Duration
}

func NewHandler(accounts *auth.Service, orders store.Orders, timeout time.Duration) *Handler {
	return &Handler{accounts: accounts, orders: orders, timeout: timeout}
}

// Profile handles GET /profile
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := session.FromContext(r.Context())
	account, err := h.accounts.Profile(ctx, sess.UserEmail)
	if err != nil {
		log.Printf("Profile load error for %s: %v", sess.UserEmail, err)
		utils.Redirect(w, r, "/", session.FlashDanger, "Error loading profile")
		return
	}
	orders, err := h.orders.ListByUser(ctx, sess.UserEmail)
	if err != nil {
		log.Printf("Profile orders error for %s: %v", sess.UserEmail, err)
		utils.Redirect(w, r, "/", session.FlashDanger, "Error loading profile")
		return
	}
	if len(orders) > RecentOrders {
		orders = orders[:RecentOrders]
	}
	utils.RenderPage(w, r, http.StatusOK, "profile", utils.M{
		"user":          account,
		"recent_orders": orders,
	})
}

// Update handles POST /update_profile
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		utils.Redirect(w, r, "/profile", session.FlashDanger, "Invalid form submission")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := session.FromContext(r.Context())
	in := auth.ProfileInput{
		Name:    r.PostForm.Get("name"),
		Phone:   r.PostForm.Get("phone"),
		Address: r.PostForm.Get("address"),
	}
	err := h.accounts.UpdateProfile(ctx, sess.UserEmail, in)
	switch {
	case err == nil:
		sess.SetUserName(strings.TrimSpace(in.Name))
		utils.Redirect(w, r, "/profile", session.FlashSuccess, "Profile updated successfully!")
	case errors.Is(err, auth.ErrInvalidInput):
		utils.Redirect(w, r, "/profile", session.FlashDanger, auth.FormMessage(err))
	default:
		log.Printf("Profile update error for %s: %v", sess.UserEmail, err)
		utils.Redirect(w, r, "/profile", session.FlashDanger, "Error updating profile")
	}
}

// Orders handles GET /my-orders
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sess := session.FromContext(r.Context())
	orders, err := h.orders.ListByUser(ctx, sess.UserEmail)
	if err != nil {
		log.Printf("Orders error for %s: %v", sess.UserEmail, err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load orders"})
		return
	}
	utils.RenderPage(w, r, http.StatusOK, "my_orders", utils.M{"orders": orders})
}
