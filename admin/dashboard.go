// Package admin serves the read-only store dashboard.
package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"freshbasket/catalog"
	"freshbasket/contact"
	"freshbasket/models"
	"freshbasket/store"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

// RecentMessages is how many contact messages the dashboard lists.
const RecentMessages = 10

// Summary is the dashboard view model.
type Summary struct {
	Products       int                     `json:"products"`
	ActiveProducts int                     `json:"active_products"`
	Accounts       int                     `json:"accounts"`
	Messages       int                     `json:"messages"`
	RecentMessages []models.ContactMessage `json:"recent_messages"`
}

type Handler struct {
	catalog  *catalog.Catalog
	accounts store.Accounts
	contacts *contact.Service
	timeout  time.Duration
}

func NewHandler(cat *catalog.Catalog, accounts store.Accounts, contacts *contact.Service, timeout time.Duration) *Handler {
	return &Handler{catalog: cat, accounts: accounts, contacts: contacts, timeout: timeout}
}

// Summarize collects the dashboard counters.
func (h *Handler) Summarize(ctx context.Context) (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.Products, s.ActiveProducts, err = h.catalog.Counts(ctx); err != nil {
		return Summary{}, err
	}
	if s.Accounts, err = h.accounts.Count(ctx); err != nil {
		return Summary{}, err
	}
	if s.Messages, err = h.contacts.Count(ctx); err != nil {
		return Summary{}, err
	}
	if s.RecentMessages, err = h.contacts.Recent(ctx, RecentMessages); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Dashboard handles GET /admin
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	summary, err := h.Summarize(ctx)
	if err != nil {
		log.Printf("Admin dashboard error: %v", err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load dashboard"})
		return
	}
	utils.RenderPage(w, r, http.StatusOK, "admin_dashboard", utils.M{"summary": summary})
}
