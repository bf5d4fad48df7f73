// Package home serves the storefront landing page.
package home

import (
	"context"
	"log"
	"net/http"
	"time"

	"freshbasket/catalog"
	"freshbasket/session"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

// FeaturedCount is how many products the landing page shows.
const FeaturedCount = 8

type Handler struct {
	catalog *catalog.Catalog
	timeout time.Duration
}

func NewHandler(cat *catalog.Catalog, timeout time.Duration) *Handler {
	return &Handler{catalog: cat, timeout: timeout}
}

// Index handles GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	session.FromContext(r.Context()).InitCart()
	products, err := h.catalog.Featured(ctx, FeaturedCount)
	if err != nil {
		log.Printf("Home products error: %v", err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load products"})
		return
	}
	utils.RenderPage(w, r, http.StatusOK, "index", utils.M{"products": products})
}
