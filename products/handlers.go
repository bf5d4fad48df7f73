// Package products serves the catalog listing and product detail pages.
package products

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"freshbasket/catalog"
	"freshbasket/session"
	"freshbasket/store"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	catalog *catalog.Catalog
	timeout time.Duration
}

func NewHandler(cat *catalog.Catalog, timeout time.Duration) *Handler {
	return &Handler{catalog: cat, timeout: timeout}
}

// List handles GET /products?category=
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	session.FromContext(r.Context()).InitCart()
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.AllCategories
	}

	all, err := h.catalog.ListActive(ctx)
	if err != nil {
		log.Printf("Products list error: %v", err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load products"})
		return
	}
	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		log.Printf("Products categories error: %v", err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load products"})
		return
	}
	utils.RenderPage(w, r, http.StatusOK, "products", utils.M{
		"products":          catalog.FilterByCategory(all, category),
		"categories":        categories,
		"selected_category": category,
	})
}

// Detail handles GET /product/:id
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session.FromContext(r.Context()).InitCart()
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.Redirect(w, r, "/products", session.FlashDanger, "Product not found!")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	product, err := h.catalog.GetByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.Redirect(w, r, "/products", session.FlashDanger, "Product not found!")
	case err != nil:
		log.Printf("Product %d load error: %v", id, err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load product"})
	default:
		utils.RenderPage(w, r, http.StatusOK, "product_detail", utils.M{"product": product})
	}
}
