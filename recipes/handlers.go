package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"freshbasket/catalog"
	"freshbasket/session"
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

// Assistant handles GET /ai_assistant
func (h *Handler) Assistant(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	session.FromContext(r.Context()).InitCart()
	products, err := h.catalog.ListActive(ctx)
	if err != nil {
		log.Printf("Recipe assistant products error: %v", err)
		utils.RenderPage(w, r, http.StatusInternalServerError, "error", utils.M{"error": "Could not load products"})
		return
	}
	utils.RenderPage(w, r, http.StatusOK, "ai_assistant", utils.M{"products": products})
}

// Suggest handles POST /generate_recipe
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONResult(w, false, "Select ingredients", nil)
		return
	}
	recipe, err := Generate(req.Ingredients)
	if errors.Is(err, ErrNoIngredients) {
		utils.JSONResult(w, false, "Select ingredients", nil)
		return
	}
	utils.JSONResult(w, true, "", utils.M{"recipe": recipe})
}
