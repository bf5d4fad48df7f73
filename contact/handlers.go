package contact

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"freshbasket/session"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc     *Service
	timeout time.Duration
}

func NewHandler(svc *Service, timeout time.Duration) *Handler {
	return &Handler{svc: svc, timeout: timeout}
}

// Page handles GET /contact
func (h *Handler) Page(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session.FromContext(r.Context()).InitCart()
	utils.RenderPage(w, r, http.StatusOK, "contact", nil)
}

// Send handles POST /contact
func (h *Handler) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		utils.Redirect(w, r, "/contact", session.FlashDanger, "Invalid form submission")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	_, err := h.svc.Submit(ctx, Form{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	})
	switch {
	case err == nil:
		utils.Redirect(w, r, "/contact", session.FlashSuccess, "Message sent successfully!")
	case errors.Is(err, ErrInvalidMessage):
		utils.Redirect(w, r, "/contact", session.FlashDanger, "Please fill in every field with a valid email.")
	default:
		log.Printf("Contact message error: %v", err)
		utils.Redirect(w, r, "/contact", session.FlashDanger, "Error sending message, please try again.")
	}
}
