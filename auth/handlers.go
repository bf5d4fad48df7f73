package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"freshbasket/session"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc      *Service
	sessions *session.Manager
	timeout  time.Duration
}

// NewHandler wires the register/login/logout pages. sessions may be nil, in
// which case the session id is kept across login.
func NewHandler(svc *Service, sessions *session.Manager, timeout time.Duration) *Handler {
	return &Handler{svc: svc, sessions: sessions, timeout: timeout}
}

// RegisterPage handles GET /register
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RenderPage(w, r, http.StatusOK, "register", nil)
}

// Register handles POST /register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		utils.Redirect(w, r, "/register", session.FlashDanger, "Invalid form submission")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	_, err := h.svc.Register(ctx, RegisterInput{
		Name:            r.PostForm.Get("name"),
		Email:           r.PostForm.Get("email"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirm_password"),
		Phone:           r.PostForm.Get("phone"),
		Address:         r.PostForm.Get("address"),
	})
	switch {
	case err == nil:
		utils.Redirect(w, r, "/login", session.FlashSuccess, "Registration successful! Please login.")
	case errors.Is(err, ErrPasswordMismatch):
		utils.Redirect(w, r, "/register", session.FlashDanger, "Passwords don't match!")
	case errors.Is(err, ErrAccountExists):
		utils.Redirect(w, r, "/login", session.FlashInfo, "User already exists!")
	case errors.Is(err, ErrInvalidInput):
		utils.Redirect(w, r, "/register", session.FlashDanger, FormMessage(err))
	default:
		log.Printf("Registration error: %v", err)
		utils.Redirect(w, r, "/register", session.FlashDanger, "Registration failed, please try again.")
	}
}

// LoginPage handles GET /login
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RenderPage(w, r, http.StatusOK, "login", nil)
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		utils.Redirect(w, r, "/login", session.FlashDanger, "Invalid form submission")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	account, err := h.svc.Login(ctx, r.PostForm.Get("email"), r.PostForm.Get("password"))
	switch {
	case errors.Is(err, ErrAccountNotFound):
		utils.Redirect(w, r, "/login", session.FlashDanger, "User not found!")
		return
	case errors.Is(err, ErrInvalidCredentials):
		utils.Redirect(w, r, "/login", session.FlashDanger, "Invalid password!")
		return
	case err != nil:
		log.Printf("Login error: %v", err)
		utils.Redirect(w, r, "/login", session.FlashDanger, "Login failed, please try again.")
		return
	}

	sess := session.FromContext(r.Context())
	if h.sessions != nil {
		if err := h.sessions.Renew(r.Context(), w, sess); err != nil {
			log.Printf("Login session renew: %v", err)
			utils.Redirect(w, r, "/login", session.FlashDanger, "Login failed, please try again.")
			return
		}
	}
	sess.Login(account)
	utils.Redirect(w, r, "/", session.FlashSuccess, "Welcome back, "+account.Name+"!")
}

// Logout handles GET /logout. The guest cart goes with the rest of the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session.FromContext(r.Context()).Clear()
	utils.Redirect(w, r, "/", session.FlashInfo, "Logged out successfully!")
}

// FormMessage renders an input error as a flash message.
func FormMessage(err error) string {
	var inErr *InputError
	if !errors.As(err, &inErr) || inErr.Reason == "" {
		return "Please check the form and try again."
	}
	return strings.ToUpper(inErr.Reason[:1]) + inErr.Reason[1:] + "."
}
