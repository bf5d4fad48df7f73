package routes

import (
	"fmt"
	"log"
	"net/http"

	"freshbasket/admin"
	"freshbasket/auth"
	"freshbasket/cart"
	"freshbasket/contact"
	"freshbasket/home"
	"freshbasket/middleware"
	"freshbasket/products"
	"freshbasket/profile"
	"freshbasket/ratelim"
	"freshbasket/recipes"
	"freshbasket/session"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers bundles the page and API handlers served by the router.
type Handlers struct {
	Home     *home.Handler
	Products *products.Handler
	Auth     *auth.Handler
	Cart     *cart.Handler
	Recipes  *recipes.Handler
	Contact  *contact.Handler
	Profile  *profile.Handler
	Admin    *admin.Handler
}

// Router wires every route. All routes run inside the session middleware.
type Router struct {
	router   *httprouter.Router
	sessions *session.Manager
	limiter  *ratelim.RateLimiter
}

// New builds the storefront router.
func New(h Handlers, sessions *session.Manager, limiter *ratelim.RateLimiter) *httprouter.Router {
	rt := &Router{router: httprouter.New(), sessions: sessions, limiter: limiter}

	rt.router.GET("/health", Index)
	rt.AddHomeRoutes(h.Home, h.Products)
	rt.AddAuthRoutes(h.Auth)
	rt.AddCartRoutes(h.Cart)
	rt.AddRecipeRoutes(h.Recipes)
	rt.AddContactRoutes(h.Contact)
	rt.AddProfileRoutes(h.Profile)
	rt.AddAdminRoutes(h.Admin)

	rt.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt.sessions.Middleware(NotFound)(w, r, nil)
	})
	rt.router.PanicHandler = Internal
	return rt.router
}

func (rt *Router) handle(method, path string, h httprouter.Handle) {
	rt.router.Handle(method, path, rt.sessions.Middleware(h))
}

func (rt *Router) AddHomeRoutes(hh *home.Handler, ph *products.Handler) {
	rt.handle(http.MethodGet, "/", hh.Index)
	rt.handle(http.MethodGet, "/products", ph.List)
	rt.handle(http.MethodGet, "/product/:id", ph.Detail)
}

func (rt *Router) AddAuthRoutes(h *auth.Handler) {
	rt.handle(http.MethodGet, "/register", h.RegisterPage)
	rt.handle(http.MethodPost, "/register", rt.limiter.Limit(h.Register))
	rt.handle(http.MethodGet, "/login", h.LoginPage)
	rt.handle(http.MethodPost, "/login", rt.limiter.Limit(h.Login))
	rt.handle(http.MethodGet, "/logout", h.Logout)
}

func (rt *Router) AddCartRoutes(h *cart.Handler) {
	rt.handle(http.MethodGet, "/cart", h.View)
	rt.handle(http.MethodPost, "/add_to_cart", h.Add)
	rt.handle(http.MethodPost, "/remove_from_cart", h.Remove)
}

func (rt *Router) AddRecipeRoutes(h *recipes.Handler) {
	rt.handle(http.MethodGet, "/ai_assistant", h.Assistant)
	rt.handle(http.MethodPost, "/generate_recipe", rt.limiter.Limit(h.Suggest))
}

func (rt *Router) AddContactRoutes(h *contact.Handler) {
	rt.handle(http.MethodGet, "/contact", h.Page)
	rt.handle(http.MethodPost, "/contact", rt.limiter.Limit(h.Send))
}

func (rt *Router) AddProfileRoutes(h *profile.Handler) {
	rt.handle(http.MethodGet, "/profile", middleware.RequireLogin(h.Profile))
	rt.handle(http.MethodPost, "/update_profile", middleware.RequireLogin(h.Update))
	rt.handle(http.MethodGet, "/my-orders", middleware.RequireLogin(h.Orders))
}

func (rt *Router) AddAdminRoutes(h *admin.Handler) {
	rt.handle(http.MethodGet, "/admin", middleware.RequireAdmin(h.Dashboard))
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// NotFound renders the 404 page.
func NotFound(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RenderPage(w, r, http.StatusNotFound, "404", nil)
}

// Internal renders the 500 page after a handler panic.
func Internal(w http.ResponseWriter, r *http.Request, rcv interface{}) {
	log.Printf("❌ panic serving %s %s: %v", r.Method, r.URL.Path, rcv)
	utils.RenderPage(w, r, http.StatusInternalServerError, "500", nil)
}
