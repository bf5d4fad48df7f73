package middleware

import (
	"log"
	"net/http"
	"time"

	"freshbasket/session"
	"freshbasket/utils"

	"github.com/julienschmidt/httprouter"
)

// RequireLogin sends anonymous visitors to the login page.
func RequireLogin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !session.FromContext(r.Context()).IsLoggedIn() {
			utils.Redirect(w, r, "/login", session.FlashInfo, "Please login first!")
			return
		}
		next(w, r, ps)
	}
}

// RequireAdmin lets only admin sessions through; everyone else goes home.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !session.FromContext(r.Context()).IsAdmin() {
			utils.Redirect(w, r, "/", session.FlashDanger, "Access denied!")
			return
		}
		next(w, r, ps)
	}
}

// SecurityHeaders applies a set of recommended HTTP security headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		// pages carry session state
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logging logs each request method, path, status, remote address, and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d from %s – %v", r.Method, r.RequestURI, rec.status, r.RemoteAddr, time.Since(start))
	})
}
