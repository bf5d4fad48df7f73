package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// CookieName is the name of the session cookie.
const CookieName = "fb_session"

// ErrInvalidToken means the cookie value is not a session token signed by us.
var ErrInvalidToken = errors.New("session: invalid token")

// claims is the payload of the cookie token.
type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager loads and saves sessions around each request.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, secret []byte, ttl time.Duration, secureCookies bool) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl, secure: secureCookies}
}

// Middleware attaches the caller's session to the request context, creating
// one when the cookie is missing, forged or expired, and writes it back after
// the handler if it changed.
func (m *Manager) Middleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess := m.load(r)
		if sess == nil {
			var err error
			if sess, err = m.start(w); err != nil {
				log.Printf("session start: %v", err)
				http.Error(w, "Session unavailable", http.StatusInternalServerError)
				return
			}
		}

		next(w, r.WithContext(NewContext(r.Context(), sess)), ps)

		if sess.Modified() {
			if err := m.store.Save(context.WithoutCancel(r.Context()), sess, m.ttl); err != nil {
				log.Printf("session save %s: %v", sess.ID, err)
			}
		}
	}
}

func (m *Manager) load(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	id, err := m.parse(cookie.Value)
	if err != nil {
		return nil
	}
	sess, err := m.store.Load(r.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("session load %s: %v", id, err)
		}
		return nil
	}
	return sess
}

func (m *Manager) start(w http.ResponseWriter) (*Session, error) {
	sess := New(uuid.NewString())
	if err := m.setCookie(w, sess.ID); err != nil {
		return nil, err
	}
	return sess, nil
}

// Renew moves sess to a fresh id and drops the old one. Call it before the
// response is written, e.g. right after login.
func (m *Manager) Renew(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	old := sess.ID
	sess.ID = uuid.NewString()
	sess.modified = true
	if err := m.setCookie(w, sess.ID); err != nil {
		return err
	}
	if old != "" {
		if err := m.store.Delete(ctx, old); err != nil {
			log.Printf("session delete %s: %v", old, err)
		}
	}
	return nil
}

func (m *Manager) setCookie(w http.ResponseWriter, id string) error {
	token, err := m.sign(id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) sign(id string) (string, error) {
	now := time.Now()
	c := &claims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

func (m *Manager) parse(tokenString string) (string, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || c.SessionID == "" {
		return "", ErrInvalidToken
	}
	return c.SessionID, nil
}
