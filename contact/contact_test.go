package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"freshbasket/session"
	"freshbasket/store"
)

func newTestService() (*Service, *store.MemoryContacts) {
	contacts := store.NewMemory().Contacts()
	svc := NewService(contacts)
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, contacts
}

func TestSubmit(t *testing.T) {
	svc, contacts := newTestService()
	ctx := context.Background()

	msg, err := svc.Submit(ctx, Form{Name: "Ravi", Email: "ravi@example.com", Subject: "Delivery", Message: "When?"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if msg.MessageID == "" || msg.Date != "2025-01-02 03:04:05" {
		t.Fatalf("unexpected message %+v", msg)
	}
	recent, _ := contacts.Recent(ctx, 10)
	if len(recent) != 1 || recent[0].MessageID != msg.MessageID {
		t.Fatalf("message not stored: %+v", recent)
	}
}

func TestSubmit_IDsAreUnique(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	form := Form{Name: "A", Email: "a@example.com", Subject: "S", Message: "M"}
	a, _ := svc.Submit(ctx, form)
	b, _ := svc.Submit(ctx, form)
	if a.MessageID == b.MessageID {
		t.Fatal("each message needs its own id")
	}
	if n, _ := svc.Count(ctx); n != 2 {
		t.Fatalf("Count() = %d, want 2", n)
	}
}

func TestSubmit_Invalid(t *testing.T) {
	tests := []struct {
		name string
		form Form
	}{
		{name: "empty", form: Form{}},
		{name: "blank message", form: Form{Name: "A", Email: "a@example.com", Subject: "S", Message: "  "}},
		{name: "bad email", form: Form{Name: "A", Email: "nope", Subject: "S", Message: "M"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, contacts := newTestService()
			if _, err := svc.Submit(context.Background(), tt.form); !errors.Is(err, ErrInvalidMessage) {
				t.Fatalf("Submit() error = %v, want ErrInvalidMessage", err)
			}
			if n, _ := contacts.Count(context.Background()); n != 0 {
				t.Fatalf("invalid message stored")
			}
		})
	}
}

func TestSendHandler(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc, time.Second)

	form := url.Values{"name": {"A"}, "email": {"a@example.com"}, "subject": {"S"}, "message": {"M"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	sess := session.New("sid")
	req = req.WithContext(session.NewContext(req.Context(), sess))
	rec := httptest.NewRecorder()

	h.Send(rec, req, nil)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/contact" {
		t.Fatalf("expected 303 to /contact, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	flashes := sess.PopFlashes()
	if len(flashes) != 1 || flashes[0].Message != "Message sent successfully!" || flashes[0].Category != session.FlashSuccess {
		t.Fatalf("unexpected flashes %+v", flashes)
	}
}
