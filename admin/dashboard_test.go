package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"freshbasket/catalog"
	"freshbasket/contact"
	"freshbasket/models"
	"freshbasket/store"
)

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	cat := catalog.New(mem.Products(), nil)
	if err := cat.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	_ = mem.Accounts().Create(ctx, models.Account{Email: "a@example.com", Name: "A"})
	_ = mem.Accounts().Create(ctx, models.Account{Email: "b@example.com", Name: "B"})

	inbox := contact.NewService(mem.Contacts())
	for i := 0; i < 12; i++ {
		_, err := inbox.Submit(ctx, contact.Form{
			Name: "N", Email: "n@example.com", Subject: fmt.Sprintf("s%d", i), Message: "m",
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	h := NewHandler(cat, mem.Accounts(), inbox, time.Second)
	s, err := h.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.Products != len(catalog.SeedProducts) || s.ActiveProducts != len(catalog.SeedProducts) {
		t.Errorf("product counts = %d/%d", s.Products, s.ActiveProducts)
	}
	if s.Accounts != 2 || s.Messages != 12 {
		t.Errorf("accounts = %d, messages = %d", s.Accounts, s.Messages)
	}
	if len(s.RecentMessages) != RecentMessages || s.RecentMessages[0].Subject != "s11" {
		t.Errorf("unexpected recent messages %+v", s.RecentMessages)
	}
}
