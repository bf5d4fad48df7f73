// Package contact stores messages sent through the contact form.
package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"freshbasket/models"
	"freshbasket/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrInvalidMessage = errors.New("all contact fields are required")

type Form struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

type Service struct {
	messages store.Contacts
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewService(messages store.Contacts) *Service {
	return &Service{
		messages: messages,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit validates and stores a message.
func (s *Service) Submit(ctx context.Context, f Form) (models.ContactMessage, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	if err := s.validate.Struct(f); err != nil {
		return models.ContactMessage{}, ErrInvalidMessage
	}

	msg := models.ContactMessage{
		MessageID: s.newID(),
		Name:      f.Name,
		Email:     f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		Date:      s.now().Format(models.TimeLayout),
	}
	if err := s.messages.Insert(ctx, msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

// Recent returns up to limit messages, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	return s.messages.Recent(ctx, limit)
}

// Count returns the number of stored messages.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.messages.Count(ctx)
}
