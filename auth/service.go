package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"freshbasket/models"
	"freshbasket/store"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPasswordMismatch   = errors.New("passwords don't match")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// InputError describes the first failing form field. It matches
// ErrInvalidInput under errors.Is.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "invalid input: " + e.Reason }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string
	Phone           string
	Address         string
}

// ProfileInput is the profile edit form.
type ProfileInput struct {
	Name    string `validate:"required"`
	Phone   string
	Address string
}

type Service struct {
	accounts store.Accounts
	hasher   *PasswordHasher
	validate *validator.Validate
	now      func() time.Time
}

func NewService(accounts store.Accounts, hasher *PasswordHasher) *Service {
	return &Service{
		accounts: accounts,
		hasher:   hasher,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Register creates a customer account. The insert is conditional on the email
// being free, so concurrent registrations of one email have a single winner.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return models.Account{}, &InputError{Reason: describe(err)}
	}
	if in.Password != in.ConfirmPassword {
		return models.Account{}, ErrPasswordMismatch
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		Email:            in.Email,
		Name:             in.Name,
		Password:         hashed,
		Phone:            in.Phone,
		Address:          in.Address,
		UserType:         models.UserTypeCustomer,
		RegistrationDate: s.now().Format(models.TimeLayout),
		TotalOrders:      0,
		TotalSpent:       0,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Account{}, ErrAccountExists
		}
		return models.Account{}, err
	}
	return account, nil
}

// Login checks email and password and returns the account on success.
func (s *Service) Login(ctx context.Context, email, password string) (models.Account, error) {
	account, err := s.accounts.Get(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	if !s.hasher.Verify(password, account.Password) {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

// Profile loads an account.
func (s *Service) Profile(ctx context.Context, email string) (models.Account, error) {
	account, err := s.accounts.Get(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrAccountNotFound
	}
	return account, err
}

// UpdateProfile changes name, phone and address. Email and password are never
// touched.
func (s *Service) UpdateProfile(ctx context.Context, email string, in ProfileInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		return &InputError{Reason: describe(err)}
	}
	err := s.accounts.UpdateProfile(ctx, email, in.Name, in.Phone, in.Address)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}

// EnsureAdmin provisions an admin account if the email is not registered yet.
func (s *Service) EnsureAdmin(ctx context.Context, email, password, name string) error {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.accounts.Create(ctx, models.Account{
		Email:            email,
		Name:             name,
		Password:         hashed,
		UserType:         models.UserTypeAdmin,
		RegistrationDate: s.now().Format(models.TimeLayout),
	})
	if errors.Is(err, store.ErrDuplicate) {
		log.Printf("Admin account %s already exists", email)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("👤 Created admin account %s", email)
	return nil
}

// describe turns validator errors into a short human message.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if fe.Tag() == "email" {
		return "please enter a valid email address"
	}
	return field + " is required"
}
