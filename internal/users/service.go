package users

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/pkg/metrics"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status")
)

// Service encapsulates user-related business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// SignUp creates a new account with status pending. Only sponsor and editor
// accounts can be created through signup; admins are provisioned out of band.
func (s *Service) SignUp(ctx context.Context, email, name, organization, password, role string) (*models.User, error) {
	if role != models.RoleSponsor && role != models.RoleEditor {
		return nil, ErrInvalidRole
	}
	if email == "" || name == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		Name:         name,
		Organization: organization,
		PasswordHash: string(hash),
		UserType:     role,
		UserStatus:   models.StatusPending,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	metrics.Signups.Inc()
	return u, nil
}

// Authenticate verifies the password for the given email.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAll returns every user ordered by id, for the admin views.
func (s *Service) ListAll(ctx context.Context) ([]models.User, error) {
	return s.repo.ListAll(ctx)
}

// ListEditors returns the editor accounts that populate the editor choice
// field on document forms.
func (s *Service) ListEditors(ctx context.Context) ([]models.User, error) {
	return s.repo.ListByType(ctx, models.RoleEditor)
}

// SetStatus applies an admin approval decision.
func (s *Service) SetStatus(ctx context.Context, id uint, status string) error {
	if status != models.StatusApproved && status != models.StatusRejected {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	metrics.UserStatusChanges.WithLabelValues(status).Inc()
	return nil
}
