package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service wraps repository operations with business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// CreateSession stores a new session for the user and returns its id
func (s *Service) CreateSession(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return sess.ID, nil
}

// ValidateSession returns the session if the id is known and not expired
func (s *Service) ValidateSession(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		// cleanup expired session
		_ = s.repo.DeleteByID(ctx, id)
		return nil, nil
	}
	return sess, nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
