package services

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"bilhete-backend/internal/models"
	"bilhete-backend/internal/repository"
)

// ErrEmailExists is returned for every failed registration insert. The store
// error behind it is logged, not returned.
var ErrEmailExists = errors.New("email already exists")

// UserStore is the persistence needed by UserService.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordDigest *string) (*models.User, error)
}

type UserService struct {
	store  UserStore
	hasher PasswordHasher
}

func NewUserService(store UserStore, hasher PasswordHasher) *UserService {
	return &UserService{
		store:  store,
		hasher: hasher,
	}
}

// Register digests the password and inserts the user. Fields are not
// validated; nil values go to the store as NULL.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var digest *string
	if req.Senha != nil {
		d, err := s.hasher.Digest(*req.Senha)
		if err != nil {
			log.WithError(err).Error("Failed to digest password")
			return nil, ErrEmailExists
		}
		digest = &d
	}

	user, err := s.store.Create(ctx, req.Nome, req.Email, digest)
	if err != nil {
		entry := log.WithError(err)
		if req.Email != nil {
			entry = entry.WithField("email", *req.Email)
		}
		if repository.IsUniqueViolation(err) {
			entry.Info("Registration rejected: email already registered")
		} else {
			entry.Warn("Registration failed at the store")
		}
		return nil, ErrEmailExists
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}
