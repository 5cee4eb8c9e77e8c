package auth

import (
	"context"
	"errors"

	"storefront/internal/models"
	"storefront/internal/store"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type ServiceImpl struct {
	store store.Store
}

func NewService(st store.Store) *ServiceImpl {
	return &ServiceImpl{store: st}
}

func (s *ServiceImpl) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same error as a wrong password: no enumeration signal.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *ServiceImpl) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return user, nil
}
