package service

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
	"github.com/priyanshudas00/zippgo/pkg/auth"
)

type AuthSvc struct {
	repo       *repository.UserRepo
	jwt        *auth.Manager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthSvc(r *repository.UserRepo, jwtm *auth.Manager, accessTTL, refreshTTL time.Duration) *AuthSvc {
	return &AuthSvc{repo: r, jwt: jwtm, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Login verifies credentials and mints access/refresh tokens. Identity
// travels with the request from here on; nothing reads session globals.
func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	u, err := s.repo.ByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, "", "", apperrors.Unauthorized("invalid credentials")
		}
		return nil, "", "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", "", apperrors.Unauthorized("invalid credentials")
	}
	sub := strconv.FormatUint(uint64(u.ID), 10)
	access, err := s.jwt.CreateAccessToken(sub, string(u.Role), u.Name, s.accessTTL)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.jwt.CreateAccessToken(sub, string(u.Role), u.Name, s.refreshTTL)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}
