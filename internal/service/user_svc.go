package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
	"github.com/priyanshudas00/zippgo/internal/domain"
	"github.com/priyanshudas00/zippgo/internal/repository"
)

type UserSvc struct{ repo *repository.UserRepo }

func NewUserSvc(r *repository.UserRepo) *UserSvc { return &UserSvc{repo: r} }

type CreateUserInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	Role            string
	Address         string
	City            string
	ProfileImageURL string
}

func (s *UserSvc) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.MissingField("name")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, apperrors.MissingField("email")
	}
	if in.Password == "" {
		return nil, apperrors.MissingField("password")
	}
	role := in.Role
	if role == "" {
		role = string(domain.RoleRider)
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.Validation("invalid role: %s", role)
	}
	taken, err := s.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.DuplicateEmail(email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:            strings.TrimSpace(in.Name),
		Email:           email,
		Phone:           strings.TrimSpace(in.Phone),
		PasswordHash:    string(hash),
		Role:            domain.Role(role),
		Address:         in.Address,
		City:            in.City,
		ProfileImageURL: in.ProfileImageURL,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserSvc) Get(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.repo.ByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("user")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserSvc) List(ctx context.Context, limit, offset int, query, role string) ([]domain.User, error) {
	return s.repo.List(ctx, limit, offset, query, role)
}

func (s *UserSvc) Update(ctx context.Context, id uint, name, phone, address, city, avatar string) (*domain.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if name != "" {
		fields["name"] = name
	}
	if phone != "" {
		fields["phone"] = phone
	}
	if address != "" {
		fields["address"] = address
	}
	if city != "" {
		fields["city"] = city
	}
	if avatar != "" {
		fields["profile_image_url"] = avatar
	}
	if len(fields) == 0 {
		return s.Get(ctx, id)
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

func (s *UserSvc) Delete(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.repo.Delete(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound("user")
		}
		return nil, err
	}
	return u, nil
}
