package service

import (
	"context"
	"errors"

	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("invalid role")

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

type UpdateUserInput struct {
	Name *string
	Bio  *string
	Role *domain.Role
}

type UpdateProfileInput struct {
	Name *string
	Bio  *string
}

func (s *UserService) List(ctx context.Context, identity domain.Identity) ([]*domain.User, error) {
	if !domain.IsAdmin(identity) {
		return nil, domain.ErrForbidden
	}
	return s.userRepo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, identity domain.Identity, input CreateUserInput) (*domain.User, error) {
	if !domain.IsAdmin(identity) {
		return nil, domain.ErrForbidden
	}
	if !input.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, identity domain.Identity, id uint, input UpdateUserInput) (*domain.User, error) {
	if !domain.IsAdmin(identity) {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Role != nil && !input.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile edits the caller's own record. The route is gated on the
// ADMIN role.
func (s *UserService) UpdateProfile(ctx context.Context, identity domain.Identity, input UpdateProfileInput) (*domain.User, error) {
	if !domain.IsAdmin(identity) {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
