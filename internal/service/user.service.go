package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/pkg/id"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

// UserStore is the persistence surface shared by the admin user service
// and the auth service.
type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	SetActive(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
	CountOwnedRecords(ctx context.Context, userID string) (int, error)
}

// UserService holds the admin-only account lifecycle operations. Route-level
// middleware enforces the admin capability before any of these run.
type UserService struct {
	repo UserStore
	sf   *id.Snowflake
	now  func() time.Time
}

func NewUserService(repo UserStore, sf *id.Snowflake) *UserService {
	return &UserService{
		repo: repo,
		sf:   sf,
		now:  time.Now,
	}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if err := validateNewUser(req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleAgent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           s.sf.Generate(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive toggles the flag and returns the updated account. Deactivation
// takes effect on the user's next request: identity resolution re-checks
// the flag every time.
func (s *UserService) SetActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	if err := s.repo.SetActive(ctx, userID, isActive); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}

// Delete removes an account. Accounts that still own leads or customers
// are refused so no record is left pointing at a missing owner.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}
	owned, err := s.repo.CountOwnedRecords(ctx, userID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return xerrors.ErrUserHasRecords
	}
	return s.repo.Delete(ctx, userID)
}
