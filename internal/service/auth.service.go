package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/pkg/id"
	"github.com/siddhivinayaka18/afh-crm/pkg/jwtutil"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

type AuthService struct {
	repo   UserStore
	tokens *jwtutil.Manager
	sf     *id.Snowflake
	now    func() time.Time
}

func NewAuthService(repo UserStore, tokens *jwtutil.Manager, sf *id.Snowflake) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		sf:     sf,
		now:    time.Now,
	}
}

// Register self-registers a new agent account and logs it in. The role is
// always agent regardless of what the request claims.
func (s *AuthService) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, string, error) {
	req.Role = domain.RoleAgent
	if err := validateNewUser(req); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           s.sf.Generate(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         domain.RoleAgent,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", xerrors.NewValidation("please provide: email, password")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			return nil, "", xerrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", xerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", xerrors.ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}
