package service

import (
	"context"
	"strings"
	"time"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/scope"
	"github.com/siddhivinayaka18/afh-crm/pkg/id"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

type CustomerStore interface {
	List(ctx context.Context, ident scope.Identity) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type CustomerService struct {
	repo CustomerStore
	sf   *id.Snowflake
	now  func() time.Time
}

func NewCustomerService(repo CustomerStore, sf *id.Snowflake) *CustomerService {
	return &CustomerService{
		repo: repo,
		sf:   sf,
		now:  time.Now,
	}
}

func (s *CustomerService) List(ctx context.Context, ident scope.Identity) ([]domain.Customer, error) {
	customers, err := s.repo.List(ctx, ident)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, ident scope.Identity, customerID string) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ident.CanAccess(customer.OwnerUserID) {
		return nil, xerrors.ErrForbidden
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, ident scope.Identity, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	if err := requireFields(
		requiredField{"name", req.Name},
		requiredField{"email", req.Email},
		requiredField{"phone", req.Phone},
	); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	customer := &domain.Customer{
		ID:          s.sf.Generate(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Company:     strings.TrimSpace(req.Company),
		Address:     strings.TrimSpace(req.Address),
		Notes:       req.Notes,
		OwnerUserID: ident.UserID,
		Revision:    1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, ident scope.Identity, customerID string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !ident.CanAccess(customer.OwnerUserID) {
		return nil, xerrors.ErrForbidden
	}
	if req.Revision != nil && *req.Revision != customer.Revision {
		return nil, xerrors.ErrStaleRevision
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		customer.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Company != nil {
		customer.Company = strings.TrimSpace(*req.Company)
	}
	if req.Address != nil {
		customer.Address = strings.TrimSpace(*req.Address)
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	customer.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, customerID)
}

func (s *CustomerService) Delete(ctx context.Context, ident scope.Identity, customerID string) error {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if !ident.CanAccess(customer.OwnerUserID) {
		return xerrors.ErrForbidden
	}
	return s.repo.Delete(ctx, customerID)
}
