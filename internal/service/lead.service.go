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

// LeadStore is the persistence surface the lead service needs.
type LeadStore interface {
	List(ctx context.Context, ident scope.Identity) ([]domain.Lead, error)
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Create(ctx context.Context, l *domain.Lead) error
	Update(ctx context.Context, l *domain.Lead) error
	Delete(ctx context.Context, id string) error
}

type LeadService struct {
	repo LeadStore
	sf   *id.Snowflake
	now  func() time.Time
}

func NewLeadService(repo LeadStore, sf *id.Snowflake) *LeadService {
	return &LeadService{
		repo: repo,
		sf:   sf,
		now:  time.Now,
	}
}

func (s *LeadService) List(ctx context.Context, ident scope.Identity) ([]domain.Lead, error) {
	leads, err := s.repo.List(ctx, ident)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	return leads, nil
}

// Get checks existence before ownership: a missing id is NotFound for
// everyone, an existing id outside scope is Forbidden.
func (s *LeadService) Get(ctx context.Context, ident scope.Identity, leadID string) (*domain.Lead, error) {
	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !ident.CanAccess(lead.OwnerUserID) {
		return nil, xerrors.ErrForbidden
	}
	return lead, nil
}

// Create stores a new lead owned by the actor. The owner is always the
// caller, never a request-supplied value.
func (s *LeadService) Create(ctx context.Context, ident scope.Identity, req domain.CreateLeadRequest) (*domain.Lead, error) {
	if err := requireFields(
		requiredField{"name", req.Name},
		requiredField{"email", req.Email},
		requiredField{"phone", req.Phone},
	); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.LeadStatusNew
	}
	if !status.Valid() {
		return nil, xerrors.NewValidation("invalid lead status %q", status)
	}

	leadNotes := req.LeadNotes
	if leadNotes == nil {
		leadNotes = []domain.LeadNote{}
	}

	now := s.now().UTC()
	lead := &domain.Lead{
		ID:          s.sf.Generate(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Source:      strings.TrimSpace(req.Source),
		Status:      status,
		Notes:       req.Notes,
		LeadNotes:   leadNotes,
		OwnerUserID: ident.UserID,
		Revision:    1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// Update merges the allow-listed fields onto the stored lead. A supplied
// base revision that no longer matches is rejected; omitting it keeps
// last-write-wins.
func (s *LeadService) Update(ctx context.Context, ident scope.Identity, leadID string, req domain.UpdateLeadRequest) (*domain.Lead, error) {
	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !ident.CanAccess(lead.OwnerUserID) {
		return nil, xerrors.ErrForbidden
	}
	if req.Revision != nil && *req.Revision != lead.Revision {
		return nil, xerrors.ErrStaleRevision
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, xerrors.NewValidation("invalid lead status %q", *req.Status)
	}

	if req.Name != nil {
		lead.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		lead.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		lead.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Source != nil {
		lead.Source = strings.TrimSpace(*req.Source)
	}
	if req.Status != nil {
		lead.Status = *req.Status
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}
	if req.LeadNotes != nil {
		lead.LeadNotes = *req.LeadNotes
	}
	lead.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	// Re-read so the response carries the bumped revision and owner join.
	return s.repo.GetByID(ctx, leadID)
}

func (s *LeadService) Delete(ctx context.Context, ident scope.Identity, leadID string) error {
	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if !ident.CanAccess(lead.OwnerUserID) {
		return xerrors.ErrForbidden
	}
	return s.repo.Delete(ctx, leadID)
}
