package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/scope"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

type LeadRepo struct {
	db DB
}

func NewLeadRepo(db DB) *LeadRepo {
	return &LeadRepo{db: db}
}

const leadColumns = `
	l.id, l.name, l.email, l.phone, l.source, l.status, l.notes, l.lead_notes,
	l.owner_user_id, l.revision, l.created_at, l.updated_at,
	u.id, u.name, u.email`

// List returns leads visible to the actor, newest first. Non-admins get a
// pre-filter on the owner column.
func (r *LeadRepo) List(ctx context.Context, ident scope.Identity) ([]domain.Lead, error) {
	q := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN users u ON u.id = l.owner_user_id`
	var args []any
	if !ident.IsAdmin() {
		q += `
		WHERE l.owner_user_id = $1`
		args = append(args, ident.UserID)
	}
	q += `
		ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

// GetByID fetches a lead with its owner joined, regardless of ownership.
// The ownership check happens in the service after the existence check.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+leadColumns+`
		FROM leads l
		LEFT JOIN users u ON u.id = l.owner_user_id
		WHERE l.id = $1`, id)

	lead, err := scanLead(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepo) Create(ctx context.Context, l *domain.Lead) error {
	notes, err := json.Marshal(l.LeadNotes)
	if err != nil {
		return fmt.Errorf("marshal lead notes: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO leads
			(id, name, email, phone, source, status, notes, lead_notes,
			 owner_user_id, revision, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		l.ID, l.Name, l.Email, l.Phone, l.Source, l.Status, l.Notes, notes,
		l.OwnerUserID, l.Revision, l.CreatedAt, l.UpdatedAt,
	)
	return err
}

// Update persists mutable fields and bumps the revision counter.
func (r *LeadRepo) Update(ctx context.Context, l *domain.Lead) error {
	notes, err := json.Marshal(l.LeadNotes)
	if err != nil {
		return fmt.Errorf("marshal lead notes: %w", err)
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE leads
		SET name=$1, email=$2, phone=$3, source=$4, status=$5, notes=$6,
		    lead_notes=$7, revision = revision + 1, updated_at=$8
		WHERE id=$9`,
		l.Name, l.Email, l.Phone, l.Source, l.Status, l.Notes, notes,
		l.UpdatedAt, l.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM leads WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var (
		l          domain.Lead
		rawNotes   []byte
		ownerID    *string
		ownerName  *string
		ownerEmail *string
	)
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Status, &l.Notes, &rawNotes,
		&l.OwnerUserID, &l.Revision, &l.CreatedAt, &l.UpdatedAt,
		&ownerID, &ownerName, &ownerEmail,
	)
	if err != nil {
		return nil, err
	}

	l.LeadNotes = []domain.LeadNote{}
	if len(rawNotes) > 0 {
		if err := json.Unmarshal(rawNotes, &l.LeadNotes); err != nil {
			return nil, fmt.Errorf("unmarshal lead notes: %w", err)
		}
	}
	if ownerID != nil {
		l.Owner = &domain.OwnerInfo{ID: *ownerID, Name: *ownerName, Email: *ownerEmail}
	}
	return &l, nil
}
