package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/scope"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

type CustomerRepo struct {
	db DB
}

func NewCustomerRepo(db DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

const customerColumns = `
	c.id, c.name, c.email, c.phone, c.company, c.address, c.notes,
	c.owner_user_id, c.revision, c.created_at, c.updated_at,
	u.id, u.name, u.email`

func (r *CustomerRepo) List(ctx context.Context, ident scope.Identity) ([]domain.Customer, error) {
	q := `
		SELECT ` + customerColumns + `
		FROM customers c
		LEFT JOIN users u ON u.id = c.owner_user_id`
	var args []any
	if !ident.IsAdmin() {
		q += `
		WHERE c.owner_user_id = $1`
		args = append(args, ident.UserID)
	}
	q += `
		ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers c
		LEFT JOIN users u ON u.id = c.owner_user_id
		WHERE c.id = $1`, id)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers
			(id, name, email, phone, company, address, notes,
			 owner_user_id, revision, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		c.ID, c.Name, c.Email, c.Phone, c.Company, c.Address, c.Notes,
		c.OwnerUserID, c.Revision, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *CustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers
		SET name=$1, email=$2, phone=$3, company=$4, address=$5, notes=$6,
		    revision = revision + 1, updated_at=$7
		WHERE id=$8`,
		c.Name, c.Email, c.Phone, c.Company, c.Address, c.Notes,
		c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		c          domain.Customer
		ownerID    *string
		ownerName  *string
		ownerEmail *string
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Address, &c.Notes,
		&c.OwnerUserID, &c.Revision, &c.CreatedAt, &c.UpdatedAt,
		&ownerID, &ownerName, &ownerEmail,
	)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		c.Owner = &domain.OwnerInfo{ID: *ownerID, Name: *ownerName, Email: *ownerEmail}
	}
	return &c, nil
}
