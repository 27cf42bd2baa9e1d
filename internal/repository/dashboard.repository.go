package repository

import (
	"context"
	"time"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/scope"
)

// DashboardRepo runs the individual count queries behind the stats
// snapshot. Each query carries the same owner scoping as the CRUD reads.
type DashboardRepo struct {
	db DB
}

func NewDashboardRepo(db DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) CountLeads(ctx context.Context, ident scope.Identity) (int, error) {
	return r.count(ctx, ident, `SELECT COUNT(*) FROM leads`, nil)
}

func (r *DashboardRepo) CountCustomers(ctx context.Context, ident scope.Identity) (int, error) {
	return r.count(ctx, ident, `SELECT COUNT(*) FROM customers`, nil)
}

func (r *DashboardRepo) CountConvertedLeads(ctx context.Context, ident scope.Identity) (int, error) {
	return r.count(ctx, ident, `SELECT COUNT(*) FROM leads`, []string{`status = 'Converted'`})
}

func (r *DashboardRepo) CountLeadsCreatedBetween(ctx context.Context, ident scope.Identity, from, to time.Time) (int, error) {
	return r.countBetween(ctx, ident, "leads", from, to)
}

func (r *DashboardRepo) CountCustomersCreatedBetween(ctx context.Context, ident scope.Identity, from, to time.Time) (int, error) {
	return r.countBetween(ctx, ident, "customers", from, to)
}

// LeadsByStatus groups scoped leads by status. Statuses with no leads are
// simply absent from the map.
func (r *DashboardRepo) LeadsByStatus(ctx context.Context, ident scope.Identity) (map[string]int, error) {
	q := `SELECT status, COUNT(*) FROM leads`
	var args []any
	if !ident.IsAdmin() {
		q += ` WHERE owner_user_id = $1`
		args = append(args, ident.UserID)
	}
	q += ` GROUP BY status`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byStatus := map[string]int{}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		byStatus[status] = count
	}
	return byStatus, rows.Err()
}

// UserLeadStats aggregates every lead in the store per owning user,
// newest-heaviest first. Unscoped: callers gate this behind the admin check.
func (r *DashboardRepo) UserLeadStats(ctx context.Context) ([]domain.UserLeadStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.name, u.email,
		       COUNT(l.id) AS total_leads,
		       COUNT(l.id) FILTER (WHERE l.status = 'Converted') AS converted_leads
		FROM leads l
		JOIN users u ON u.id = l.owner_user_id
		GROUP BY u.id, u.name, u.email
		ORDER BY total_leads DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.UserLeadStats
	for rows.Next() {
		var s domain.UserLeadStats
		if err := rows.Scan(&s.UserID, &s.Name, &s.Email, &s.TotalLeads, &s.ConvertedLeads); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *DashboardRepo) count(ctx context.Context, ident scope.Identity, base string, conds []string) (int, error) {
	q := base
	var args []any
	if !ident.IsAdmin() {
		args = append(args, ident.UserID)
		conds = append([]string{`owner_user_id = $1`}, conds...)
	}
	for i, c := range conds {
		if i == 0 {
			q += ` WHERE ` + c
		} else {
			q += ` AND ` + c
		}
	}

	var count int
	if err := r.db.QueryRow(ctx, q, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardRepo) countBetween(ctx context.Context, ident scope.Identity, table string, from, to time.Time) (int, error) {
	q := `SELECT COUNT(*) FROM ` + table
	var args []any
	if ident.IsAdmin() {
		q += ` WHERE created_at >= $1 AND created_at < $2`
		args = append(args, from, to)
	} else {
		q += ` WHERE owner_user_id = $1 AND created_at >= $2 AND created_at < $3`
		args = append(args, ident.UserID, from, to)
	}

	var count int
	if err := r.db.QueryRow(ctx, q, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
