package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/handler"
	"github.com/siddhivinayaka18/afh-crm/internal/router"
	"github.com/siddhivinayaka18/afh-crm/internal/scope"
	"github.com/siddhivinayaka18/afh-crm/internal/service"
	"github.com/siddhivinayaka18/afh-crm/pkg/id"
	"github.com/siddhivinayaka18/afh-crm/pkg/jwtutil"
	"github.com/siddhivinayaka18/afh-crm/pkg/middleware"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

// memData is a single in-memory backend shared by all the store
// implementations below, so the full HTTP stack runs without Postgres.
type memData struct {
	mu        sync.Mutex
	users     map[string]domain.User
	leads     map[string]domain.Lead
	customers map[string]domain.Customer
}

func newMemData() *memData {
	return &memData{
		users:     map[string]domain.User{},
		leads:     map[string]domain.Lead{},
		customers: map[string]domain.Customer{},
	}
}

func (d *memData) ownerInfo(userID string) *domain.OwnerInfo {
	u, ok := d.users[userID]
	if !ok {
		return nil
	}
	return &domain.OwnerInfo{ID: u.ID, Name: u.Name, Email: u.Email}
}

type memLeadStore struct{ d *memData }

func (s *memLeadStore) List(_ context.Context, ident scope.Identity) ([]domain.Lead, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var out []domain.Lead
	for _, l := range s.d.leads {
		if ident.IsAdmin() || l.OwnerUserID == ident.UserID {
			l.Owner = s.d.ownerInfo(l.OwnerUserID)
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memLeadStore) GetByID(_ context.Context, id string) (*domain.Lead, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	l, ok := s.d.leads[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	l.Owner = s.d.ownerInfo(l.OwnerUserID)
	return &l, nil
}

func (s *memLeadStore) Create(_ context.Context, l *domain.Lead) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.leads[l.ID] = *l
	return nil
}

func (s *memLeadStore) Update(_ context.Context, l *domain.Lead) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	stored, ok := s.d.leads[l.ID]
	if !ok {
		return xerrors.ErrNotFound
	}
	updated := *l
	updated.Revision = stored.Revision + 1
	s.d.leads[l.ID] = updated
	return nil
}

func (s *memLeadStore) Delete(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.leads[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(s.d.leads, id)
	return nil
}

type memCustomerStore struct{ d *memData }

func (s *memCustomerStore) List(_ context.Context, ident scope.Identity) ([]domain.Customer, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var out []domain.Customer
	for _, c := range s.d.customers {
		if ident.IsAdmin() || c.OwnerUserID == ident.UserID {
			c.Owner = s.d.ownerInfo(c.OwnerUserID)
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCustomerStore) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	c, ok := s.d.customers[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return &c, nil
}

func (s *memCustomerStore) Create(_ context.Context, c *domain.Customer) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.customers[c.ID] = *c
	return nil
}

func (s *memCustomerStore) Update(_ context.Context, c *domain.Customer) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	stored, ok := s.d.customers[c.ID]
	if !ok {
		return xerrors.ErrNotFound
	}
	updated := *c
	updated.Revision = stored.Revision + 1
	s.d.customers[c.ID] = updated
	return nil
}

func (s *memCustomerStore) Delete(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.customers[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(s.d.customers, id)
	return nil
}

type memUserStore struct{ d *memData }

func (s *memUserStore) List(_ context.Context) ([]domain.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var out []domain.User
	for _, u := range s.d.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	u, ok := s.d.users[id]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	return &u, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, u := range s.d.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (s *memUserStore) Create(_ context.Context, u *domain.User) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, existing := range s.d.users {
		if existing.Email == u.Email {
			return xerrors.ErrEmailAlreadyInUse
		}
	}
	s.d.users[u.ID] = *u
	return nil
}

func (s *memUserStore) SetActive(_ context.Context, id string, isActive bool) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	u, ok := s.d.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.IsActive = isActive
	s.d.users[id] = u
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.users[id]; !ok {
		return xerrors.ErrUserNotFound
	}
	delete(s.d.users, id)
	return nil
}

func (s *memUserStore) CountOwnedRecords(_ context.Context, userID string) (int, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	count := 0
	for _, l := range s.d.leads {
		if l.OwnerUserID == userID {
			count++
		}
	}
	for _, c := range s.d.customers {
		if c.OwnerUserID == userID {
			count++
		}
	}
	return count, nil
}

type memStatsStore struct{ d *memData }

func (s *memStatsStore) CountLeads(_ context.Context, ident scope.Identity) (int, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	count := 0
	for _, l := range s.d.leads {
		if ident.IsAdmin() || l.OwnerUserID == ident.UserID {
			count++
		}
	}
	return count, nil
}

func (s *memStatsStore) CountCustomers(_ context.Context, ident scope.Identity) (int, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	count := 0
	for _, c := range s.d.customers {
		if ident.IsAdmin() || c.OwnerUserID == ident.UserID {
			count++
		}
	}
	return count, nil
}

func (s *memStatsStore) CountConvertedLeads(_ context.Context, ident scope.Identity) (int, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	count := 0
	for _, l := range s.d.leads {
		if l.Status == domain.LeadStatusConverted && (ident.IsAdmin() || l.OwnerUserID == ident.UserID) {
			count++
		}
	}
	return count, nil
}

func (s *memStatsStore) LeadsByStatus(_ context.Context, ident scope.Identity) (map[string]int, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	byStatus := map[string]int{}
	for _, l := range s.d.leads {
		if ident.IsAdmin() || l.OwnerUserID == ident.UserID {
			byStatus[string(l.Status)]++
		}
	}
	return byStatus, nil
}

func (s *memStatsStore) CountLeadsCreatedBetween(_ context.Context, ident scope.Identity, from, to time.Time) (int, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	count := 0
	for _, l := range s.d.leads {
		if (ident.IsAdmin() || l.OwnerUserID == ident.UserID) && !l.CreatedAt.Before(from) && l.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (s *memStatsStore) CountCustomersCreatedBetween(_ context.Context, ident scope.Identity, from, to time.Time) (int, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	count := 0
	for _, c := range s.d.customers {
		if (ident.IsAdmin() || c.OwnerUserID == ident.UserID) && !c.CreatedAt.Before(from) && c.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (s *memStatsStore) UserLeadStats(_ context.Context) ([]domain.UserLeadStats, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	byUser := map[string]*domain.UserLeadStats{}
	for _, l := range s.d.leads {
		u, ok := s.d.users[l.OwnerUserID]
		if !ok {
			continue
		}
		stat, ok := byUser[u.ID]
		if !ok {
			stat = &domain.UserLeadStats{UserID: u.ID, Name: u.Name, Email: u.Email}
			byUser[u.ID] = stat
		}
		stat.TotalLeads++
		if l.Status == domain.LeadStatusConverted {
			stat.ConvertedLeads++
		}
	}
	var out []domain.UserLeadStats
	for _, stat := range byUser {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalLeads > out[j].TotalLeads })
	return out, nil
}

type env struct {
	srv  *httptest.Server
	data *memData

	adminToken  string
	agentAToken string
	agentBToken string
	adminID     string
	agentAID    string
	agentBID    string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	data := newMemData()
	users := &memUserStore{d: data}

	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)
	tokens := jwtutil.NewManager("test-secret", "afh-crm", time.Hour)
	log := zap.NewNop().Sugar()

	authSvc := service.NewAuthService(users, tokens, sf)
	leadSvc := service.NewLeadService(&memLeadStore{d: data}, sf)
	customerSvc := service.NewCustomerService(&memCustomerStore{d: data}, sf)
	dashboardSvc := service.NewDashboardService(&memStatsStore{d: data})
	userSvc := service.NewUserService(users, sf)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, log),
		Lead:      handler.NewLeadHandler(leadSvc, log),
		Customer:  handler.NewCustomerHandler(customerSvc, log),
		Dashboard: handler.NewDashboardHandler(dashboardSvc, log),
		User:      handler.NewUserHandler(userSvc, log),
	}
	auth := middleware.NewAuthMiddleware(tokens, users)

	mux := chi.NewRouter()
	router.SetupRoutes(mux, h, auth, rdb)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	e := &env{srv: srv, data: data}

	// Seed an admin directly: registration only ever creates agents.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	e.adminID = sf.Generate()
	data.users[e.adminID] = domain.User{
		ID: e.adminID, Name: "Admin", Email: "admin@crm.com",
		PasswordHash: string(hash), Role: domain.RoleAdmin, IsActive: true,
		CreatedAt: time.Now().UTC(),
	}
	e.adminToken, err = tokens.Issue(e.adminID, string(domain.RoleAdmin))
	require.NoError(t, err)

	e.agentAID, e.agentAToken = e.register(t, "Agent A", "a@crm.com")
	e.agentBID, e.agentBToken = e.register(t, "Agent B", "b@crm.com")
	return e
}

func (e *env) register(t *testing.T, name, email string) (string, string) {
	t.Helper()
	var out struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	status := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "password123",
	}, &out)
	require.Equal(t, http.StatusCreated, status)
	return out.User.ID, out.Token
}

// do sends a JSON request and decodes the JSON response into out (when
// out is non-nil), returning the status code.
func (e *env) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	e := newEnv(t)

	var out map[string]string
	status := e.do(t, http.MethodGet, "/health", "", nil, &out)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", out["status"])
}

func TestAuthFlow(t *testing.T) {
	e := newEnv(t)

	t.Run("Should reject requests without a token", func(t *testing.T) {
		var out map[string]string
		status := e.do(t, http.MethodGet, "/api/leads", "", nil, &out)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "No token provided", out["message"])
	})

	t.Run("Should reject a garbage token", func(t *testing.T) {
		var out map[string]string
		status := e.do(t, http.MethodGet, "/api/leads", "not-a-jwt", nil, &out)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid or expired token", out["message"])
	})

	t.Run("Should log in and report the identity on /auth/me", func(t *testing.T) {
		var login struct {
			Token string      `json:"token"`
			User  domain.User `json:"user"`
		}
		status := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "a@crm.com", "password": "password123",
		}, &login)
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, login.Token)

		var me domain.User
		status = e.do(t, http.MethodGet, "/api/auth/me", login.Token, nil, &me)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "a@crm.com", me.Email)
	})

	t.Run("Should answer wrong credentials with 401", func(t *testing.T) {
		status := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "a@crm.com", "password": "wrong",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Should never expose the password hash", func(t *testing.T) {
		var raw map[string]any
		status := e.do(t, http.MethodGet, "/api/auth/me", e.agentAToken, nil, &raw)
		require.Equal(t, http.StatusOK, status)
		assert.NotContains(t, raw, "passwordHash")
		assert.NotContains(t, raw, "password_hash")
	})
}

func TestLeadEndpoints(t *testing.T) {
	e := newEnv(t)

	var created domain.Lead
	status := e.do(t, http.MethodPost, "/api/leads", e.agentAToken, map[string]string{
		"name": "John Smith", "email": "john@x.com", "phone": "1234567890",
	}, &created)
	require.Equal(t, http.StatusCreated, status)

	t.Run("Should fill defaults and stamp the creator as owner", func(t *testing.T) {
		assert.Equal(t, domain.LeadStatusNew, created.Status)
		assert.Equal(t, "", created.Notes)
		assert.Equal(t, []domain.LeadNote{}, created.LeadNotes)
		assert.Equal(t, e.agentAID, created.OwnerUserID)
	})

	t.Run("Should reject a create missing required fields", func(t *testing.T) {
		var out map[string]string
		status := e.do(t, http.MethodPost, "/api/leads", e.agentAToken, map[string]string{
			"name": "No Contact",
		}, &out)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, out["message"], "email")
	})

	t.Run("Should scope the list per agent and widen it for admins", func(t *testing.T) {
		var mine []domain.Lead
		e.do(t, http.MethodGet, "/api/leads", e.agentAToken, nil, &mine)
		require.Len(t, mine, 1)

		var theirs []domain.Lead
		e.do(t, http.MethodGet, "/api/leads", e.agentBToken, nil, &theirs)
		assert.Empty(t, theirs)

		var all []domain.Lead
		e.do(t, http.MethodGet, "/api/leads", e.adminToken, nil, &all)
		assert.Len(t, all, 1)
	})

	t.Run("Should hide another agent's lead behind 403 and a missing one behind 404", func(t *testing.T) {
		status := e.do(t, http.MethodGet, "/api/leads/"+created.ID, e.agentBToken, nil, nil)
		assert.Equal(t, http.StatusForbidden, status)

		status = e.do(t, http.MethodGet, "/api/leads/0", e.agentBToken, nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("Should apply a partial update and bump the revision", func(t *testing.T) {
		var updated domain.Lead
		status := e.do(t, http.MethodPut, "/api/leads/"+created.ID, e.agentAToken, map[string]string{
			"status": "Contacted",
		}, &updated)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, domain.LeadStatusContacted, updated.Status)
		assert.Equal(t, "John Smith", updated.Name)
		assert.Greater(t, updated.Revision, created.Revision)
	})

	t.Run("Should answer a stale revision with 409", func(t *testing.T) {
		status := e.do(t, http.MethodPut, "/api/leads/"+created.ID, e.agentAToken, map[string]any{
			"name": "Late Writer", "revision": 1,
		}, nil)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("Should delete with a confirmation message and 404 afterwards", func(t *testing.T) {
		var out map[string]string
		status := e.do(t, http.MethodDelete, "/api/leads/"+created.ID, e.agentAToken, nil, &out)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Lead deleted successfully", out["message"])

		status = e.do(t, http.MethodDelete, "/api/leads/"+created.ID, e.agentAToken, nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCustomerEndpoints(t *testing.T) {
	e := newEnv(t)

	var created domain.Customer
	status := e.do(t, http.MethodPost, "/api/customers", e.agentAToken, map[string]string{
		"name": "Acme Corp", "email": "ops@acme.com", "phone": "5551234567", "company": "Acme",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, e.agentAID, created.OwnerUserID)

	t.Run("Should keep customers invisible to other agents", func(t *testing.T) {
		status := e.do(t, http.MethodGet, "/api/customers/"+created.ID, e.agentBToken, nil, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("Should let an admin update anyone's customer", func(t *testing.T) {
		var updated domain.Customer
		status := e.do(t, http.MethodPut, "/api/customers/"+created.ID, e.adminToken, map[string]string{
			"address": "12 Main St",
		}, &updated)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "12 Main St", updated.Address)
		assert.Equal(t, "Acme Corp", updated.Name)
	})
}

func TestDashboardEndpoint(t *testing.T) {
	e := newEnv(t)

	seed := func(lid, owner string, status domain.LeadStatus) {
		e.data.mu.Lock()
		defer e.data.mu.Unlock()
		e.data.leads[lid] = domain.Lead{
			ID: lid, Name: "L", Email: "l@x.com", Phone: "1",
			Status: status, LeadNotes: []domain.LeadNote{},
			OwnerUserID: owner, Revision: 1,
			CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		}
	}
	seed("l1", e.agentAID, domain.LeadStatusNew)
	seed("l2", e.agentAID, domain.LeadStatusConverted)
	seed("l3", e.agentAID, domain.LeadStatusConverted)
	seed("l4", e.agentBID, domain.LeadStatusLost)

	t.Run("Should return the agent's own numbers without a per-user breakdown", func(t *testing.T) {
		var snap domain.StatsSnapshot
		status := e.do(t, http.MethodGet, "/api/dashboard", e.agentAToken, nil, &snap)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 3, snap.TotalLeads)
		assert.Equal(t, 2, snap.ConvertedLeads)
		assert.Equal(t, 2, snap.LeadsByStatus["Converted"])
		assert.Nil(t, snap.UserStats)
	})

	t.Run("Should return global numbers plus userStats for admins", func(t *testing.T) {
		var snap domain.StatsSnapshot
		status := e.do(t, http.MethodGet, "/api/dashboard", e.adminToken, nil, &snap)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 4, snap.TotalLeads)
		require.NotEmpty(t, snap.UserStats)
		assert.Equal(t, e.agentAID, snap.UserStats[0].UserID)
		assert.InDelta(t, 66.666, snap.UserStats[0].ConversionRate, 0.01)
	})
}

func TestUserAdminEndpoints(t *testing.T) {
	e := newEnv(t)

	t.Run("Should refuse agents with 403", func(t *testing.T) {
		var out map[string]string
		status := e.do(t, http.MethodGet, "/api/users", e.agentAToken, nil, &out)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Admin access required", out["message"])
	})

	t.Run("Should let an admin list accounts", func(t *testing.T) {
		var users []domain.User
		status := e.do(t, http.MethodGet, "/api/users", e.adminToken, nil, &users)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, users, 3)
	})

	t.Run("Should answer a duplicate email with 409 and create nothing", func(t *testing.T) {
		status := e.do(t, http.MethodPost, "/api/users", e.adminToken, map[string]string{
			"name": "Dup", "email": "a@crm.com", "password": "password123",
		}, nil)
		assert.Equal(t, http.StatusConflict, status)

		var users []domain.User
		e.do(t, http.MethodGet, "/api/users", e.adminToken, nil, &users)
		assert.Len(t, users, 3)
	})

	t.Run("Should lock out a deactivated agent on their next request", func(t *testing.T) {
		var updated domain.User
		status := e.do(t, http.MethodPut, "/api/users/"+e.agentBID+"/status", e.adminToken, map[string]bool{
			"isActive": false,
		}, &updated)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, updated.IsActive)

		var out map[string]string
		status = e.do(t, http.MethodGet, "/api/leads", e.agentBToken, nil, &out)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Account is deactivated", out["message"])

		status = e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "b@crm.com", "password": "password123",
		}, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("Should refuse deleting a user who still owns records", func(t *testing.T) {
		status := e.do(t, http.MethodPost, "/api/leads", e.agentAToken, map[string]string{
			"name": "Owned", "email": "o@x.com", "phone": "3",
		}, nil)
		require.Equal(t, http.StatusCreated, status)

		status = e.do(t, http.MethodDelete, "/api/users/"+e.agentAID, e.adminToken, nil, nil)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("Should delete a user with no records", func(t *testing.T) {
		var out map[string]string
		status := e.do(t, http.MethodDelete, "/api/users/"+e.agentBID, e.adminToken, nil, &out)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "User deleted successfully", out["message"])
	})
}
