// Seeds the database with a demo admin, demo agents, and sample
// leads/customers. Wipes existing data first.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/siddhivinayaka18/afh-crm/internal/config"
	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/repository"
	"github.com/siddhivinayaka18/afh-crm/pkg/id"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := repository.Migrate(cfg.DBConnString, cfg.MigrationsDir); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	dbpool, err := repository.NewPool(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer dbpool.Close()

	sf, err := id.NewSnowflake(2)
	if err != nil {
		log.Fatalf("sf: %v", err)
	}

	// Clear existing data
	if _, err := dbpool.Exec(ctx, `TRUNCATE leads, customers, users`); err != nil {
		log.Fatalf("truncate: %v", err)
	}
	log.Println("cleared existing data")

	users := repository.NewUserRepo(dbpool)
	leads := repository.NewLeadRepo(dbpool)
	customers := repository.NewCustomerRepo(dbpool)

	now := time.Now().UTC()

	admin := seedUser(ctx, users, sf, "Admin User", "admin@crm.com", "admin123", domain.RoleAdmin, now)
	agent := seedUser(ctx, users, sf, "Demo Agent", "demo@crm.com", "password123", domain.RoleAgent, now)

	adminLead := domain.Lead{
		ID: sf.Generate(), Name: "Laura Chen", Email: "laura.chen@example.com",
		Phone: "+1-555-0110", Source: "LinkedIn", Status: domain.LeadStatusNew,
		Notes: "Reached out directly to management", LeadNotes: []domain.LeadNote{},
		OwnerUserID: admin.ID, Revision: 1, CreatedAt: now, UpdatedAt: now,
	}
	if err := leads.Create(ctx, &adminLead); err != nil {
		log.Fatalf("seed lead %q: %v", adminLead.Name, err)
	}

	sampleLeads := []domain.Lead{
		{
			Name: "John Smith", Email: "john.smith@example.com", Phone: "+1-555-0101",
			Source: "Website", Status: domain.LeadStatusNew,
			Notes: "Interested in premium package",
			LeadNotes: []domain.LeadNote{
				{Text: "Initial contact made via website form", Date: now},
			},
		},
		{
			Name: "Sarah Johnson", Email: "sarah.j@example.com", Phone: "+1-555-0102",
			Source: "Referral", Status: domain.LeadStatusContacted,
			Notes: "Referred by existing customer",
			LeadNotes: []domain.LeadNote{
				{Text: "Called and left voicemail", Date: now.Add(-24 * time.Hour)},
				{Text: "Follow-up scheduled for tomorrow", Date: now},
			},
		},
		{
			Name: "Michael Brown", Email: "mbrown@example.com", Phone: "+1-555-0103",
			Source: "Social Media", Status: domain.LeadStatusInProgress,
			Notes: "Evaluating against a competitor",
			LeadNotes: []domain.LeadNote{
				{Text: "Sent comparison sheet", Date: now.Add(-48 * time.Hour)},
			},
		},
		{
			Name: "Emily Davis", Email: "emily.d@example.com", Phone: "+1-555-0104",
			Source: "Cold Call", Status: domain.LeadStatusConverted,
			Notes: "Signed annual contract",
			LeadNotes: []domain.LeadNote{
				{Text: "Contract signed", Date: now.Add(-72 * time.Hour)},
			},
		},
		{
			Name: "David Wilson", Email: "dwilson@example.com", Phone: "+1-555-0105",
			Source: "Trade Show", Status: domain.LeadStatusLost,
			Notes:     "Went with a competitor",
			LeadNotes: []domain.LeadNote{},
		},
	}
	for i := range sampleLeads {
		l := &sampleLeads[i]
		l.ID = sf.Generate()
		l.OwnerUserID = agent.ID
		l.Revision = 1
		l.CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		l.UpdatedAt = l.CreatedAt
		if err := leads.Create(ctx, l); err != nil {
			log.Fatalf("seed lead %q: %v", l.Name, err)
		}
	}
	log.Printf("seeded %d leads", len(sampleLeads))

	sampleCustomers := []domain.Customer{
		{
			Name: "Acme Corp", Email: "contact@acme.example.com", Phone: "+1-555-2001",
			Company: "Acme Corp", Address: "1 Business Park, Suite 100",
			Notes: "Long-standing account",
		},
		{
			Name: "Globex Inc", Email: "hello@globex.example.com", Phone: "+1-555-2002",
			Company: "Globex Inc", Address: "2 Industry Way",
			Notes: "Renewal due next quarter",
		},
	}
	for i := range sampleCustomers {
		c := &sampleCustomers[i]
		c.ID = sf.Generate()
		c.OwnerUserID = agent.ID
		c.Revision = 1
		c.CreatedAt = now.Add(-time.Duration(i) * time.Hour)
		c.UpdatedAt = c.CreatedAt
		if err := customers.Create(ctx, c); err != nil {
			log.Fatalf("seed customer %q: %v", c.Name, err)
		}
	}
	log.Printf("seeded %d customers", len(sampleCustomers))

	fmt.Println("done.")
	fmt.Println("  admin login: admin@crm.com / admin123")
	fmt.Println("  agent login: demo@crm.com / password123")
}

func seedUser(ctx context.Context, repo *repository.UserRepo, sf *id.Snowflake, name, email, password string, role domain.Role, now time.Time) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u := &domain.User{
		ID:           sf.Generate(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatalf("seed user %q: %v", email, err)
	}
	log.Printf("seeded user %s (%s)", email, role)
	return u
}
