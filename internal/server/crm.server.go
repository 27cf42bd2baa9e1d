package server

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/siddhivinayaka18/afh-crm/internal/config"
	"github.com/siddhivinayaka18/afh-crm/internal/handler"
	"github.com/siddhivinayaka18/afh-crm/internal/repository"
	"github.com/siddhivinayaka18/afh-crm/internal/router"
	"github.com/siddhivinayaka18/afh-crm/internal/service"
	"github.com/siddhivinayaka18/afh-crm/pkg/id"
	"github.com/siddhivinayaka18/afh-crm/pkg/jwtutil"
	"github.com/siddhivinayaka18/afh-crm/pkg/middleware"
)

func NewServer(cfg config.Config) *http.Server {
	// --- Schema ---
	if err := repository.Migrate(cfg.DBConnString, cfg.MigrationsDir); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// --- Postgres ---
	dbpool, err := repository.NewPool(context.Background(), cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	sugar := logger.Sugar()

	// --- ID generator ---
	sf, err := id.NewSnowflake(1)
	if err != nil {
		log.Fatalf("snowflake: %v", err)
	}

	// --- Tokens & auth ---
	tokens := jwtutil.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	// --- Repos & services ---
	userRepo := repository.NewUserRepo(dbpool)
	leadRepo := repository.NewLeadRepo(dbpool)
	customerRepo := repository.NewCustomerRepo(dbpool)
	dashboardRepo := repository.NewDashboardRepo(dbpool)

	authSvc := service.NewAuthService(userRepo, tokens, sf)
	leadSvc := service.NewLeadService(leadRepo, sf)
	customerSvc := service.NewCustomerService(customerRepo, sf)
	dashboardSvc := service.NewDashboardService(dashboardRepo)
	userSvc := service.NewUserService(userRepo, sf)

	auth := middleware.NewAuthMiddleware(tokens, userRepo)

	// --- Handlers & router ---
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, sugar),
		Lead:      handler.NewLeadHandler(leadSvc, sugar),
		Customer:  handler.NewCustomerHandler(customerSvc, sugar),
		Dashboard: handler.NewDashboardHandler(dashboardSvc, sugar),
		User:      handler.NewUserHandler(userSvc, sugar),
	}

	r := chi.NewRouter()
	r = router.SetupRoutes(r, handlers, auth, rdb).(*chi.Mux)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}
