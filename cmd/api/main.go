package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/amods/cantina-backend/internal/config"
	"github.com/amods/cantina-backend/internal/database"
	"github.com/amods/cantina-backend/internal/modules/auth"
	"github.com/amods/cantina-backend/internal/modules/catalog"
	"github.com/amods/cantina-backend/internal/modules/inventory"
	"github.com/amods/cantina-backend/internal/modules/reporting"
	"github.com/amods/cantina-backend/internal/modules/sales"
	"github.com/amods/cantina-backend/internal/modules/stock"
	"github.com/amods/cantina-backend/internal/modules/user"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("run migrations")
	}
	log.Info("connected to database, migrations applied")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog, sales history, reporting (reads) ───────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	salesRepo := sales.NewPostgresRepository(db)
	salesService := sales.NewService(salesRepo)
	sales.NewHandler(salesService).RegisterRoutes(router)

	reportingRepo := reporting.NewPostgresRepository(db)
	reportingService := reporting.NewService(reportingRepo, cfg.LowStockThreshold)
	reporting.NewHandler(reportingService).RegisterRoutes(router)

	// ── Inventory engine (all writes) ───────────────────────
	stockRepo := stock.NewPostgresRepository(db)
	transactor := inventory.NewSQLTransactor(db)
	engine := inventory.NewService(transactor, stockRepo, reportingRepo, cfg.LowStockThreshold)
	inventory.NewHandler(engine, auth.Middleware(authService)).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	log.WithField("port", cfg.AppPort).Info("cantina API server starting")
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
