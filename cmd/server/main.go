package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"communitycalendar/config"
	authadapter "communitycalendar/internal/adapters/auth"
	httpdelivery "communitycalendar/internal/delivery/http"
	"communitycalendar/internal/delivery/http/controllers"
	"communitycalendar/internal/delivery/http/middleware"
	"communitycalendar/internal/i18n"
	"communitycalendar/internal/ratelimit"
	"communitycalendar/internal/repository/postgres"
	"communitycalendar/internal/services"
)

const (
	bcryptCost = 10
	dbTimeout  = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(logger, cfg.DBUrl, cfg.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	tokens := authadapter.NewJWTTokens(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(bcryptCost)

	eventRepo := postgres.NewEventRepository(db)
	userRepo := postgres.NewUserRepository(db)
	codeRepo := postgres.NewRegistrationCodeRepository(db)

	eventService := services.NewEventService(eventRepo, dbTimeout)
	authService := services.NewAuthService(userRepo, codeRepo, hasher, tokens, cfg.JWTExpiry, dbTimeout)

	eventController := controllers.NewEventController(logger, eventService, translator)
	authController := controllers.NewAuthController(logger, authService, translator)
	metaController := controllers.NewMetaController(cfg.Header)

	requireAuth := middleware.RequireAuth(tokens, translator)
	mux := httpdelivery.NewRouter(eventController, authController, metaController, requireAuth)

	limiter := ratelimit.New(ratelimit.Config{
		Window:      cfg.RateLimitWindow,
		MaxRequests: cfg.RateLimitMax,
	}, time.Now)

	handler := middleware.Logging(logger,
		middleware.CORS(cfg.AllowedOrigins,
			middleware.RateLimit(limiter, translator, mux)))

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
