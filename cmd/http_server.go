package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/auth"
	authpostgres "github.com/aosmicepp/platform/internal/auth/postgres"
	"github.com/aosmicepp/platform/internal/catalog"
	catalogpostgres "github.com/aosmicepp/platform/internal/catalog/postgres"
	"github.com/aosmicepp/platform/internal/core/events"
	"github.com/aosmicepp/platform/internal/dashboard"
	"github.com/aosmicepp/platform/internal/demande"
	demandepostgres "github.com/aosmicepp/platform/internal/demande/postgres"
	"github.com/aosmicepp/platform/internal/message"
	messagepostgres "github.com/aosmicepp/platform/internal/message/postgres"
	"github.com/aosmicepp/platform/internal/news"
	newspostgres "github.com/aosmicepp/platform/internal/news/postgres"
	"github.com/aosmicepp/platform/internal/notification"
	"github.com/aosmicepp/platform/internal/reclamation"
	reclamationpostgres "github.com/aosmicepp/platform/internal/reclamation/postgres"
	"github.com/aosmicepp/platform/internal/transport/rest"
	"github.com/aosmicepp/platform/internal/transport/swagger"
	"github.com/aosmicepp/platform/internal/user"
	userpostgres "github.com/aosmicepp/platform/internal/user/postgres"
	"github.com/aosmicepp/platform/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	// A broken API contract should stop the server before it binds.
	if _, err := swagger.LoadAndValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		return nil, err
	}

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(lg)
	notification.NewNotifier(lg).Register(bus)

	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.TokenDuration)
	authService := auth.NewService(authpostgres.NewRepository(gormDB), tokenGen, config.Security.BCryptCost, lg)
	authHandler := auth.NewHandler(authService)
	roles := auth.NewRoleAuthorization(lg)

	userRepo := userpostgres.NewRepository(gormDB)
	userService := user.NewService(userRepo, config.Security.BCryptCost, bus, lg)
	demandeService := demande.NewService(demandepostgres.NewRepository(gormDB), userRepo, bus, lg)
	reclamationService := reclamation.NewService(reclamationpostgres.NewRepository(gormDB), userRepo, bus, lg)
	newsService := news.NewService(newspostgres.NewRepository(gormDB), lg)
	catalogService := catalog.NewService(catalogpostgres.NewRepository(gormDB), lg)
	messageService := message.NewService(messagepostgres.NewRepository(gormDB), lg)
	dashboardService := dashboard.NewService(userService, demandeService, reclamationService, messageService, lg)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, rest.Handlers{
		Auth:        authHandler,
		Roles:       roles,
		User:        user.NewHandler(userService),
		Demande:     demande.NewHandler(demandeService),
		Reclamation: reclamation.NewHandler(reclamationService),
		News:        news.NewHandler(newsService),
		Catalog:     catalog.NewHandler(catalogService),
		Message:     message.NewHandler(messageService),
		Dashboard:   dashboard.NewHandler(dashboardService),
	}, config.Server.AllowedOrigins, lg)

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Router: router,
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
