package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/surajravi/user-todo-api/internal/fixtures"
	"github.com/surajravi/user-todo-api/internal/handlers"
	"github.com/surajravi/user-todo-api/internal/logger"
	"github.com/surajravi/user-todo-api/internal/middlewares"
	"github.com/surajravi/user-todo-api/internal/repositories"
	"github.com/surajravi/user-todo-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// requiredEnv lists the parameters that must be present at startup.
// Missing any of them fails the process before a listener is opened.
var requiredEnv = []string{
	"DB_NAME",
	"DB_HOST",
	"DB_USER",
	"DB_PASS",
	"DB_COLLECTION_NAME",
}

// @title user-todo-api
// @version 1.0.0
// @description Minimal multi-resource backend exposing todo and user endpoints over MongoDB
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dbHost, dbPort, dbName, dbUser, dbPass, collName,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbHost, dbPort, dbName, dbUser, dbPass, collName,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application and database configuration. Every required key must be
// present; the returned error names all missing ones at once.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbHost, dbPort, dbName, dbUser, dbPass, collName string,
	err error,
) {
	_ = godotenv.Load(path)

	var missing []string
	for _, key := range requiredEnv {
		if val, ok := os.LookupEnv(key); !ok || val == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		err = fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		return
	}

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	dbHost = os.Getenv("DB_HOST")
	dbPort = getEnv("DB_PORT", "27017")
	dbName = os.Getenv("DB_NAME")
	dbUser = os.Getenv("DB_USER")
	dbPass = os.Getenv("DB_PASS")
	collName = os.Getenv("DB_COLLECTION_NAME")

	return
}

// run initializes the logger and the MongoDB connection, seeds fixtures,
// sets up routes and middleware, and handles graceful shutdown. Fixture
// seeding finishes strictly before the listener opens so live traffic
// never races the emptiness check.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbHost, dbPort, dbName, dbUser, dbPass, collName string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%s/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	logger.Log.Infof("Connecting to MongoDB at %s:%s/%s", dbHost, dbPort, dbName)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}

	coll := client.Database(dbName).Collection(collName)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(coll)
	userWriteRepo := repositories.NewUserWriteRepository(coll)

	// Populate initial data if the store is empty
	if err := fixtures.SeedIfEmpty(ctx, userReadRepo, userWriteRepo); err != nil {
		return fmt.Errorf("fixture seeding failed: %w", err)
	}

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", handlers.NewListTodosHandler())
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewCreateUserHandler(userService))
		r.Get("/", handlers.NewListUsersHandler(userService))
		r.Get("/{user_id}", handlers.NewGetUserHandler(userService))
		r.Put("/{user_id}", handlers.NewUpdateUserHandler(userService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
