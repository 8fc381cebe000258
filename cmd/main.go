package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-todo-boards/docs"
	"github.com/sbilibin2017/gw-todo-boards/internal/facades"
	"github.com/sbilibin2017/gw-todo-boards/internal/handlers"
	"github.com/sbilibin2017/gw-todo-boards/internal/jwt"
	"github.com/sbilibin2017/gw-todo-boards/internal/logger"
	"github.com/sbilibin2017/gw-todo-boards/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-boards/internal/migrations"
	"github.com/sbilibin2017/gw-todo-boards/internal/repositories"
	"github.com/sbilibin2017/gw-todo-boards/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	RequestTimeout time.Duration
	FrontendURL    string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	RateLimitRequests int
	RateLimitWindow   time.Duration

	KafkaBrokers   []string
	KafkaMailTopic string

	JWTSecretKey string
	JWTExp       time.Duration

	VerificationTokenTTL time.Duration
	ResetTokenTTL        time.Duration
}

// @title gw-todo-boards API
// @version 1.0.0
// @description Boards and todos with email-verified accounts
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, logging, and JWT configuration.
// Variables already present in the environment take precedence.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		n, err := getInt(key, defaultValue)
		return time.Duration(n) * time.Second, err
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.FrontendURL = strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/")
	if cfg.RequestTimeout, err = getSeconds("APP_REQUEST_TIMEOUT_SECOND", "30"); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Rate limit config, 0 requests disables limiting
	if cfg.RateLimitRequests, err = getInt("RATE_LIMIT_REQUESTS", "20"); err != nil {
		return
	}
	if cfg.RateLimitWindow, err = getSeconds("RATE_LIMIT_WINDOW_SECOND", "900"); err != nil {
		return
	}

	// Kafka config, no brokers means mails are only logged
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaMailTopic = getEnv("KAFKA_MAIL_TOPIC", "mails")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}

	// Single-use token config
	if cfg.VerificationTokenTTL, err = getSeconds("VERIFICATION_TOKEN_TTL_SECOND", "86400"); err != nil {
		return
	}
	if cfg.ResetTokenTTL, err = getSeconds("RESET_TOKEN_TTL_SECOND", "3600"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis only when rate limiting is on
	var limiter middlewares.RateLimiter
	if cfg.RateLimitRequests > 0 {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnw("Redis unavailable, rate limiting fails open", "err", err)
		}
		limiter = repositories.NewRateLimitRepository(rdb, "ratelimit:")
	}

	// Mail delivery
	var writer facades.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer = facades.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaMailTopic)
		log.Infof("Publishing mails to Kafka topic %s", cfg.KafkaMailTopic)
	} else {
		log.Info("No Kafka brokers configured, mails are written to the log")
	}
	mailer := facades.NewMailKafkaFacade(writer)
	defer mailer.Close()

	r := newRouter(cfg, db, limiter, mailer)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP API.
// A nil limiter disables rate limiting of the auth endpoints.
func newRouter(cfg config, db *sqlx.DB, limiter middlewares.RateLimiter, mailer services.Mailer) http.Handler {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tokenReadRepo := repositories.NewTokenReadRepository(db)
	tokenWriteRepo := repositories.NewTokenWriteRepository(db)
	boardReadRepo := repositories.NewBoardReadRepository(db)
	boardWriteRepo := repositories.NewBoardWriteRepository(db)
	todoReadRepo := repositories.NewTodoReadRepository(db, middlewares.GetTxFromContext)
	todoWriteRepo := repositories.NewTodoWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo,
		tokenReadRepo, tokenWriteRepo,
		mailer, tokens,
		services.AuthConfig{
			FrontendURL:          cfg.FrontendURL,
			VerificationTokenTTL: cfg.VerificationTokenTTL,
			ResetTokenTTL:        cfg.ResetTokenTTL,
			BcryptCost:           bcrypt.DefaultCost,
		},
	)
	boardService := services.NewBoardService(boardReadRepo, boardWriteRepo)
	todoService := services.NewTodoService(boardReadRepo, todoReadRepo, todoWriteRepo)

	authMiddleware := middlewares.AuthMiddleware(tokens)
	txMiddleware := middlewares.TxMiddleware(db)
	limited := func(h http.HandlerFunc) http.Handler {
		if limiter == nil {
			return h
		}
		return middlewares.RateLimitMiddleware(limiter, cfg.RateLimitRequests, cfg.RateLimitWindow)(h)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.NewHealthHandler())

		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Method(http.MethodPost, "/register", limited(handlers.NewRegisterHandler(authService)))
			r.Method(http.MethodPost, "/login", limited(handlers.NewLoginHandler(authService)))
			r.Method(http.MethodPost, "/verify-email", limited(handlers.NewVerifyEmailHandler(authService)))
			r.Method(http.MethodPost, "/forgot-password", limited(handlers.NewForgotPasswordHandler(authService)))
			r.Method(http.MethodPost, "/reset-password", limited(handlers.NewResetPasswordHandler(authService)))
			r.With(authMiddleware).Get("/me", handlers.NewMeHandler(authService))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Route("/boards", func(r chi.Router) {
				r.Post("/", handlers.NewCreateBoardHandler(boardService))
				r.Get("/", handlers.NewListBoardsHandler(boardService))
				r.Get("/{id}", handlers.NewGetBoardHandler(boardService))
				r.Put("/{id}", handlers.NewUpdateBoardHandler(boardService))
				r.Delete("/{id}", handlers.NewDeleteBoardHandler(boardService))
			})

			r.Route("/todos", func(r chi.Router) {
				r.With(txMiddleware).Put("/reorder", handlers.NewReorderTodosHandler(todoService))
				r.Post("/boards/{boardId}/todos", handlers.NewCreateTodoHandler(todoService))
				r.Get("/boards/{boardId}/todos", handlers.NewListTodosHandler(todoService))
				r.Get("/{id}", handlers.NewGetTodoHandler(todoService))
				r.Put("/{id}", handlers.NewUpdateTodoHandler(todoService))
				r.Delete("/{id}", handlers.NewDeleteTodoHandler(todoService))
			})

			// Same todos, board id taken from the request body on create
			r.Route("/tasks", func(r chi.Router) {
				r.With(txMiddleware).Put("/reorder", handlers.NewReorderTodosHandler(todoService))
				r.Post("/", handlers.NewCreateTodoHandler(todoService))
				r.Get("/{id}", handlers.NewGetTodoHandler(todoService))
				r.Put("/{id}", handlers.NewUpdateTodoHandler(todoService))
				r.Delete("/{id}", handlers.NewDeleteTodoHandler(todoService))
			})
		})
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
