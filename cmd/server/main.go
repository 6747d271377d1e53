package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	httpAdapter "github.com/redbank/bankmcp/internal/adapter/http"
	"github.com/redbank/bankmcp/internal/adapter/http/handler"
	mcpAdapter "github.com/redbank/bankmcp/internal/adapter/mcp"
	postgresRepo "github.com/redbank/bankmcp/internal/adapter/repository/postgres"
	redisRepo "github.com/redbank/bankmcp/internal/adapter/repository/redis"
	"github.com/redbank/bankmcp/internal/infrastructure/config"
	"github.com/redbank/bankmcp/internal/infrastructure/logger"
	"github.com/redbank/bankmcp/internal/infrastructure/metrics"
	"github.com/redbank/bankmcp/internal/infrastructure/postgres"
	"github.com/redbank/bankmcp/internal/infrastructure/redis"
	"github.com/redbank/bankmcp/internal/usecase"
	redislib "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	connectCtx, cancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(connectCtx, cfg.DSN(), cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	m := metrics.New()

	// Connect to Redis when the summary cache is enabled
	var redisClient *redislib.Client
	if cfg.CacheEnabled() {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(log)
	customerRepo := postgresRepo.NewCustomerRepository(pool, m)
	statementRepo := postgresRepo.NewStatementRepository(pool, m)
	transactionRepo := postgresRepo.NewTransactionRepository(pool, m)

	var cache usecase.Cache
	if redisClient != nil {
		cache = redisRepo.NewCache(redisClient, m)
	}

	// Initialize use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, retrier)
	statementUC := usecase.NewStatementUseCase(statementRepo, retrier)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, retrier)
	summaryUC := usecase.NewSummaryUseCase(customerRepo, statementRepo, cache, retrier, cfg.CacheTTL, log)

	// Build the tool server
	mcpServer := mcpAdapter.New(mcpAdapter.Deps{
		Customers:    customerUC,
		Statements:   statementUC,
		Transactions: transactionUC,
		Summaries:    summaryUC,
		Logger:       log,
		Metrics:      m,
	})

	switch cfg.Transport {
	case "stdio":
		runStdio(ctx, mcpServer, log)
	default:
		runHTTP(cfg, mcpServer, pool, redisClient, log, m)
	}
}

func runStdio(ctx context.Context, mcpServer *mcpAdapter.Server, log zerolog.Logger) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("serving over stdio")

	if err := mcpServer.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("stdio transport failed")
	}

	log.Info().Msg("server stopped")
}

func runHTTP(
	cfg *config.Config,
	mcpServer *mcpAdapter.Server,
	pool handler.DBPinger,
	redisClient *redislib.Client,
	log zerolog.Logger,
	m *metrics.Metrics,
) {
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MCPHandler:    mcpServer.HTTPHandler(),
		HealthHandler: handler.NewHealthHandler(pool, redisClient),
		Logger:        log,
		Metrics:       m,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
