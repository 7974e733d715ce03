package container

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/jwt"
	"catalog-backend/pkg/logger"

	"catalog-backend/internal/domains/account"
	accountHandler "catalog-backend/internal/domains/account/handler"
	accountRepo "catalog-backend/internal/domains/account/repository"
	accountService "catalog-backend/internal/domains/account/service"

	"catalog-backend/internal/domains/author"
	authorHandler "catalog-backend/internal/domains/author/handler"
	authorRepo "catalog-backend/internal/domains/author/repository"
	authorService "catalog-backend/internal/domains/author/service"

	"catalog-backend/internal/domains/book"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	bookService "catalog-backend/internal/domains/book/service"
)

// Container holds the whole dependency graph. Everything in it is a
// singleton living for the process lifetime. Fields are exported so
// tests can assemble a container by hand with fakes.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	AccountRepo account.Repository
	AuthorRepo  author.Repository
	BookRepo    book.Repository

	// Services
	AccountService account.Service
	AuthorService  author.Service
	BookService    book.Service

	// Handlers
	AccountHandler *accountHandler.AccountHandler
	AuthorHandler  *authorHandler.AuthorHandler
	BookHandler    *bookHandler.BookHandler
}

// NewContainer builds the dependency graph bottom-up: config, then
// infrastructure, then repositories, services and handlers. Order
// matters; each layer only sees the ones below it.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	logger.Info("Connected to PostgreSQL", nil)

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache
	logger.Info("Connected to Redis", nil)

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.AccountRepo = accountRepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)

	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	logger.Info("Container initialized", nil)
	return c, nil
}

// HealthCheck pings the backing stores.
func (c *Container) HealthCheck(ctx context.Context) error {
	if err := c.DB.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}
	if err := c.Cache.Ping(ctx); err != nil {
		return fmt.Errorf("cache unhealthy: %w", err)
	}
	return nil
}

// Close releases infrastructure connections in reverse init order.
func (c *Container) Close() {
	if closer, ok := c.Cache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("Container closed", nil)
}
