package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"blooddrive-backend/internal/config"
	infraCache "blooddrive-backend/internal/infrastructure/cache"
	"blooddrive-backend/internal/infrastructure/database"
	"blooddrive-backend/internal/infrastructure/queue"
	"blooddrive-backend/pkg/cache"

	donorHandler "blooddrive-backend/internal/domains/donor/handler"
	donorRepo "blooddrive-backend/internal/domains/donor/repository"
	donorService "blooddrive-backend/internal/domains/donor/service"
	statsHandler "blooddrive-backend/internal/domains/stats/handler"
	statsRepo "blooddrive-backend/internal/domains/stats/repository"
	statsService "blooddrive-backend/internal/domains/stats/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root of
// the dependency graph.
type Container struct {
	// Infrastructure - shared singletons
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	AsynqClient *queue.Client

	// Repositories
	DonorRepo donorRepo.DonorRepository
	StatsRepo statsRepo.StatsRepository

	// Services
	DonorService donorService.ServiceInterface
	StatsService statsService.ServiceInterface

	// Handlers
	DonorHandler *donorHandler.DonorHandler
	StatsHandler *statsHandler.StatsHandler
}

// NewContainer builds the full dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache, queue client) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE + QUEUE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is non-critical: rate limiting fails open and
			// notifications are best-effort
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	c.AsynqClient = queue.NewClient(cfg.Redis.Host)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	pool := c.DB.Pool
	c.DonorRepo = donorRepo.NewPostgresDonorRepository(pool)
	c.StatsRepo = statsRepo.NewPostgresStatsRepository(pool)
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	c.StatsService = statsService.NewStatsService(c.StatsRepo)
	c.DonorService = donorService.NewDonorService(c.DonorRepo, c.StatsRepo, c.AsynqClient)
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	c.DonorHandler = donorHandler.NewDonorHandler(c.DonorService)
	c.StatsHandler = statsHandler.NewStatsHandler(c.StatsService)
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases shared resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
