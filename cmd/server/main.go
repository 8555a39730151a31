// Company portal API server.
//
// @title           Company Portal API
// @version         1.0
// @description     Role-based portal: service catalog, request approvals, projects, and messaging.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/anuragsoft/company-portal/internal/api"
	"github.com/anuragsoft/company-portal/internal/core/domain"
	"github.com/anuragsoft/company-portal/internal/core/ports"
	"github.com/anuragsoft/company-portal/internal/core/service"
	"github.com/anuragsoft/company-portal/internal/infrastructure/config"
	"github.com/anuragsoft/company-portal/internal/infrastructure/db/memory"
	mongodb "github.com/anuragsoft/company-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/anuragsoft/company-portal/internal/infrastructure/db/redis"
	"github.com/anuragsoft/company-portal/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"
)

// repositories groups the persistence ports behind one struct so the two
// store drivers can be swapped in main without touching the services.
type repositories struct {
	users     ports.UserRepository
	companies ports.CompanyRepository
	catalog   ports.CatalogRepository
	requests  ports.RequestRepository
	projects  ports.ProjectRepository
	messages  ports.MessageRepository
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	var (
		repos   repositories
		mongoDB *gomongo.Database
	)
	switch cfg.StoreDriver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongodb disconnect failed")
			}
		}()

		userRepo := mongodb.NewUserRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
		}

		mongoDB = db
		repos = repositories{
			users:     userRepo,
			companies: mongodb.NewCompanyRepository(db),
			catalog:   mongodb.NewCatalogRepository(db),
			requests:  mongodb.NewRequestRepository(db),
			projects:  mongodb.NewProjectRepository(db),
			messages:  mongodb.NewMessageRepository(db),
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")

	case "memory":
		store := memory.NewStore()
		repos = repositories{
			users:     store.Users(),
			companies: store.Companies(),
			catalog:   store.Catalog(),
			requests:  store.Requests(),
			projects:  store.Projects(),
			messages:  store.Messages(),
		}
		log.Info().Msg("using in-memory store, data will not survive restarts")
	}

	// --- Redis (optional login throttle) ---
	var (
		rdb      *goredis.Client
		throttle service.LoginThrottle
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close failed")
			}
		}()
		throttle = redisdb.NewLoginThrottle(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttling enabled")
	} else {
		log.Info().Msg("REDIS_ADDR not set, login throttling disabled")
	}

	// --- Bootstrap admin ---
	if err := ensureAdmin(ctx, repos.users, cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	// --- Services and router ---
	e := api.NewRouter(api.Deps{
		Auth:      service.NewAuthService(repos.users, throttle, cfg.JWTSecret, cfg.TokenTTL, log),
		Users:     service.NewUserService(repos.users, log),
		Companies: service.NewCompanyService(repos.companies, log),
		Catalog:   service.NewCatalogService(repos.catalog, log),
		Requests:  service.NewRequestService(repos.requests, repos.catalog, repos.projects, repos.users, log),
		Projects:  service.NewProjectService(repos.projects, repos.users, repos.catalog, log),
		Messages:  service.NewMessageService(repos.messages, repos.users, log),
		Contacts:  service.NewContactService(repos.users, repos.projects),
		Dashboard: service.NewDashboardService(repos.users, repos.catalog, repos.requests, repos.projects, repos.messages),

		Mongo:     mongoDB,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	// --- Start with graceful shutdown ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// ensureAdmin creates the seed administrator when no admin account exists.
func ensureAdmin(ctx context.Context, users ports.UserRepository, cfg config.AdminConfig, log zerolog.Logger) error {
	n, err := users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := users.Create(ctx, &domain.User{
		Name:         "Administrator",
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("bootstrap admin account created")
	return nil
}
