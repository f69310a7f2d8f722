package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/account"
	googleauth "discovery-backend/internal/auth"
	"discovery-backend/internal/insights"
	"discovery-backend/internal/profiles"
	"discovery-backend/internal/shared/config"
	"discovery-backend/internal/shared/server"
	"discovery-backend/internal/shared/storage/db"
	"discovery-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Engine *insights.Engine

	ProfilesRepo    profiles.Repo
	UsersRepo       users.Repo
	ProfilesService *profiles.Service
	UsersService    *users.Service
	AccountService  *account.Service

	ProfileHandler *profiles.Handler
	UsersHandler   *users.Handler
	AccountHandler *account.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Engine: insights.NewEngine(engineConfig(cfg)),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ProfileHandler: app.ProfileHandler,
		UsersHandler:   app.UsersHandler,
		AccountHandler: app.AccountHandler,
		GoogleAuth:     app.GoogleAuth,
	})

	return app, nil
}

// engineConfig maps env-provided overrides onto engine defaults.
func engineConfig(cfg config.Config) insights.Config {
	ec := insights.DefaultConfig()
	if cfg.InsightsMaxActions > 0 {
		ec.MaxActions = cfg.InsightsMaxActions
	}
	if cfg.InsightsMinActions > 0 {
		ec.MinActions = cfg.InsightsMinActions
	}
	if cfg.NearRetirementYears > 0 {
		ec.NearRetirementYears = cfg.NearRetirementYears
	}
	if cfg.LowEmergencyFundMonths > 0 {
		ec.LowEmergencyFundMonths = cfg.LowEmergencyFundMonths
	}
	return ec
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	var profileRepo profiles.Repo
	var userRepo users.Repo
	if app.DB != nil {
		profileRepo = &profiles.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	profileSvc := profiles.NewService(profileRepo, app.Engine)
	userSvc := users.NewService(userRepo)
	accountSvc := account.NewService(profileSvc)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.ProfilesRepo = profileRepo
	app.UsersRepo = userRepo
	app.ProfilesService = profileSvc
	app.UsersService = userSvc
	app.AccountService = accountSvc
	app.ProfileHandler = profiles.NewHandler(profileSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.AccountHandler = account.NewHandler(accountSvc)
	app.GoogleAuth = googleAuthSvc
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
