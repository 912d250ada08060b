package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	nats "github.com/nats-io/nats.go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/config"
	httpadapter "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/api"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/api/handlers"
	authmw "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/http/middleware"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/identity"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/llm"
	natsadapter "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/nats"
	repo "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/postgres"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/usecase"
	pkglog "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/log"
)

type App struct {
	cfg      *config.Config
	logger   pkglog.Logger
	db       *gorm.DB
	natsConn *nats.Conn
	echo     *echo.Echo
}

func New(ctx context.Context) (*App, error) {
	cfg := config.MustLoad()
	log := pkglog.New(cfg.AppEnv)

	db, err := gorm.Open(postgres.Open(buildDSN(cfg)), &gorm.Config{
		Logger:         loggerForGorm(cfg),
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.ChatMessage{},
		&domain.CareerProfile{},
		&domain.Roadmap{},
	); err != nil {
		return nil, err
	}

	// The event bus is optional; the service runs fine without it.
	var nc *nats.Conn
	var events natsadapter.EventPublisher
	if cfg.NATSURL != "" {
		nc, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			log.Warn().Err(err).Msg("nats connect failed, events disabled")
		} else {
			events = natsadapter.NewEventPublisher(nc, cfg.NATSSessionCreatedSubject, cfg.NATSRoadmapCreatedSubject)
		}
	}

	users := repo.NewUserRepository(db)
	sessions := repo.NewSessionRepository(db)
	messages := repo.NewMessageRepository(db)
	profiles := repo.NewProfileRepository(db)
	roadmaps := repo.NewRoadmapRepository(db)

	identityClient := identity.NewHTTPClient(cfg.IdentityExchangeURL, cfg.IdentityTimeout)
	gateway := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	authService := usecase.NewAuthService(cfg, log, users, sessions, identityClient, events)
	chatService := usecase.NewChatService(log, messages, gateway)
	careerService := usecase.NewCareerService(log, profiles, gateway)
	roadmapService := usecase.NewRoadmapService(log, roadmaps, gateway, events)
	profileService := usecase.NewProfileService(messages, profiles, roadmaps)

	sessionMW := authmw.NewSessionMiddleware(authService, cfg.SessionCookie)
	apiRouter := api.NewRouter(
		handlers.NewAuthHandler(cfg, authService),
		handlers.NewChatHandler(chatService),
		handlers.NewCareerHandler(careerService),
		handlers.NewRoadmapHandler(roadmapService),
		handlers.NewProfileHandler(profileService),
		sessionMW.Handler,
	)
	router := httpadapter.NewRouter(cfg, apiRouter)

	e := echo.New()
	router.Setup(e)

	return &App{cfg: cfg, logger: log, db: db, natsConn: nc, echo: e}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.echo.Shutdown(shutdownCtx)
	}()
	go func() {
		errCh <- a.echo.Start(fmt.Sprintf("%s:%s", a.cfg.HTTPHost, a.cfg.HTTPPort))
	}()
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) Close() {
	if a.natsConn != nil {
		_ = a.natsConn.Drain()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

func loggerForGorm(cfg *config.Config) logger.Interface {
	level := logger.Silent
	switch cfg.AppEnv {
	case "local":
		level = logger.Info
	default:
		level = logger.Warn
	}
	return logger.Default.LogMode(level)
}
