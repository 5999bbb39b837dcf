// Package app wires configuration, storage and services together for the
// API server and the command line tool.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/auth"
	"github.com/Ar-Dante/Quiz-platform/internal/cache"
	"github.com/Ar-Dante/Quiz-platform/internal/config"
	"github.com/Ar-Dante/Quiz-platform/internal/email"
	"github.com/Ar-Dante/Quiz-platform/internal/events"
	"github.com/Ar-Dante/Quiz-platform/internal/handler"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/Ar-Dante/Quiz-platform/internal/service"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type App struct {
	Config    *config.Config
	DB        *gorm.DB
	Store     *cache.RedisStore
	Publisher events.Publisher
	Tokens    *auth.TokenManager

	Users         *service.UserService
	Companies     *service.CompanyService
	Members       *service.MembershipService
	Workflow      *service.WorkflowService
	Quizzes       *service.QuizService
	Results       *service.ResultService
	Notifications *service.NotificationService
	Exports       *service.ExportService
	Imports       *service.ImportService
	Reminders     *service.ReminderScheduler
}

// New opens every backing connection and builds the services on top.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	db, err := OpenDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}

	store := cache.Dial(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	mail, err := email.FromConfig(cfg)
	if err != nil {
		store.Close()
		publisher.Close()
		return nil, fmt.Errorf("setting up mail: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	a := &App{
		Config:    cfg,
		DB:        db,
		Store:     store,
		Publisher: publisher,
		Tokens:    auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
	}
	a.Users = service.NewUserService(userRepo, auth.NewPasswordHasher(), a.Tokens, auth.NewExternalVerifier(cfg.JWT.ExternalSecret))
	a.Companies = service.NewCompanyService(companyRepo)
	a.Members = service.NewMembershipService(repository.NewMembershipRepository(db))
	a.Workflow = service.NewWorkflowService(repository.NewActionRepository(db), a.Members, publisher)
	a.Quizzes = service.NewQuizService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db))
	a.Results = service.NewResultService(repository.NewResultRepository(db))
	a.Notifications = service.NewNotificationService(repository.NewNotificationRepository(db))
	a.Exports = service.NewExportService(store, cfg.Redis.ResultTTL)
	a.Imports = service.NewImportService(a.Quizzes)

	var sender email.Sender
	if mail != nil {
		sender = mail
	}
	a.Reminders = service.NewReminderScheduler(
		companyRepo, userRepo, a.Members, a.Quizzes, a.Results, a.Notifications,
		sender, cfg.Reminder.Interval, log,
	)
	a.Reminders.SetBatchSize(cfg.Reminder.BatchSize)

	return a, nil
}

// newPublisher connects to the broker, or drops events when none is set.
func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQP.URL == "" {
		return events.NoOpPublisher{}, nil
	}
	p, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, fmt.Errorf("setting up event publisher: %w", err)
	}
	return p, nil
}

func (a *App) Handlers() handler.Handlers {
	return handler.Handlers{
		Auth:      handler.NewAuthHandler(a.Users),
		Users:     handler.NewUserHandler(a.Users),
		Companies: handler.NewCompanyHandler(a.Companies, a.Members, a.Workflow),
		Quizzes: handler.NewQuizHandler(handler.QuizDeps{
			Companies:     a.Companies,
			Members:       a.Members,
			Quizzes:       a.Quizzes,
			Results:       a.Results,
			Exports:       a.Exports,
			Imports:       a.Imports,
			Notifications: a.Notifications,
			Publisher:     a.Publisher,
		}),
		Results:       handler.NewResultHandler(a.Companies, a.Members, a.Results, a.Exports),
		Analytics:     handler.NewAnalyticsHandler(a.Companies, a.Members, a.Quizzes, a.Results),
		Notifications: handler.NewNotificationHandler(a.Notifications),
	}
}

func (a *App) Close() error {
	var errs []error
	errs = append(errs, a.Publisher.Close(), a.Store.Close())
	if sqlDB, err := a.DB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}

func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
