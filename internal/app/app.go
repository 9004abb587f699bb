package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/config"
	"github.com/nzoschke/productivity/internal/db"
	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/markdown"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/storage"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Cfg   *config.Config
	DB    *sqlx.DB
	Clock service.Clock

	AuthService       *service.AuthService
	EmailService      *service.EmailService
	ImageService      *service.ImageService
	ReminderService   *service.ReminderService
	DashboardService  *service.DashboardService
	TaskService       *service.TaskService
	GoalService       *service.GoalService
	VisionService     *service.VisionService
	NoteService       *service.NoteService
	BookService       *service.BookService
	FinanceService    *service.FinanceService
	PrayerService     *service.PrayerService
	RecitationService *service.RecitationService
	Parser            *markdown.Parser
}

// tracker is the part of every tracker service the app drives.
type tracker interface {
	Load(ctx context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	var database *sqlx.DB
	if cfg.BackendEnabled() {
		var err error
		database, err = db.Init(cfg.DBDriver, cfg.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %v", err)
		}

		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			return nil, fmt.Errorf("failed to run migrations: %v", err)
		}
	} else {
		slog.Warn("backend disabled, serving from the fallback store only")
	}

	// Storage
	imageStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	clock := service.NewClock(cfg.Location())
	dir := cfg.FallbackPath

	// Services
	tasks := service.NewTaskService(repository.NewTaskRepository(database), localstore.New[model.Task](dir, localstore.KeyTasks), clock)
	goals := service.NewGoalService(repository.NewGoalRepository(database), localstore.New[model.Goal](dir, localstore.KeyGoals), clock)
	vision := service.NewVisionService(repository.NewVisionRepository(database), localstore.New[model.VisionItem](dir, localstore.KeyVision), clock)
	notes := service.NewNoteService(repository.NewNoteRepository(database), localstore.New[model.Note](dir, localstore.KeyNotes), clock)
	books := service.NewBookService(repository.NewBookRepository(database), localstore.New[model.Book](dir, localstore.KeyBooks), clock)
	finances := service.NewFinanceService(repository.NewFinanceRepository(database), localstore.New[model.FinanceEntry](dir, localstore.KeyFinances), clock)
	prayers := service.NewPrayerService(repository.NewPrayerRepository(database), localstore.New[model.PrayerDay](dir, localstore.KeyPrayers), clock)
	recitations := service.NewRecitationService(repository.NewRecitationRepository(database), localstore.New[model.Recitation](dir, localstore.KeyRecitations), clock)

	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)

	return &App{
		Cfg:               cfg,
		DB:                database,
		Clock:             clock,
		AuthService:       service.NewAuthService(cfg.PasswordHash, cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry),
		EmailService:      emailService,
		ImageService:      service.NewImageService(imageStorage),
		ReminderService:   service.NewReminderService(tasks, emailService, cfg.ReminderEmail, cfg.ReminderSchedule, clock),
		DashboardService:  service.NewDashboardService(tasks, goals, books, finances, prayers, recitations, clock),
		TaskService:       tasks,
		GoalService:       goals,
		VisionService:     vision,
		NoteService:       notes,
		BookService:       books,
		FinanceService:    finances,
		PrayerService:     prayers,
		RecitationService: recitations,
		Parser:            markdown.NewParser(),
	}, nil
}

func (a *App) trackers() map[string]tracker {
	return map[string]tracker{
		"tasks":       a.TaskService,
		"goals":       a.GoalService,
		"vision":      a.VisionService,
		"notes":       a.NoteService,
		"books":       a.BookService,
		"finances":    a.FinanceService,
		"prayers":     a.PrayerService,
		"recitations": a.RecitationService,
	}
}

// Load fetches every tracker from the backend in parallel. Trackers that
// fail keep serving their fallback snapshot; their errors are joined.
func (a *App) Load(ctx context.Context) error {
	var g errgroup.Group
	errs := make(chan error, len(a.trackers()))

	for name, t := range a.trackers() {
		g.Go(func() error {
			err := t.Load(ctx)
			if err != nil {
				errs <- fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	_ = g.Wait()
	close(errs)

	var all []error
	for err := range errs {
		all = append(all, err)
	}
	return errors.Join(all...)
}

// Wait blocks until every pending background write has finished.
func (a *App) Wait() {
	a.TaskService.Collection().Wait()
	a.GoalService.Collection().Wait()
	a.VisionService.Collection().Wait()
	a.NoteService.Collection().Wait()
	a.BookService.Collection().Wait()
	a.FinanceService.Collection().Wait()
	a.PrayerService.Collection().Wait()
	a.RecitationService.Collection().Wait()
}

func (a *App) Close() error {
	a.ReminderService.Stop()
	a.Wait()
	return db.Close(a.DB)
}
