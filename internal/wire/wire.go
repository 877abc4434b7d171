// Package wire provides dependency injection for the doze application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	cliadapter "github.com/example/doze/internal/adapters/cli"
	"github.com/example/doze/internal/adapters/postgres"
	"github.com/example/doze/internal/adapters/sqlite"
	"github.com/example/doze/internal/app"
	"github.com/example/doze/internal/config"
	"github.com/example/doze/internal/db"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

var (
	configDir string
	verbose   bool

	cfg       *config.Config
	logger    *slog.Logger
	pillars   *models.PillarRegistry
	kvStore   secondary.KVStore
	pgStore   *postgres.KVStore
	reminders *sqlite.ReminderStore
	events    *sqlite.EventSink

	goalService       primary.GoalService
	planService       primary.PlanService
	taskService       primary.TaskService
	syncService       primary.SyncService
	overdueService    primary.OverdueService
	ritualService     primary.RitualService
	mentorService     primary.MentorService
	oneThingService   primary.OneThingService
	chatService       primary.ChatService
	onboardingService primary.OnboardingService
	reminderService   primary.ReminderService
	analyticsService  primary.AnalyticsService

	once sync.Once
)

// Configure sets the config directory and log verbosity.
// Must be called before the first service accessor.
func Configure(dir string, verboseLogs bool) {
	configDir = dir
	verbose = verboseLogs
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir := configDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			log.Fatalf("failed to resolve config directory: %v", err)
		}
	}

	var err error
	cfg, err = config.LoadConfig(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Reminders and analytics stay on the local database whatever the document backend.
	db.SetPath(cfg.Storage.SQLitePath)
	db.SetLogger(logger)
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	reminders = sqlite.NewReminderStore(database)
	events = sqlite.NewEventSink(database)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pgStore, err = postgres.Open(context.Background(), cfg.Storage.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		kvStore = pgStore
	default:
		kvStore = sqlite.NewKVStore(database)
	}

	var notifier secondary.Notifier
	if cfg.Notifications.Enabled {
		notifier = reminders
	}

	pillars = models.NewPillarRegistry(cfg.CustomPillars...)
	opts := []app.Option{app.WithLogger(logger)}

	// Create services (primary ports implementation)
	goalService = app.NewGoalService(kvStore, pillars, opts...)
	taskService = app.NewTaskService(kvStore, pillars, opts...)
	syncService = app.NewSyncService(kvStore, taskService, pillars, events, opts...)
	planService = app.NewPlanService(kvStore, goalService, syncService, pillars, events, opts...)
	overdueService = app.NewOverdueService(kvStore, syncService, pillars, events, opts...)
	ritualService = app.NewRitualService(kvStore, opts...)
	mentorService = app.NewMentorService(kvStore, ritualService, pillars, opts...)
	reminderService = app.NewReminderService(notifier, overdueService, opts...)
	oneThingService = app.NewOneThingService(kvStore, reminderService, opts...)
	chatService = app.NewChatService(kvStore, opts...)
	onboardingService = app.NewOnboardingService(kvStore, goalService, taskService, oneThingService, opts...)
	analyticsService = app.NewAnalyticsService(kvStore, pillars, opts...)
}

// Close releases the storage connections.
func Close() {
	if pgStore != nil {
		pgStore.Close()
	}
	if err := db.Close(); err != nil && logger != nil {
		logger.Warn("database close failed", "error", err)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Pillars returns the pillar registry including custom pillars.
func Pillars() *models.PillarRegistry {
	once.Do(initServices)
	return pillars
}

// GoalService returns the singleton GoalService instance.
func GoalService() primary.GoalService {
	once.Do(initServices)
	return goalService
}

// PlanService returns the singleton PlanService instance.
func PlanService() primary.PlanService {
	once.Do(initServices)
	return planService
}

// TaskService returns the singleton TaskService instance.
func TaskService() primary.TaskService {
	once.Do(initServices)
	return taskService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// OverdueService returns the singleton OverdueService instance.
func OverdueService() primary.OverdueService {
	once.Do(initServices)
	return overdueService
}

// RitualService returns the singleton RitualService instance.
func RitualService() primary.RitualService {
	once.Do(initServices)
	return ritualService
}

// MentorService returns the singleton MentorService instance.
func MentorService() primary.MentorService {
	once.Do(initServices)
	return mentorService
}

// OneThingService returns the singleton OneThingService instance.
func OneThingService() primary.OneThingService {
	once.Do(initServices)
	return oneThingService
}

// ChatService returns the singleton ChatService instance.
func ChatService() primary.ChatService {
	once.Do(initServices)
	return chatService
}

// OnboardingService returns the singleton OnboardingService instance.
func OnboardingService() primary.OnboardingService {
	once.Do(initServices)
	return onboardingService
}

// ReminderService returns the singleton ReminderService instance.
func ReminderService() primary.ReminderService {
	once.Do(initServices)
	return reminderService
}

// Reminders returns the local reminder store.
func Reminders() *sqlite.ReminderStore {
	once.Do(initServices)
	return reminders
}

// Events returns the local analytics event sink.
func Events() *sqlite.EventSink {
	once.Do(initServices)
	return events
}

// AnalyticsService returns the singleton AnalyticsService instance.
func AnalyticsService() primary.AnalyticsService {
	once.Do(initServices)
	return analyticsService
}

// PlanAdapter returns a new PlanAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func PlanAdapter() *cliadapter.PlanAdapter {
	return PlanAdapterWithOutput(os.Stdout)
}

// PlanAdapterWithOutput returns a new PlanAdapter writing to the given output.
func PlanAdapterWithOutput(out io.Writer) *cliadapter.PlanAdapter {
	once.Do(initServices)
	return cliadapter.NewPlanAdapter(planService, pillars, out, time.Now)
}

// OverdueAdapter returns a new OverdueAdapter writing to stdout.
func OverdueAdapter() *cliadapter.OverdueAdapter {
	return OverdueAdapterWithOutput(os.Stdout)
}

// OverdueAdapterWithOutput returns a new OverdueAdapter writing to the given output.
func OverdueAdapterWithOutput(out io.Writer) *cliadapter.OverdueAdapter {
	once.Do(initServices)
	return cliadapter.NewOverdueAdapter(overdueService, pillars, out)
}

// TaskAdapter returns a new TaskAdapter writing to stdout.
func TaskAdapter() *cliadapter.TaskAdapter {
	return TaskAdapterWithOutput(os.Stdout)
}

// TaskAdapterWithOutput returns a new TaskAdapter writing to the given output.
func TaskAdapterWithOutput(out io.Writer) *cliadapter.TaskAdapter {
	once.Do(initServices)
	return cliadapter.NewTaskAdapter(taskService, reminderService, logger, out)
}

// AnalyticsAdapter returns a new AnalyticsAdapter writing to stdout.
func AnalyticsAdapter() *cliadapter.AnalyticsAdapter {
	return AnalyticsAdapterWithOutput(os.Stdout)
}

// AnalyticsAdapterWithOutput returns a new AnalyticsAdapter writing to the given output.
func AnalyticsAdapterWithOutput(out io.Writer) *cliadapter.AnalyticsAdapter {
	once.Do(initServices)
	return cliadapter.NewAnalyticsAdapter(analyticsService, pillars, out)
}
