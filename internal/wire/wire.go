// Package wire provides dependency injection for the taskmeister
// application. It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/NiyaziPro/taskmeister/internal/adapters/cli"
	"github.com/NiyaziPro/taskmeister/internal/adapters/mail"
	"github.com/NiyaziPro/taskmeister/internal/adapters/sqlite"
	"github.com/NiyaziPro/taskmeister/internal/app"
	"github.com/NiyaziPro/taskmeister/internal/config"
	"github.com/NiyaziPro/taskmeister/internal/db"
	"github.com/NiyaziPro/taskmeister/internal/ports/primary"
)

var (
	workerService     primary.WorkerService
	houseService      primary.HouseService
	assignmentService primary.AssignmentService
	historyService    primary.HistoryService
	configPath        string
	once              sync.Once
)

// SetConfigPath overrides the config file location. It must be called
// before the first service is requested; later calls have no effect.
func SetConfigPath(path string) {
	configPath = path
}

// WorkerService returns the singleton WorkerService instance.
func WorkerService() primary.WorkerService {
	once.Do(initServices)
	return workerService
}

// HouseService returns the singleton HouseService instance.
func HouseService() primary.HouseService {
	once.Do(initServices)
	return houseService
}

// AssignmentService returns the singleton AssignmentService instance.
func AssignmentService() primary.AssignmentService {
	once.Do(initServices)
	return assignmentService
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.LoadConfig(config.ResolvePath(configPath))
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	dbPath := cfg.DatabasePath
	if dbPath == "" {
		dbPath, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}

	database, err := db.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) with injected DB
	workerRepo := sqlite.NewWorkerRepository(database)
	houseRepo := sqlite.NewHouseRepository(database)
	assignmentRepo := sqlite.NewAssignmentRepository(database)
	mailer := mail.NewSMTPMailer(cfg.SMTP)

	// Create services (primary ports implementation)
	workerService = app.NewWorkerService(workerRepo)
	houseService = app.NewHouseService(houseRepo)
	assignmentService = app.NewAssignmentService(assignmentRepo, workerRepo, houseRepo, mailer)
	historyService = app.NewHistoryService(assignmentRepo)
}

// WorkerAdapter returns a new WorkerAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func WorkerAdapter() *cliadapter.WorkerAdapter {
	return WorkerAdapterWithOutput(os.Stdout)
}

// WorkerAdapterWithOutput returns a new WorkerAdapter writing to the given output.
func WorkerAdapterWithOutput(out io.Writer) *cliadapter.WorkerAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkerAdapter(workerService, out)
}

// HouseAdapter returns a new HouseAdapter writing to stdout.
func HouseAdapter() *cliadapter.HouseAdapter {
	return HouseAdapterWithOutput(os.Stdout)
}

// HouseAdapterWithOutput returns a new HouseAdapter writing to the given output.
func HouseAdapterWithOutput(out io.Writer) *cliadapter.HouseAdapter {
	once.Do(initServices)
	return cliadapter.NewHouseAdapter(houseService, out)
}

// AssignmentAdapter returns a new AssignmentAdapter writing to stdout.
func AssignmentAdapter() *cliadapter.AssignmentAdapter {
	return AssignmentAdapterWithOutput(os.Stdout)
}

// AssignmentAdapterWithOutput returns a new AssignmentAdapter writing to the given output.
func AssignmentAdapterWithOutput(out io.Writer) *cliadapter.AssignmentAdapter {
	once.Do(initServices)
	return cliadapter.NewAssignmentAdapter(assignmentService, out)
}

// HistoryAdapter returns a new HistoryAdapter writing to stdout.
func HistoryAdapter() *cliadapter.HistoryAdapter {
	return HistoryAdapterWithOutput(os.Stdout)
}

// HistoryAdapterWithOutput returns a new HistoryAdapter writing to the given output.
func HistoryAdapterWithOutput(out io.Writer) *cliadapter.HistoryAdapter {
	once.Do(initServices)
	return cliadapter.NewHistoryAdapter(historyService, out)
}
