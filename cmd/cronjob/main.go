package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shelfrent-backend/internal/config"
	"shelfrent-backend/internal/errorlog"
	"shelfrent-backend/internal/jobs"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/repository/postgres"
	"shelfrent-backend/internal/scheduler"
	"shelfrent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'monthly-statements', 'all-monthly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Shelf Rental Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "driver", cfg.Database.Driver, "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := postgres.Open(cfg.Database.Driver, cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	inventorySvc := service.NewInventoryService(
		store.CustomerRepository,
		store.ShelfRepository,
		store.SaleRepository,
		service.InventoryOptions{
			Fallback:        cfg.FallbackData(),
			DisableFallback: !cfg.FallbackEnabled(),
			QueryTimeout:    cfg.QueryTimeout(),
			ErrorLog:        errorlog.NewFileLog(cfg.ErrorLog.Path),
			Pinger:          store,
		},
	)

	var mailer service.Mailer
	if cfg.Email.SendGridAPIKey != "" {
		mailer = service.NewSendGridMailer(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Warn("No SendGrid API key configured, statements will only be logged")
		mailer = service.NewLogMailer()
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(inventorySvc, mailer, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to register cron jobs: %v", err)
	}

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "next_run", cronScheduler.NextRun())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "monthly-statements":
		jobRunner.SendMonthlyStatements()
	case "all-monthly":
		jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - monthly-statements\n")
		fmt.Printf("  - all-monthly\n")
		os.Exit(1)
	}
}
