package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-management-api/modules/api"
	"github.com/example/task-management-api/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

// @title			Task Management API
// @version		1.0.0
// @description	A REST API for managing tasks with status and priority tracking.
// @BasePath		/
func main() {
	log.Println("=== Task Management API ===")

	// Environment variables win over .env entries; a missing file is fine
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(task.NewModule()) // Independent module (owns task storage and services)
	app.Register(api.NewModule())  // Depends on task module

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("")
	log.Println("  POST   /api/v1/tasks                        - Create a task")
	log.Println("  GET    /api/v1/tasks                        - List tasks (skip/limit/status/priority)")
	log.Println("  GET    /api/v1/tasks/:id                    - Get a task by ID")
	log.Println("  PUT    /api/v1/tasks/:id                    - Update a task")
	log.Println("  DELETE /api/v1/tasks/:id                    - Delete a task")
	log.Println("  GET    /api/v1/tasks/status/:status         - List tasks by status")
	log.Println("  GET    /api/v1/tasks/priority/:priority     - List tasks by priority")
	log.Println("  GET    /health                              - Health check")
	log.Println("  GET    /docs/index.html                     - Swagger UI")
	log.Println("")
	log.Println("Task services are also reachable over NATS request-reply:")
	log.Println("  nats request services.task.create '{\"title\":\"Write the report\"}'")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
