// Lullaby API
//
// REST API for tracking and analyzing a baby's sleep.
//
//	@title			Lullaby API
//	@version		1.0
//	@description	Log sleep, nap, wake and feeding events and turn them into statistics and personalized sleep plans.
//
//	@BasePath	/v1
//
//	@tag.name			children
//	@tag.description	Child profile endpoints
//
//	@tag.name			sleep-events
//	@tag.description	Sleep event logging endpoints
//
//	@tag.name			sleep-stats
//	@tag.description	Statistics, daily totals and sleep plans
package main

import (
	"context"
	"log"
	"net/http"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/mkowalczyk/lullaby/internal/api"
	"github.com/mkowalczyk/lullaby/internal/api/handler"
	"github.com/mkowalczyk/lullaby/internal/config"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/mkowalczyk/lullaby/internal/langfuse"
	"github.com/mkowalczyk/lullaby/internal/llm"
	"github.com/mkowalczyk/lullaby/internal/repository"
	"github.com/mkowalczyk/lullaby/internal/seed"
	"github.com/mkowalczyk/lullaby/internal/service"
	"github.com/mkowalczyk/lullaby/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "lullaby-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Child{}, &domain.SleepEvent{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	childRepo := repository.NewChildRepository(db)
	sleepEventRepo := repository.NewSleepEventRepository(db)

	// Initialize services
	childService := service.NewChildService(childRepo)
	sleepEventService := service.NewSleepEventService(sleepEventRepo, childRepo)
	statsService := service.NewStatsService(sleepEventRepo, childRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepPlanModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, plan endpoint will be unavailable")
	} else if cfg.PlanPromptName != "" || cfg.PlanPromptPath != "" {
		// Optionally override the built-in plan prompt with one managed in Langfuse
		planPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.PlanPromptName,
			PromptLabel: "production",
			SavePath:    cfg.PlanPromptPath,
		})
		if err != nil {
			log.Printf("Warning: failed to load plan prompt, using built-in: %v", err)
		} else {
			openaiClient = openaiClient.WithSystemPrompt(planPrompt)
		}
	}

	// Initialize plan service and Langfuse client for feedback scores
	planService := service.NewPlanService(statsService, openaiClient, childRepo)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize handlers
	childHandler := handler.NewChildHandler(childService)
	sleepEventHandler := handler.NewSleepEventHandler(sleepEventService)
	statsHandler := handler.NewStatsHandler(statsService, planService, langfuseClient)

	// Setup router
	router := api.NewRouter(childHandler, sleepEventHandler, statsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
