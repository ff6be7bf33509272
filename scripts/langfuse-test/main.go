// Script to verify Langfuse connectivity end to end: creates a trace
// shaped like a plan-generation trace and scores it.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mkowalczyk/lullaby/internal/langfuse"
)

func main() {
	cfg := langfuse.Config{
		BaseURL:     getEnv("LANGFUSE_BASE_URL", "http://localhost:3001"),
		PublicKey:   os.Getenv("LANGFUSE_PUBLIC_KEY"),
		SecretKey:   os.Getenv("LANGFUSE_SECRET_KEY"),
		Environment: getEnv("LANGFUSE_ENV", "development"),
	}

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.SecretKey))
	fmt.Printf("Environment: %s\n", cfg.Environment)
	fmt.Println()

	client := langfuse.NewClient(cfg)
	if !client.IsEnabled() {
		log.Fatal("Langfuse client is disabled. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Create a trace shaped like the plan endpoint's
	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "langfuse-test",
		Name:   "sleep-plan",
		Input: map[string]any{
			"child_age_months": 14,
			"window_days":      14,
			"sent_at":          time.Now().UTC().Format(time.RFC3339),
		},
		Output: map[string]any{
			"summary": "connectivity check",
		},
		Tags: []string{"lullaby", "manual"},
	})
	if err != nil {
		log.Fatalf("Failed to create trace: %v", err)
	}

	fmt.Println("✓ Test trace created")
	fmt.Printf("  Trace ID: %s\n", traceID)

	// Score it the way the feedback endpoint would
	err = client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "caregiver_rating",
		Value:   5,
		Comment: "langfuse-test script",
	})
	if err != nil {
		log.Fatalf("Failed to create score: %v", err)
	}

	fmt.Println("✓ Test score attached")
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.BaseURL, traceID)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func maskKey(key string) string {
	if key == "" {
		return "(empty)"
	}
	if len(key) < 8 {
		return "***"
	}
	return key[:8] + "..."
}
