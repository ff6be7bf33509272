package main

import (
	"log"

	"github.com/mkowalczyk/lullaby/internal/config"
	"github.com/mkowalczyk/lullaby/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seed data created successfully")
}
