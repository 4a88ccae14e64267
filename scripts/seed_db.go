package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"client-hub/internal/config"
	"client-hub/internal/domain/client"
	"client-hub/internal/repository/mongodb"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
)

var sampleClients = []client.Client{
	{
		ID:          "1",
		Name:        "Innovate Corp",
		Email:       "contact@innovatecorp.com",
		Phone:       "555-0101",
		ProjectType: client.ProjectTypeWebDesign,
		Budget:      15000,
		Status:      client.StatusInProgress,
		CreatedAt:   "2023-10-26T10:00:00Z",
	},
	{
		ID:          "2",
		Name:        "Quantum Solutions",
		Email:       "hello@quantum.co",
		Phone:       "555-0102",
		ProjectType: client.ProjectTypeAppDevelopment,
		Budget:      45000,
		Status:      client.StatusCompleted,
		CreatedAt:   "2023-08-15T14:30:00Z",
	},
	{
		ID:          "3",
		Name:        "Apex Digital",
		Email:       "info@apexdigital.net",
		Phone:       "555-0103",
		ProjectType: client.ProjectTypeSEO,
		Budget:      7500,
		Status:      client.StatusNew,
		CreatedAt:   "2023-11-01T09:00:00Z",
	},
	{
		ID:          "4",
		Name:        "Synergy Group",
		Email:       "connect@synergy.com",
		Phone:       "555-0104",
		ProjectType: client.ProjectTypeMarketing,
		Budget:      22000,
		Status:      client.StatusInProgress,
		CreatedAt:   "2023-09-05T11:45:00Z",
	},
	{
		ID:          "5",
		Name:        "NextGen Innovations",
		Email:       "support@nextgen.io",
		Phone:       "555-0105",
		ProjectType: client.ProjectTypeWebDesign,
		Budget:      12000,
		Status:      client.StatusCompleted,
		CreatedAt:   "2023-07-20T16:00:00Z",
	},
	{
		ID:          "6",
		Name:        "Stellar SEO",
		Email:       "results@stellarseo.com",
		Phone:       "555-0106",
		ProjectType: client.ProjectTypeSEO,
		Budget:      8000,
		Status:      client.StatusInProgress,
		CreatedAt:   "2023-10-10T13:20:00Z",
	},
	{
		ID:          "7",
		Name:        "Momentum Marketing",
		Email:       "growth@momentum.agency",
		Phone:       "555-0107",
		ProjectType: client.ProjectTypeMarketing,
		Budget:      18000,
		Status:      client.StatusNew,
		CreatedAt:   "2023-11-05T12:00:00Z",
	},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println("=== Seeding Client Database ===")
	fmt.Println()

	db, err := mongodb.New(&cfg.Mongo)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close(context.Background())

	fmt.Printf("✅ Connected to database %q\n", cfg.Mongo.DatabaseName())
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("clients")

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("❌ Failed to inspect clients collection: %v", err)
	}
	if count > 0 {
		fmt.Printf("Collection already holds %d client(s), nothing to do\n", count)
		return
	}

	repo := mongodb.NewClientRepository(db)
	for i := range sampleClients {
		record := sampleClients[i]
		if err := repo.Insert(ctx, &record); err != nil {
			log.Fatalf("❌ Failed to insert %q: %v", record.Name, err)
		}
		fmt.Printf("✅ Inserted %q\n", record.Name)
	}

	fmt.Println()
	fmt.Println("=== Seeding Complete ===")
	fmt.Println()
	fmt.Println("Next: Run 'go run main.go' to start the server")
}
