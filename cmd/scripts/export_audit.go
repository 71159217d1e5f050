package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rsjanwa/call-filter-backend/internal/config"
	mongorepo "github.com/rsjanwa/call-filter-backend/internal/repositories/mongodb"
	"github.com/rsjanwa/call-filter-backend/internal/utils"
	"github.com/rsjanwa/call-filter-backend/pkg/mongodb"
)

// Exports the disconnection audit log to a CSV file. Usage:
//
//	export_audit <output.csv>
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := config.GetEnv("MONGODB_DATABASE", "call_filter_db")

	if len(os.Args) < 2 {
		log.Fatal("Output file path is required as a command line argument")
	}
	outputPath := os.Args[1]

	// Connect to MongoDB
	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	unlinkRepo := mongorepo.NewUnlinkHistoryRepository(db)

	records, err := unlinkRepo.FindAll(context.Background())
	if err != nil {
		log.Fatalf("Failed to read audit log: %v", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Aadhaar,
			record.Mobile,
			record.Status,
			record.DisconnectedAt.Format(time.RFC3339),
		})
	}

	header := []string{"aadhaar_number", "mobile_number", "status", "disconnected_at"}
	if err := utils.WriteCSV(file, header, rows); err != nil {
		log.Fatalf("Failed to write CSV: %v", err)
	}

	log.Printf("Exported %d audit entries to %s", len(rows), outputPath)
}
