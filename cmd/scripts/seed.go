package main

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/luxemods/economy-backend/internal/models"
	mongorepo "github.com/luxemods/economy-backend/internal/repositories/mongodb"
	"github.com/luxemods/economy-backend/pkg/mongodb"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the prize catalog (and optionally a bootstrap admin) into MongoDB.
//
// Usage:
//
//	go run ./cmd/scripts prizes.csv
//
// CSV columns: name,type,value,weight,active. Set SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD to also create an admin user.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "economy"
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	ctx := context.Background()
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	prizes, err := readPrizesCSV(csvFilePath)
	if err != nil {
		log.Fatalf("Failed to read prizes CSV: %v", err)
	}

	prizeRepo := mongorepo.NewPrizeRepository(db)
	for _, prize := range prizes {
		if err := prizeRepo.Create(ctx, prize); err != nil {
			log.Fatalf("Failed to insert prize %q: %v", prize.Name, err)
		}
		log.Printf("Inserted prize %q (type=%s value=%d weight=%.2f)", prize.Name, prize.Type, prize.Value, prize.Weight)
	}

	if email := os.Getenv("SEED_ADMIN_EMAIL"); email != "" {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			log.Fatal("SEED_ADMIN_PASSWORD is required when SEED_ADMIN_EMAIL is set")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		adminRepo := mongorepo.NewAdminUserRepository(db)
		admin := &models.AdminUser{Email: email, Password: string(hashed), Role: "admin"}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", email)
	}

	log.Printf("Seeded %d prizes", len(prizes))
}

func readPrizesCSV(path string) ([]*models.Prize, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var prizes []*models.Prize
	for i, row := range rows {
		if i == 0 && row[0] == "name" {
			continue // header
		}
		if len(row) < 5 {
			log.Printf("Skipping malformed row %d", i+1)
			continue
		}
		value, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, err
		}
		weight, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, err
		}
		active, err := strconv.ParseBool(row[4])
		if err != nil {
			return nil, err
		}
		prizes = append(prizes, &models.Prize{
			Name:   row[0],
			Type:   models.PrizeType(row[1]),
			Value:  value,
			Weight: weight,
			Active: active,
		})
	}
	return prizes, nil
}
