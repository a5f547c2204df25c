// Command seed fills the scan event store with sample attendance for every
// section of a school.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"attendance-sf2/src/config"
	"attendance-sf2/src/database"
	"attendance-sf2/src/seeder"
)

func main() {
	cfg := config.Load()
	now := time.Now().In(cfg.Location())

	school := flag.String("school", "", "schoolId to seed")
	year := flag.Int("year", now.Year(), "calendar year")
	month := flag.Int("month", int(now.Month()), "month 1-12")
	absentEvery := flag.Int("absent-every", 5, "absence cadence, 0 for perfect attendance")
	flag.Parse()

	if *school == "" {
		log.Fatal("❌ -school is required")
	}
	if *month < 1 || *month > 12 {
		log.Fatalf("❌ invalid month %d", *month)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var store database.Store
	switch cfg.StoreDriver {
	case database.DriverFirestore:
		fs, err := database.InitFirestore(ctx, cfg.FirestoreProjectID, cfg.GoogleCredentials)
		if err != nil {
			log.Fatalf("❌ firestore: %v", err)
		}
		defer fs.Close()
		store = database.NewFirestoreStore(fs)
	default:
		if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
			log.Fatalf("❌ mongo: %v", err)
		}
		defer database.DisconnectMongoDB(context.Background())
		store = database.NewDefaultMongoStore()
	}

	n, err := seeder.SeedSchool(ctx, store, store, seeder.Options{
		SchoolID:    *school,
		Year:        *year,
		Month:       time.Month(*month),
		Location:    cfg.Location(),
		AbsentEvery: *absentEvery,
	})
	if err != nil {
		log.Fatalf("❌ seed failed after %d events: %v", n, err)
	}
	log.Printf("✅ Done, %d scan events", n)
}
