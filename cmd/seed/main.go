package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"antalyahotel/internal/config"
	"antalyahotel/internal/database"
	"antalyahotel/internal/repository"
	"antalyahotel/internal/store"
)

// Resets the durable snapshots to the built-in seed catalog: rooms are
// rewritten, bookings and the admin session flag are removed.
func main() {
	keepBookings := flag.Bool("keep-bookings", false, "leave the bookings snapshot in place")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	snapshots := repository.NewSnapshotRepository(db)
	if err := snapshots.Migrate(); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	ctx := context.Background()

	raw, err := json.Marshal(store.SeedRooms())
	if err != nil {
		log.Fatal(err)
	}
	if err := snapshots.Save(ctx, store.KeyRooms, raw); err != nil {
		log.Fatal("Seeding rooms failed:", err)
	}
	log.Println("Seeded rooms snapshot")

	if !*keepBookings {
		if err := snapshots.Delete(ctx, store.KeyBookings); err != nil {
			log.Fatal("Clearing bookings failed:", err)
		}
		log.Println("Cleared bookings snapshot")
	}

	if err := snapshots.Delete(ctx, store.KeyAdminAuth); err != nil {
		log.Fatal("Clearing admin session failed:", err)
	}
	log.Println("Cleared admin session flag")

	log.Println("Done")
}
