package main

import (
	"context"
	"flag"
	"log"
	"time"

	"americanclave/internal/source"
	"americanclave/pkg/database"
	"americanclave/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall time limit for the pull")
	flag.Parse()

	cfg, _, _, err := utils.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db := database.MustOpen(cfg.Database())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	// The worker is always the origin, whatever source the API is set to.
	worker := source.NewWorker(cfg.Source.WorkerURL, cfg.Timeout())

	snap, err := source.Pull(ctx, worker)
	if err != nil {
		log.Fatalf("pull failed: %v", err)
	}

	if err := source.SaveSnapshot(ctx, db, snap); err != nil {
		log.Fatalf("save failed: %v", err)
	}

	log.Printf("mirror at %s now holds snapshot %s (%d albums, %d players)",
		cfg.Source.DBPath, snap.ID, len(snap.Albums), len(snap.Players))
}
