package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"americanclave/internal/catalog"
	"americanclave/internal/covers"
	"americanclave/internal/groups"
	"americanclave/internal/source"
	"americanclave/pkg/database"
	"americanclave/pkg/models"
	"americanclave/pkg/utils"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file path")
		albumsOut  = flag.String("albums", "data/albums.csv", "output CSV path for albums")
		playersOut = flag.String("players", "data/players.csv", "output CSV path for players")
	)
	flag.Parse()

	cfg, _, _, err := utils.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var src catalog.Source
	if cfg.Source.Kind == utils.SourceMirror {
		db := database.MustOpen(cfg.Database())
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("db migrate failed: %v", err)
		}
		src = source.NewMirror(db)
	} else {
		src = source.NewWorker(cfg.Source.WorkerURL, cfg.Timeout())
	}
	r := catalog.NewResolver(src, covers.NewBuilder(cfg.R2.PublicURL), nil)

	albums, err := r.Albums(ctx, false)
	if err != nil {
		log.Fatalf("list albums failed: %v", err)
	}
	if err := writeCSV(*albumsOut, albumHeader, albumRows(albums)); err != nil {
		log.Fatalf("export albums failed: %v", err)
	}

	players, err := r.Players(ctx)
	if err != nil {
		log.Fatalf("list players failed: %v", err)
	}
	if err := writeCSV(*playersOut, playerHeader, playerRows(players)); err != nil {
		log.Fatalf("export players failed: %v", err)
	}

	log.Printf("exported %d albums to %s and %d players to %s", len(albums), *albumsOut, len(players), *playersOut)
}

var albumHeader = []string{"id", "title", "slug", "artist", "catno", "canonical_catno", "group_id", "available_for_purchase", "price", "cover_url"}

func albumRows(albums []models.Album) [][]string {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		id := ""
		if a.ID != 0 {
			id = strconv.FormatInt(a.ID, 10)
		}
		price := ""
		if a.Price != 0 {
			price = strconv.FormatFloat(a.Price, 'f', 2, 64)
		}
		rows = append(rows, []string{
			id,
			a.Title,
			a.Slug,
			a.Artist,
			a.Catno,
			a.CanonicalCatno,
			strconv.Itoa(groups.GroupOf(catalog.AlbumEntry(a), groups.Table)),
			strconv.FormatBool(a.AvailableForPurchase),
			price,
			a.CoverURL,
		})
	}
	return rows
}

var playerHeader = []string{"id", "name", "slug", "core", "lifespan", "picture"}

func playerRows(players []models.Player) [][]string {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		id := ""
		if p.ID != 0 {
			id = strconv.FormatInt(p.ID, 10)
		}
		rows = append(rows, []string{id, p.Name, p.Slug, strconv.FormatBool(p.Core), p.Lifespan, p.Picture})
	}
	return rows
}

func writeCSV(outPath string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
