package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"americanclave/internal/catalog"
	"americanclave/pkg/models"
)

// Snapshot is a full copy of the catalog as one source served it.
type Snapshot struct {
	ID           string
	Source       string
	TakenAt      time.Time
	Albums       []models.RawRecord
	Players      []models.RawRecord
	AlbumPlayers map[int64][]models.RawRecord
}

// Pull copies everything src serves. Album list records are replaced by
// their detail records when the source has one, because list responses may
// omit tracklists. Albums without an id are kept but get no junction rows.
//
// A failing detail or junction fetch is logged and skipped so one broken
// album does not lose the whole snapshot; failing list calls abort.
func Pull(ctx context.Context, src catalog.Source) (*Snapshot, error) {
	log.Printf("[snapshot] pulling from %s", src.Name())

	albums, err := src.ListAlbums(ctx)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	players, err := src.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	snap := &Snapshot{
		ID:           uuid.NewString(),
		Source:       src.Name(),
		TakenAt:      time.Now().UTC(),
		Albums:       make([]models.RawRecord, 0, len(albums)),
		Players:      players,
		AlbumPlayers: make(map[int64][]models.RawRecord),
	}

	for _, a := range albums {
		id, ok := a.ID()
		if !ok {
			snap.Albums = append(snap.Albums, a)
			continue
		}
		detail, err := src.GetAlbum(ctx, id)
		switch {
		case err != nil:
			log.Printf("[snapshot] album %d detail error: %v", id, err)
			snap.Albums = append(snap.Albums, a)
		case detail == nil:
			snap.Albums = append(snap.Albums, a)
		default:
			snap.Albums = append(snap.Albums, detail)
		}

		rows, err := src.ListAlbumPlayers(ctx, id)
		if err != nil {
			log.Printf("[snapshot] album %d players error: %v", id, err)
			continue
		}
		snap.AlbumPlayers[id] = rows
	}

	log.Printf("[snapshot] pulled %d albums, %d players", len(snap.Albums), len(snap.Players))
	return snap, nil
}

// SaveSnapshot replaces the mirror contents with snap in one transaction.
func SaveSnapshot(ctx context.Context, db *sql.DB, snap *Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"albums", "players", "album_players"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	albumStmt, err := tx.PrepareContext(ctx, `INSERT INTO albums (id, title, record) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare albums: %w", err)
	}
	defer albumStmt.Close()
	for _, a := range snap.Albums {
		record, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal album %q: %w", a.String("title"), err)
		}
		if _, err := albumStmt.ExecContext(ctx, nullableID(a), a.String("title"), string(record)); err != nil {
			return fmt.Errorf("insert album %q: %w", a.String("title"), err)
		}
	}

	playerStmt, err := tx.PrepareContext(ctx, `INSERT INTO players (id, name, record) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare players: %w", err)
	}
	defer playerStmt.Close()
	for _, p := range snap.Players {
		record, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal player %q: %w", p.String("name"), err)
		}
		if _, err := playerStmt.ExecContext(ctx, nullableID(p), p.String("name"), string(record)); err != nil {
			return fmt.Errorf("insert player %q: %w", p.String("name"), err)
		}
	}

	junctionStmt, err := tx.PrepareContext(ctx, `INSERT INTO album_players (album_id, record) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare album_players: %w", err)
	}
	defer junctionStmt.Close()
	// walk albums in snapshot order so junction rows keep a stable seq
	for _, a := range snap.Albums {
		id, ok := a.ID()
		if !ok {
			continue
		}
		for _, row := range snap.AlbumPlayers[id] {
			record, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("marshal album %d player row: %w", id, err)
			}
			if _, err := junctionStmt.ExecContext(ctx, id, string(record)); err != nil {
				return fmt.Errorf("insert album %d player row: %w", id, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, source, albums, players, taken_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.Source, len(snap.Albums), len(snap.Players), snap.TakenAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func nullableID(rec models.RawRecord) sql.NullInt64 {
	id, ok := rec.ID()
	return sql.NullInt64{Int64: id, Valid: ok}
}

// SnapshotInfo describes one SaveSnapshot run.
type SnapshotInfo struct {
	ID      string
	Source  string
	Albums  int
	Players int
	TakenAt string
}

// LatestSnapshot returns (nil, nil) when the mirror has never been filled.
func LatestSnapshot(ctx context.Context, db *sql.DB) (*SnapshotInfo, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, source, albums, players, taken_at
		FROM snapshots
		ORDER BY taken_at DESC
		LIMIT 1
	`)
	var s SnapshotInfo
	if err := row.Scan(&s.ID, &s.Source, &s.Albums, &s.Players, &s.TakenAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan latest snapshot: %w", err)
	}
	return &s, nil
}
