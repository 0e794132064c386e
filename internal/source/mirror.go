package source

import (
	"context"
	"database/sql"
	"fmt"

	"americanclave/pkg/models"
)

// Mirror serves the catalog from the local SQLite snapshot written by
// SaveSnapshot. Records come back exactly as the worker sent them.
type Mirror struct {
	DB *sql.DB
}

func NewMirror(db *sql.DB) *Mirror {
	return &Mirror{DB: db}
}

func (m *Mirror) Name() string {
	return "mirror"
}

func (m *Mirror) ListAlbums(ctx context.Context) ([]models.RawRecord, error) {
	return m.query(ctx, `SELECT record FROM albums ORDER BY seq`)
}

func (m *Mirror) ListPlayers(ctx context.Context) ([]models.RawRecord, error) {
	return m.query(ctx, `SELECT record FROM players ORDER BY seq`)
}

func (m *Mirror) ListAlbumPlayers(ctx context.Context, albumID int64) ([]models.RawRecord, error) {
	return m.query(ctx, `SELECT record FROM album_players WHERE album_id = ? ORDER BY seq`, albumID)
}

func (m *Mirror) GetAlbum(ctx context.Context, id int64) (models.RawRecord, error) {
	row := m.DB.QueryRowContext(ctx, `
		SELECT record
		FROM albums
		WHERE id = ?
		ORDER BY seq
		LIMIT 1
	`, id)

	var record string
	if err := row.Scan(&record); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getAlbum: %w", err)
	}
	rec, err := decodeRecord(record)
	if err != nil {
		return nil, fmt.Errorf("decode album %d: %w", id, err)
	}
	return rec, nil
}

func (m *Mirror) Ping(ctx context.Context) error {
	return m.DB.PingContext(ctx)
}

func (m *Mirror) query(ctx context.Context, sqlStr string, args ...any) ([]models.RawRecord, error) {
	rows, err := m.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("mirror query: %w", err)
	}
	defer rows.Close()

	out := []models.RawRecord{}
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("mirror scan: %w", err)
		}
		rec, err := decodeRecord(record)
		if err != nil {
			return nil, fmt.Errorf("mirror decode: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
