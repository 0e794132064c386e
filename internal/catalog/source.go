// Package catalog resolves albums and players from path tokens and projects
// raw upstream records into the shapes the API serves.
//
// Nothing in this package performs I/O on its own; every fetch goes through
// a Source.
package catalog

import (
	"context"

	"americanclave/pkg/models"
)

// Source is implemented by each catalog backend (the D1 worker, the local
// SQLite mirror, in-memory fixtures in tests).
//
// Single-record lookups return (nil, nil) when the record does not exist.
// Any error is a transport or storage failure and is passed up unchanged.
type Source interface {
	Name() string
	ListAlbums(ctx context.Context) ([]models.RawRecord, error)
	GetAlbum(ctx context.Context, id int64) (models.RawRecord, error)
	ListPlayers(ctx context.Context) ([]models.RawRecord, error)
	// ListAlbumPlayers returns the album/player junction rows of one album,
	// one row per player per song. An unknown album yields no rows.
	ListAlbumPlayers(ctx context.Context, albumID int64) ([]models.RawRecord, error)
}
