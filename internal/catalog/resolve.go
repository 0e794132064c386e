package catalog

import (
	"context"
	"fmt"
	"strconv"

	"americanclave/internal/slug"
	"americanclave/pkg/models"
)

// ParseID reports whether token is a plain positive decimal id. Tokens such
// as "21-broken-melodies-at-once" are slugs, not ids, even though they start
// with digits.
func ParseID(token string) (int64, bool) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func albumTitle(rec models.RawRecord) string { return rec.String("title") }

func playerName(rec models.RawRecord) string { return rec.String("name") }

// ResolveAlbumBySlugOrID finds the album a path token points at.
//
// A numeric token is fetched by id directly. Any other token is matched
// against ToSlug(title) of the full album list, and the matched album is
// then fetched by its id so callers always get the detail record. The two
// round trips are sequential. A matched album without an id cannot be
// fetched and counts as not found.
//
// Not found is (nil, TierNone, nil). The returned tier is TierNone for the
// id path.
func ResolveAlbumBySlugOrID(ctx context.Context, src Source, token string) (models.RawRecord, slug.Tier, error) {
	if id, ok := ParseID(token); ok {
		rec, err := src.GetAlbum(ctx, id)
		if err != nil {
			return nil, slug.TierNone, fmt.Errorf("get album %d: %w", id, err)
		}
		return rec, slug.TierNone, nil
	}

	albums, err := src.ListAlbums(ctx)
	if err != nil {
		return nil, slug.TierNone, fmt.Errorf("list albums: %w", err)
	}
	match, tier, ok := slug.Resolve(albums, albumTitle, token)
	if !ok {
		return nil, slug.TierNone, nil
	}
	id, ok := match.ID()
	if !ok {
		return nil, slug.TierNone, nil
	}
	rec, err := src.GetAlbum(ctx, id)
	if err != nil {
		return nil, slug.TierNone, fmt.Errorf("get album %d: %w", id, err)
	}
	if rec == nil {
		return nil, slug.TierNone, nil
	}
	return rec, tier, nil
}

// ResolvePlayerBySlug finds the player whose ToSlug(name) matches target.
// The worker has no player detail endpoint, so the list record is returned.
func ResolvePlayerBySlug(ctx context.Context, src Source, target string) (models.RawRecord, slug.Tier, error) {
	players, err := src.ListPlayers(ctx)
	if err != nil {
		return nil, slug.TierNone, fmt.Errorf("list players: %w", err)
	}
	match, tier, ok := slug.Resolve(players, playerName, target)
	if !ok {
		return nil, slug.TierNone, nil
	}
	return match, tier, nil
}
