package catalog

import (
	"context"
	"fmt"
	"strings"

	"americanclave/internal/covers"
	"americanclave/internal/fields"
	"americanclave/internal/groups"
	"americanclave/internal/slug"
	"americanclave/pkg/models"
)

// Observer is told how each slug or id lookup ended. kind is "album" or
// "player"; outcome is "id", a slug tier name, or "miss".
type Observer interface {
	ObserveResolution(kind, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveResolution(string, string) {}

// Resolver answers the API's catalog questions against one Source.
type Resolver struct {
	Source   Source
	Covers   covers.Builder
	Observer Observer
}

// NewResolver wires a Resolver. obs may be nil.
func NewResolver(src Source, b covers.Builder, obs Observer) *Resolver {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Resolver{Source: src, Covers: b, Observer: obs}
}

func (r *Resolver) observe(kind string, rec models.RawRecord, tier slug.Tier, byID bool) {
	switch {
	case rec == nil:
		r.Observer.ObserveResolution(kind, "miss")
	case byID:
		r.Observer.ObserveResolution(kind, "id")
	default:
		r.Observer.ObserveResolution(kind, tier.String())
	}
}

// Albums lists every album, optionally only those available for purchase.
func (r *Resolver) Albums(ctx context.Context, purchasableOnly bool) ([]models.Album, error) {
	recs, err := r.Source.ListAlbums(ctx)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	out := make([]models.Album, 0, len(recs))
	for _, rec := range recs {
		a := ProjectAlbum(rec, r.Covers)
		if purchasableOnly && !a.AvailableForPurchase {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// AlbumDetail resolves token (id or slug) to the album detail. Returns
// (nil, nil) when nothing matches. An album without a stored tracklist
// gets one built from the song names of its player rows.
func (r *Resolver) AlbumDetail(ctx context.Context, token string) (*models.AlbumDetail, error) {
	rec, tier, err := ResolveAlbumBySlugOrID(ctx, r.Source, token)
	if err != nil {
		return nil, err
	}
	_, byID := ParseID(token)
	r.observe("album", rec, tier, byID)
	if rec == nil {
		return nil, nil
	}
	d := ProjectAlbumDetail(rec, r.Covers)
	if len(d.Tracklist) == 0 {
		if id, ok := rec.ID(); ok {
			rows, err := r.Source.ListAlbumPlayers(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("list album players %d: %w", id, err)
			}
			d.Tracklist = fields.SongTracklist(rows)
		}
	}
	return &d, nil
}

// AlbumPlayers returns the merged player appearances of the album token
// points at. A nil slice with a nil error means a slug token matched no
// album; numeric ids are passed straight to the source.
func (r *Resolver) AlbumPlayers(ctx context.Context, token string) ([]models.PlayerAppearance, error) {
	id, byID := ParseID(token)
	if !byID {
		albums, err := r.Source.ListAlbums(ctx)
		if err != nil {
			return nil, fmt.Errorf("list albums: %w", err)
		}
		match, tier, ok := slug.Resolve(albums, albumTitle, token)
		if !ok {
			r.observe("album", nil, tier, false)
			return nil, nil
		}
		if id, ok = match.ID(); !ok {
			r.observe("album", nil, tier, false)
			return nil, nil
		}
		r.observe("album", match, tier, false)
	}
	rows, err := r.Source.ListAlbumPlayers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list album players %d: %w", id, err)
	}
	return MergePlayerAppearances(rows), nil
}

// Groups partitions every album into the curated editorial groups.
func (r *Resolver) Groups(ctx context.Context) ([]groups.Bucket[models.Album], error) {
	albums, err := r.Albums(ctx, false)
	if err != nil {
		return nil, err
	}
	return groups.Assign(albums, AlbumEntry, groups.Table), nil
}

// Players lists every player in upstream order.
func (r *Resolver) Players(ctx context.Context) ([]models.Player, error) {
	recs, err := r.Source.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	out := make([]models.Player, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ProjectPlayer(rec))
	}
	return out, nil
}

// PlayerDirectory lists the players whose name contains query (case
// insensitive), core players first.
func (r *Resolver) PlayerDirectory(ctx context.Context, query string) ([]models.Player, error) {
	players, err := r.Players(ctx)
	if err != nil {
		return nil, err
	}
	players = FilterPlayers(players, strings.TrimSpace(query))
	SortPlayers(players)
	return players, nil
}

func (r *Resolver) player(ctx context.Context, target string) (models.RawRecord, error) {
	rec, tier, err := ResolvePlayerBySlug(ctx, r.Source, target)
	if err != nil {
		return nil, err
	}
	r.observe("player", rec, tier, false)
	return rec, nil
}

// PlayerDetail resolves a player slug. Returns (nil, nil) when nothing
// matches.
func (r *Resolver) PlayerDetail(ctx context.Context, target string) (*models.Player, error) {
	rec, err := r.player(ctx, target)
	if err != nil || rec == nil {
		return nil, err
	}
	p := ProjectPlayer(rec)
	return &p, nil
}

// PlayerAlbums returns the albums nested on the player record. A nil slice
// with a nil error means no player matched.
func (r *Resolver) PlayerAlbums(ctx context.Context, target string) ([]models.PlayerCredit, error) {
	rec, err := r.player(ctx, target)
	if err != nil || rec == nil {
		return nil, err
	}
	return PlayerCredits(rec), nil
}
