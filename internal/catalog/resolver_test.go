package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"americanclave/internal/groups"
	"americanclave/pkg/models"
)

func TestResolverAlbums(t *testing.T) {
	r := NewResolver(fixtureSource(), testCovers, nil)

	all, err := r.Albums(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d albums, want 3", len(all))
	}

	purchasable, err := r.Albums(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(purchasable) != 1 || purchasable[0].ID != 7 {
		t.Errorf("purchasable = %+v, want only album 7", purchasable)
	}
}

func TestResolverAlbumDetail(t *testing.T) {
	obs := &recordingObserver{}
	r := NewResolver(fixtureSource(), testCovers, obs)
	ctx := context.Background()

	d, err := r.AlbumDetail(ctx, "tango-zero-hour")
	if err != nil {
		t.Fatal(err)
	}
	if d == nil || d.ID != 7 || len(d.Tracklist) != 2 || d.Tracklist[0].Duration != "4:39" {
		t.Fatalf("detail = %+v", d)
	}

	if d, err = r.AlbumDetail(ctx, "21"); err != nil || d == nil || d.CanonicalCatno != "1036" {
		t.Fatalf("detail by id = %+v, %v", d, err)
	}

	if d, err = r.AlbumDetail(ctx, "missing-album"); err != nil || d != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", d, err)
	}

	want := []string{"album:exact", "album:id", "album:miss"}
	if !reflect.DeepEqual(obs.events, want) {
		t.Errorf("observed %v, want %v", obs.events, want)
	}
}

func TestResolverAlbumDetailSongFallback(t *testing.T) {
	src := fixtureSource()
	src.albumPlayers[21] = []models.RawRecord{
		{"id": float64(5), "name": "Alfredo Triff", "role": "violin", "song_name": "Bolero"},
		{"id": float64(6), "name": "Robby Ameen", "role": "drums", "song_name": "Bolero"},
		{"id": float64(6), "name": "Robby Ameen", "role": "drums", "song_name": "Danzon"},
	}
	r := NewResolver(src, testCovers, nil)
	ctx := context.Background()

	d, err := r.AlbumDetail(ctx, "21")
	if err != nil || d == nil {
		t.Fatalf("detail = %+v, %v", d, err)
	}
	want := []models.Track{{Position: 1, Title: "Bolero"}, {Position: 2, Title: "Danzon"}}
	if !reflect.DeepEqual(d.Tracklist, want) {
		t.Errorf("Tracklist = %+v, want %+v", d.Tracklist, want)
	}

	// A stored tracklist is used as is.
	src.calls = nil
	if d, err = r.AlbumDetail(ctx, "7"); err != nil || len(d.Tracklist) != 2 || d.Tracklist[0].Title != "Tanguedia III" {
		t.Fatalf("detail 7 = %+v, %v", d, err)
	}
	if !reflect.DeepEqual(src.calls, []string{"GetAlbum"}) {
		t.Errorf("calls = %v, want only GetAlbum", src.calls)
	}
}

func TestResolverAlbumPlayers(t *testing.T) {
	r := NewResolver(fixtureSource(), testCovers, nil)
	ctx := context.Background()

	for _, token := range []string{"7", "tango-zero-hour"} {
		apps, err := r.AlbumPlayers(ctx, token)
		if err != nil {
			t.Fatal(err)
		}
		if len(apps) != 1 || apps[0].Role != "bass" {
			t.Errorf("token %q: appearances = %+v", token, apps)
		}
	}

	apps, err := r.AlbumPlayers(ctx, "999")
	if err != nil || apps == nil || len(apps) != 0 {
		t.Errorf("unknown id: got %#v, %v; want empty", apps, err)
	}

	apps, err = r.AlbumPlayers(ctx, "missing-album")
	if err != nil || apps != nil {
		t.Errorf("unknown slug: got %#v, %v; want nil", apps, err)
	}
}

func TestResolverGroups(t *testing.T) {
	r := NewResolver(fixtureSource(), testCovers, nil)
	buckets, err := r.Groups(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	idx := groups.Index(buckets)
	if len(idx[7]) != 1 || idx[7][0].ID != 7 {
		t.Errorf("group 7 = %+v", idx[7])
	}
	if len(idx[9]) != 1 || idx[9][0].ID != 21 {
		t.Errorf("group 9 = %+v", idx[9])
	}
	if len(idx[groups.UngroupedID]) != 1 {
		t.Errorf("ungrouped = %+v", idx[groups.UngroupedID])
	}
}

func TestResolverPlayers(t *testing.T) {
	obs := &recordingObserver{}
	r := NewResolver(fixtureSource(), testCovers, obs)
	ctx := context.Background()

	players, err := r.Players(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(players) != 2 || players[0].Name != "Jack Bruce" || players[0].Picture != "/players/jack.jpg" {
		t.Fatalf("players = %+v", players)
	}

	p, err := r.PlayerDetail(ctx, "JackBruce")
	if err != nil || p == nil || p.Lifespan != "1943 - 2014" {
		t.Fatalf("detail = %+v, %v", p, err)
	}

	credits, err := r.PlayerAlbums(ctx, "milton-cardona")
	if err != nil || len(credits) != 1 || credits[0].Role != "congas" {
		t.Fatalf("credits = %+v, %v", credits, err)
	}

	credits, err = r.PlayerAlbums(ctx, "nobody")
	if err != nil || credits != nil {
		t.Fatalf("unknown player: %+v, %v", credits, err)
	}

	want := []string{"player:hyphenless", "player:exact", "player:miss"}
	if !reflect.DeepEqual(obs.events, want) {
		t.Errorf("observed %v, want %v", obs.events, want)
	}
}

func TestResolverPlayerDirectory(t *testing.T) {
	src := &memSource{players: []models.RawRecord{
		{"name": "kip hanrahan"},
		{"name": "Jack Bruce"},
		{"name": "Alfredo Triff"},
		{"name": "Brandon Ross"},
		{"name": "Andy Gonzalez"},
		{"name": "anton fier"},
	}}
	r := NewResolver(src, testCovers, nil)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Alfredo Triff", "Andy Gonzalez", "Jack Bruce", "anton fier", "Brandon Ross", "kip hanrahan"}},
		{"  ", []string{"Alfredo Triff", "Andy Gonzalez", "Jack Bruce", "anton fier", "Brandon Ross", "kip hanrahan"}},
		{"AN", []string{"Andy Gonzalez", "anton fier", "Brandon Ross", "kip hanrahan"}},
		{"bruce", []string{"Jack Bruce"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			players, err := r.PlayerDirectory(ctx, tt.query)
			if err != nil {
				t.Fatal(err)
			}
			got := make([]string, 0, len(players))
			for _, p := range players {
				got = append(got, p.Name)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlayerDirectory(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestResolverPropagatesErrors(t *testing.T) {
	src := fixtureSource()
	src.err = errors.New("timeout")
	r := NewResolver(src, testCovers, nil)
	ctx := context.Background()

	if _, err := r.Albums(ctx, false); err == nil {
		t.Error("Albums: want error")
	}
	if _, err := r.Groups(ctx); err == nil {
		t.Error("Groups: want error")
	}
	if _, err := r.Players(ctx); err == nil {
		t.Error("Players: want error")
	}
	if _, err := r.PlayerDetail(ctx, "jack-bruce"); err == nil {
		t.Error("PlayerDetail: want error")
	}
	if _, err := r.AlbumPlayers(ctx, "7"); err == nil {
		t.Error("AlbumPlayers: want error")
	}
}
