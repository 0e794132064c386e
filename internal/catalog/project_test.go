package catalog

import (
	"reflect"
	"testing"

	"americanclave/internal/covers"
	"americanclave/pkg/models"
)

var testCovers = covers.NewBuilder("https://r2.example")

func TestProjectAlbum(t *testing.T) {
	rec := models.RawRecord{
		"id":                   float64(7),
		"title":                "Tango: Zero Hour",
		"by":                   "Astor Piazzolla",
		"catno":                "AMCL 1004",
		"price":                "12.50",
		"availableForPurchase": true,
		"buy_link":             "https://shop.example/tango",
		"pictures":             `["/a.jpg"]`,
	}
	got := ProjectAlbum(rec, testCovers)
	want := models.Album{
		ID:                   7,
		Title:                "Tango: Zero Hour",
		Slug:                 "tango-zero-hour",
		Artist:               "Astor Piazzolla",
		Catno:                "AMCL 1004",
		CanonicalCatno:       "1004",
		Price:                12.5,
		AvailableForPurchase: true,
		BuyLink:              "https://shop.example/tango",
		Pictures:             []string{"/a.jpg"},
		CoverURL:             "https://r2.example/1004_front_cropped.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectAlbum =\n%+v\nwant\n%+v", got, want)
	}
}

func TestProjectAlbumWithoutCatalog(t *testing.T) {
	got := ProjectAlbum(models.RawRecord{"title": "Bare"}, testCovers)
	if got.CoverURL != "" || got.CanonicalCatno != "" {
		t.Errorf("album without catno should have no cover: %+v", got)
	}
	if got.Pictures == nil {
		t.Error("pictures should be an empty list, not nil")
	}
}

func TestProjectAlbumDetail(t *testing.T) {
	rec := models.RawRecord{
		"id":         float64(7),
		"title":      "Tango: Zero Hour",
		"artist":     "Astor Piazzolla",
		"catno":      "AMCL 1004",
		"tracklist":  "not json",
		"track_list": `["Tanguedia III","Milonga del Angel"]`,
	}
	d := ProjectAlbumDetail(rec, testCovers)
	if d.GroupID != 7 {
		t.Errorf("GroupID = %d, want 7", d.GroupID)
	}
	if len(d.AlbumArt) != len(covers.StandardPositions) {
		t.Errorf("AlbumArt has %d urls", len(d.AlbumArt))
	}
	wantTracks := []models.Track{{Position: 1, Title: "Tanguedia III"}, {Position: 2, Title: "Milonga del Angel"}}
	if !reflect.DeepEqual(d.Tracklist, wantTracks) {
		t.Errorf("Tracklist = %+v, want %+v", d.Tracklist, wantTracks)
	}

	bare := ProjectAlbumDetail(models.RawRecord{"title": "Unknown Record"}, testCovers)
	if bare.GroupID != 0 || len(bare.AlbumArt) != 0 || bare.AlbumArt == nil || len(bare.Tracklist) != 0 {
		t.Errorf("bare detail = %+v", bare)
	}
}

func TestProjectPlayer(t *testing.T) {
	rec := models.RawRecord{
		"id":        float64(3),
		"name":      "Jack Bruce",
		"pictures":  `["/jack1.jpg","/jack2.jpg"]`,
		"bio":       `<p>Intro</p><p class="pullquote">Bass player and singer.</p>`,
		"birthdate": "1943",
		"deathdate": "2014",
		"website":   "https://jackbruce.example",
	}
	got := ProjectPlayer(rec)
	want := models.Player{
		ID:       3,
		Name:     "Jack Bruce",
		Slug:     "jack-bruce",
		Website:  "https://jackbruce.example",
		Bio:      "Bass player and singer.",
		Lifespan: "1943 - 2014",
		Pictures: []string{"/jack1.jpg", "/jack2.jpg"},
		Picture:  "/jack1.jpg",
		Core:     true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectPlayer =\n%+v\nwant\n%+v", got, want)
	}
}

func TestLifespan(t *testing.T) {
	tests := []struct{ born, died, want string }{
		{"1943", "2014", "1943 - 2014"},
		{"1950", "", "Born 1950"},
		{"", "1992", "Died 1992"},
		{" ", "", ""},
	}
	for _, tt := range tests {
		if got := Lifespan(tt.born, tt.died); got != tt.want {
			t.Errorf("Lifespan(%q, %q) = %q, want %q", tt.born, tt.died, got, tt.want)
		}
	}
}

func TestIsCorePlayer(t *testing.T) {
	tests := map[string]bool{
		"Jack Bruce":                   true,
		"jack bruce":                   true,
		`HORACIO "EL NEGRO" HERNANDEZ`: true,
		"Horacio El Negro Hernandez":   false,
		"Kip Hanrahan":                 false,
	}
	for name, want := range tests {
		if got := IsCorePlayer(name); got != want {
			t.Errorf("IsCorePlayer(%q) = %v, want %v", name, got, want)
		}
	}
	if rank, ok := CoreRank("Alfredo Triff"); !ok || rank != 0 {
		t.Errorf("CoreRank = %d, %v", rank, ok)
	}
}

func TestPlayerCredits(t *testing.T) {
	rec := models.RawRecord{
		"albums": []any{
			map[string]any{"album_id": float64(7), "title": "Bembe", "role": "congas", "song_name": "Elegua"},
			"junk",
			map[string]any{"title": "Cambucha"},
		},
	}
	want := []models.PlayerCredit{
		{AlbumID: 7, Title: "Bembe", Slug: "bembe", Role: "congas", SongName: "Elegua"},
		{Title: "Cambucha", Slug: "cambucha"},
	}
	if got := PlayerCredits(rec); !reflect.DeepEqual(got, want) {
		t.Errorf("PlayerCredits = %+v, want %+v", got, want)
	}
	if got := PlayerCredits(models.RawRecord{}); got == nil || len(got) != 0 {
		t.Errorf("no albums should yield an empty list, got %#v", got)
	}
}
