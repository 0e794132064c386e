package catalog

import (
	"context"

	"americanclave/pkg/models"
)

// memSource serves fixtures from memory and records the calls it gets.
type memSource struct {
	albums       []models.RawRecord
	details      map[int64]models.RawRecord
	players      []models.RawRecord
	albumPlayers map[int64][]models.RawRecord
	err          error

	calls []string
}

func (m *memSource) Name() string { return "mem" }

func (m *memSource) ListAlbums(ctx context.Context) ([]models.RawRecord, error) {
	m.calls = append(m.calls, "ListAlbums")
	if m.err != nil {
		return nil, m.err
	}
	return m.albums, nil
}

func (m *memSource) GetAlbum(ctx context.Context, id int64) (models.RawRecord, error) {
	m.calls = append(m.calls, "GetAlbum")
	if m.err != nil {
		return nil, m.err
	}
	return m.details[id], nil
}

func (m *memSource) ListPlayers(ctx context.Context) ([]models.RawRecord, error) {
	m.calls = append(m.calls, "ListPlayers")
	if m.err != nil {
		return nil, m.err
	}
	return m.players, nil
}

func (m *memSource) ListAlbumPlayers(ctx context.Context, albumID int64) ([]models.RawRecord, error) {
	m.calls = append(m.calls, "ListAlbumPlayers")
	if m.err != nil {
		return nil, m.err
	}
	return m.albumPlayers[albumID], nil
}

type recordingObserver struct {
	events []string
}

func (o *recordingObserver) ObserveResolution(kind, outcome string) {
	o.events = append(o.events, kind+":"+outcome)
}

func fixtureSource() *memSource {
	tango := models.RawRecord{
		"id":                   float64(7),
		"title":                "Tango: Zero Hour",
		"artist":               "Astor Piazzolla",
		"catno":                "AMCL 1004",
		"availableForPurchase": float64(1),
		"price":                12.5,
		"tracklist":            `[{"number":1,"title":"Tanguedia III","duration":"4:39"},{"number":2,"title":"Milonga del Angel"}]`,
	}
	triff := models.RawRecord{
		"id":    float64(21),
		"title": "21 Broken Melodies At Once",
		"by":    "Alfredo Triff",
		"catno": "SJR LP36",
	}
	orphan := models.RawRecord{
		"title": "No Id Record",
	}
	return &memSource{
		albums:  []models.RawRecord{tango, triff, orphan},
		details: map[int64]models.RawRecord{7: tango, 21: triff},
		players: []models.RawRecord{
			{"id": float64(3), "name": "Jack Bruce", "pictures": `["/players/jack.jpg"]`, "birthdate": "1943", "deathdate": "2014"},
			{"id": float64(4), "name": "Milton Cardona", "albums": `[{"album_id":7,"title":"Bembe","role":"congas"}]`},
		},
		albumPlayers: map[int64][]models.RawRecord{
			7: {
				{"id": float64(3), "name": "Jack Bruce", "role": "bass"},
				{"id": float64(3), "name": "Jack Bruce", "role": "vocals"},
			},
		},
	}
}
