package models

// Player is the canonical projection of a player (musician) record.
type Player struct {
	ID       int64    `json:"id,omitempty"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Role     string   `json:"role,omitempty"`
	Website  string   `json:"website,omitempty"`
	Bio      string   `json:"bio,omitempty"` // plain text, HTML stripped
	Lifespan string   `json:"lifespan,omitempty"`
	Pictures []string `json:"pictures"`
	Picture  string   `json:"picture,omitempty"`
	Core     bool     `json:"core"`
}

// PlayerAppearance is one player on one album, merged across every
// junction row that mentions them.
type PlayerAppearance struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Role    string `json:"role,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// PlayerCredit is one album entry nested on a player record.
type PlayerCredit struct {
	AlbumID  int64  `json:"album_id,omitempty"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Role     string `json:"role,omitempty"`
	SongName string `json:"song_name,omitempty"`
}
