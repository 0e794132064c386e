package models

// Track is one normalized tracklist entry. Position is 1-based.
type Track struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
}

// Album is the canonical projection of an album record.
//
// Upstream records are mapped into this structure per request; it is never
// cached or written back.
type Album struct {
	ID                   int64    `json:"id,omitempty"`
	Title                string   `json:"title"`
	Slug                 string   `json:"slug"`
	Artist               string   `json:"artist,omitempty"` // "artist", falling back to "by"
	Catno                string   `json:"catno,omitempty"`  // raw catalog string as stored
	CanonicalCatno       string   `json:"canonical_catno,omitempty"`
	Dates                string   `json:"dates,omitempty"`
	Path                 string   `json:"path,omitempty"`
	BuyLink              string   `json:"buy_link,omitempty"`
	Price                float64  `json:"price,omitempty"`
	AvailableForPurchase bool     `json:"available_for_purchase"`
	CloudflareWavURL     string   `json:"cloudflare_wav_url,omitempty"`
	Pictures             []string `json:"pictures"`
	CoverURL             string   `json:"cover_url,omitempty"` // front cover, best effort
}

// AlbumDetail is what a detail page renders: the album plus its decoded
// tracklist and every standard cover URL.
type AlbumDetail struct {
	Album
	Tracklist []Track  `json:"tracklist"`
	AlbumArt  []string `json:"album_art"`
	GroupID   int      `json:"group_id"`
}
