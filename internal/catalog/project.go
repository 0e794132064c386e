package catalog

import (
	"strings"

	"americanclave/internal/covers"
	"americanclave/internal/fields"
	"americanclave/internal/groups"
	"americanclave/internal/slug"
	"americanclave/pkg/models"
)

// ProjectAlbum maps a raw album record to its canonical shape. Field names
// are read in both the camelCase and snake_case spellings the worker has
// used over time.
func ProjectAlbum(rec models.RawRecord, b covers.Builder) models.Album {
	title := rec.String("title")
	a := models.Album{
		Title:                title,
		Slug:                 slug.ToSlug(title),
		Artist:               albumArtist(rec),
		Catno:                rec.String("catno"),
		Dates:                rec.String("dates"),
		Path:                 rec.String("path"),
		BuyLink:              rec.FirstString("buyLink", "buy_link"),
		AvailableForPurchase: rec.Bool("availableForPurchase") || rec.Bool("available_for_purchase"),
		CloudflareWavURL:     rec.FirstString("cloudflareWavUrl", "cloudflare_wav_url"),
		Pictures:             fields.NormalizePictures(rec["pictures"]),
	}
	if id, ok := rec.ID(); ok {
		a.ID = id
	}
	if price, ok := rec.Float("price"); ok {
		a.Price = price
	}
	if canonical, ok := covers.ExtractCanonicalCatno(a.Catno); ok {
		a.CanonicalCatno = canonical
	}
	if covers.HasCatalog(a.Catno) {
		a.CoverURL = b.FrontCoverURL(a.Catno)
	}
	return a
}

// ProjectAlbumDetail adds the decoded tracklist, every standard cover URL and
// the editorial group to the album projection.
func ProjectAlbumDetail(rec models.RawRecord, b covers.Builder) models.AlbumDetail {
	a := ProjectAlbum(rec, b)
	d := models.AlbumDetail{
		Album:     a,
		Tracklist: fields.AlbumTracklist(rec),
		AlbumArt:  []string{},
		GroupID:   groups.GroupOf(AlbumEntry(a), groups.Table),
	}
	if covers.HasCatalog(a.Catno) {
		d.AlbumArt = b.AllCoverURLs(a.Catno)
	}
	return d
}

// AlbumEntry is the (artist, title) pair the group matcher compares.
func AlbumEntry(a models.Album) groups.Entry {
	return groups.Entry{Artist: a.Artist, Title: a.Title}
}

func albumArtist(rec models.RawRecord) string {
	return rec.FirstString("artist", "by")
}

// ProjectPlayer maps a raw player record to its canonical shape.
func ProjectPlayer(rec models.RawRecord) models.Player {
	name := rec.String("name")
	p := models.Player{
		Name:     name,
		Slug:     slug.ToSlug(name),
		Role:     strings.TrimSpace(rec.String("role")),
		Website:  rec.String("website"),
		Bio:      fields.BioText(rec.String("bio")),
		Lifespan: Lifespan(rec.String("birthdate"), rec.String("deathdate")),
		Pictures: fields.NormalizePictures(rec["pictures"]),
		Core:     IsCorePlayer(name),
	}
	if id, ok := rec.ID(); ok {
		p.ID = id
	}
	if pic, ok := fields.PrimaryPicture(p.Pictures); ok {
		p.Picture = pic
	}
	return p
}

// Lifespan formats birth and death dates as "born - died", "Born born" or
// "Died died". Both empty yields "".
func Lifespan(born, died string) string {
	born, died = strings.TrimSpace(born), strings.TrimSpace(died)
	switch {
	case born != "" && died != "":
		return born + " - " + died
	case born != "":
		return "Born " + born
	case died != "":
		return "Died " + died
	}
	return ""
}

// PlayerCredits decodes the albums nested on a player record.
func PlayerCredits(rec models.RawRecord) []models.PlayerCredit {
	nested := fields.NormalizeRecords(rec["albums"])
	out := make([]models.PlayerCredit, 0, len(nested))
	for _, n := range nested {
		title := n.String("title")
		c := models.PlayerCredit{
			Title:    title,
			Slug:     slug.ToSlug(title),
			Role:     strings.TrimSpace(n.String("role")),
			SongName: n.FirstString("song_name", "song"),
		}
		if id, ok := n.ID("album_id", "id"); ok {
			c.AlbumID = id
		}
		out = append(out, c)
	}
	return out
}
