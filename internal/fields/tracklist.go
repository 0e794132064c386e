package fields

import (
	"strings"

	"americanclave/pkg/models"
)

// UnknownTrackTitle is used when a track object carries no usable title.
const UnknownTrackTitle = "Unknown Track"

// AlbumTracklist reads the tracklist of an album record. The "tracklist"
// field wins when it decodes to at least one track; otherwise the legacy
// "track_list" field is tried with the same rules.
func AlbumTracklist(rec models.RawRecord) []models.Track {
	if tracks := NormalizeTracklist(rec["tracklist"]); len(tracks) > 0 {
		return tracks
	}
	return NormalizeTracklist(rec["track_list"])
}

// NormalizeTracklist decodes a raw tracklist value.
//
//   - null, absent or blank: empty
//   - JSON text: parsed, then handled as whatever it decodes to; unparsable
//     text is empty
//   - array: one track per element, position index+1 unless an object
//     supplies a valid "number" or "position"
//   - anything else: empty
func NormalizeTracklist(raw any) []models.Track {
	return tracklist(raw, 0)
}

func tracklist(raw any, depth int) []models.Track {
	out := []models.Track{}
	v := Classify(raw)
	switch v.Kind {
	case KindJSONText:
		if depth >= maxDepth {
			return out
		}
		parsed, err := decodeJSON(v.Text)
		if err != nil {
			return out
		}
		return tracklist(parsed, depth+1)
	case KindArray:
		for i, item := range v.Items {
			out = append(out, trackAt(item, i))
		}
	}
	return out
}

// trackAt converts one array element. Every element yields a track so
// positions derived from the index stay contiguous.
func trackAt(item any, index int) models.Track {
	fallback := index + 1
	el := Classify(item)
	switch el.Kind {
	case KindObject:
		return objectTrack(el.Object, fallback)
	case KindJSONText:
		return models.Track{Position: fallback, Title: titleOr(el.Text)}
	case KindScalar:
		return models.Track{Position: fallback, Title: titleOr(models.Text(el.Scalar))}
	default:
		return models.Track{Position: fallback, Title: UnknownTrackTitle}
	}
}

// objectTrack applies number ?? position ?? index+1 and title ?? name.
// Non-positive positions and blank titles count as missing.
func objectTrack(obj models.RawRecord, fallback int) models.Track {
	t := models.Track{Position: fallback, Title: UnknownTrackTitle}
	for _, key := range []string{"number", "position"} {
		if n, ok := obj.Int(key); ok && n >= 1 {
			t.Position = int(n)
			break
		}
	}
	if title := obj.FirstString("title", "name"); title != "" {
		t.Title = title
	}
	t.Duration = strings.TrimSpace(obj.String("duration"))
	return t
}

func titleOr(s string) string {
	if strings.TrimSpace(s) == "" {
		return UnknownTrackTitle
	}
	return s
}

// SongTracklist builds a tracklist from album-player rows: one track per
// distinct non-blank song name, in first-seen order, numbered from 1.
func SongTracklist(rows []models.RawRecord) []models.Track {
	out := []models.Track{}
	seen := make(map[string]bool)
	for _, row := range rows {
		name := row.FirstString("song_name", "song")
		if strings.TrimSpace(name) == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, models.Track{Position: len(out) + 1, Title: name})
	}
	return out
}
