package catalog

import (
	"strconv"
	"strings"

	"americanclave/internal/fields"
	"americanclave/internal/slug"
	"americanclave/pkg/models"
)

// appearanceKey identifies a player across junction rows: the numeric id when
// the row has one, otherwise the raw name. Id keys and name keys never mix,
// so two rows with the same name but different ids stay separate.
func appearanceKey(row models.RawRecord) (string, bool) {
	if id, ok := row.ID("id", "player_id"); ok {
		return "id:" + strconv.FormatInt(id, 10), true
	}
	if name := row.String("name"); strings.TrimSpace(name) != "" {
		return "name:" + name, true
	}
	return "", false
}

// MergePlayerAppearances collapses junction rows (one per player per song)
// into one appearance per player, in first-seen order.
//
// Within a player the first non-empty role and the first row that yields a
// primary picture win; later rows only fill fields that are still empty. A
// blank role on a player's first row does not leave the appearance roleless
// when a later row names one.
// Rows with neither an id nor a name are skipped.
func MergePlayerAppearances(rows []models.RawRecord) []models.PlayerAppearance {
	out := []models.PlayerAppearance{}
	index := make(map[string]int)

	for _, row := range rows {
		key, ok := appearanceKey(row)
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			name := row.String("name")
			id, _ := row.ID("id", "player_id")
			out = append(out, models.PlayerAppearance{ID: id, Name: name, Slug: slug.ToSlug(name)})
			i = len(out) - 1
			index[key] = i
		}
		fillAppearance(&out[i], row)
	}
	return out
}

// fillAppearance sets role and picture from row only when still unset.
func fillAppearance(a *models.PlayerAppearance, row models.RawRecord) {
	if a.Name == "" {
		a.Name = row.String("name")
		a.Slug = slug.ToSlug(a.Name)
	}
	if a.Role == "" {
		a.Role = strings.TrimSpace(row.String("role"))
	}
	if a.Picture == "" {
		if pic, ok := fields.PrimaryPicture(fields.NormalizePictures(row["pictures"])); ok {
			a.Picture = pic
		}
	}
}
