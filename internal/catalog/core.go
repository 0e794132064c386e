package catalog

import (
	"slices"
	"strings"

	"americanclave/pkg/models"
)

// CorePlayers are the players with full profile pages, in display order.
var CorePlayers = []string{
	"Alfredo Triff",
	"Andy Gonzalez",
	"Astor Piazzolla",
	"Charles Neville",
	"Don Pullen",
	"Fernando Saunders",
	`Horacio "El Negro" Hernandez`,
	"Ishmael Reed",
	"Jack Bruce",
	"Milton Cardona",
	`"Puntilla" Orlando Rios`,
	"Robby Ameen",
	"Silvana DeLuigi",
}

// CoreRank returns the position of name in CorePlayers, compared
// case-insensitively.
func CoreRank(name string) (int, bool) {
	for i, core := range CorePlayers {
		if strings.EqualFold(core, name) {
			return i, true
		}
	}
	return 0, false
}

// IsCorePlayer reports whether name is one of CorePlayers.
func IsCorePlayer(name string) bool {
	_, ok := CoreRank(name)
	return ok
}

// FilterPlayers keeps the players whose name contains query, ignoring case.
// An empty query keeps everyone.
func FilterPlayers(players []models.Player, query string) []models.Player {
	q := strings.ToLower(query)
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// SortPlayers orders players for the directory page: core players first in
// CorePlayers order, then everyone else alphabetically by name. The sort is
// stable, so duplicates keep their upstream order.
func SortPlayers(players []models.Player) {
	slices.SortStableFunc(players, comparePlayers)
}

func comparePlayers(a, b models.Player) int {
	ra, coreA := CoreRank(a.Name)
	rb, coreB := CoreRank(b.Name)
	switch {
	case coreA && coreB:
		return ra - rb
	case coreA:
		return -1
	case coreB:
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
