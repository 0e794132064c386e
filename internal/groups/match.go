// Package groups partitions albums into the curated editorial groups of the
// catalog page.
//
// Matching is loose: an album matches a table entry when both
// normalized fields are equal, or when each field independently contains (or
// is contained in) its counterpart. The artist may match exactly while the
// title only matches partially; the two fields do not need to pass the same
// tier. Every album lands in exactly one bucket.
package groups

import (
	"regexp"
	"strings"
)

// spaceClass matches what a browser regexp treats as \s, so NBSP and the
// other Unicode separators count as word breaks.
const spaceClass = `\s\v\p{Z}\x{FEFF}`

var (
	whitespace  = regexp.MustCompile(`[` + spaceClass + `]+`)
	punctuation = regexp.MustCompile(`[^\w` + spaceClass + `]`)
)

// NormalizeForMatch upper-cases, trims, collapses whitespace to one space and
// strips every character that is neither an ASCII word character nor
// whitespace.
func NormalizeForMatch(text string) string {
	s := whitespace.ReplaceAllString(strings.ToUpper(text), " ")
	s = strings.Trim(s, " ")
	return punctuation.ReplaceAllString(s, "")
}

// Matches reports whether an album's (artist, title) matches a table entry.
func Matches(album, entry Entry) bool {
	a := normalizedEntry(album)
	e := normalizedEntry(entry)
	return exactMatch(a, e) || partialMatch(a, e)
}

func normalizedEntry(e Entry) Entry {
	return Entry{Artist: NormalizeForMatch(e.Artist), Title: NormalizeForMatch(e.Title)}
}

// exactMatch: both normalized fields equal.
func exactMatch(a, e Entry) bool {
	return a.Artist == e.Artist && a.Title == e.Title
}

// partialMatch: each field contains, or is contained in, its counterpart.
// An empty normalized field is contained in every string and so always
// passes its half of the check.
func partialMatch(a, e Entry) bool {
	return containsEither(a.Artist, e.Artist) && containsEither(a.Title, e.Title)
}

func containsEither(x, y string) bool {
	return strings.Contains(x, y) || strings.Contains(y, x)
}

// Bucket is one group with the items assigned to it, in input order.
type Bucket[T any] struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Items []T    `json:"items"`
}

// Assign places every item in the first group (in table order) holding an
// entry (in entry order) that the item matches. The result lists one bucket
// per table group, empty ones included, followed by the ungrouped bucket
// when at least one item matched nothing.
func Assign[T any](items []T, fields func(T) Entry, table []Group) []Bucket[T] {
	buckets := make([]Bucket[T], len(table))
	for i, g := range table {
		buckets[i] = Bucket[T]{ID: g.ID, Name: g.Name, Items: []T{}}
	}
	var ungrouped []T
	for _, item := range items {
		if i, ok := firstGroup(fields(item), table); ok {
			buckets[i].Items = append(buckets[i].Items, item)
			continue
		}
		ungrouped = append(ungrouped, item)
	}
	if len(ungrouped) > 0 {
		buckets = append(buckets, Bucket[T]{ID: UngroupedID, Name: UngroupedName, Items: ungrouped})
	}
	return buckets
}

// firstGroup returns the index of the first group with a matching entry.
func firstGroup(album Entry, table []Group) (int, bool) {
	for i, g := range table {
		for _, entry := range g.Albums {
			if Matches(album, entry) {
				return i, true
			}
		}
	}
	return 0, false
}

// GroupOf returns the id of the group an album belongs to, or UngroupedID.
func GroupOf(album Entry, table []Group) int {
	if i, ok := firstGroup(album, table); ok {
		return table[i].ID
	}
	return UngroupedID
}

// Index turns buckets into the id -> items mapping. Ids map to their bucket
// contents even when empty.
func Index[T any](buckets []Bucket[T]) map[int][]T {
	m := make(map[int][]T, len(buckets))
	for _, b := range buckets {
		m[b.ID] = b.Items
	}
	return m
}
