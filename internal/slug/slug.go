// Package slug turns human-readable names into URL path segments and maps
// such segments back to catalog entities.
//
// The upstream catalog has no stable slug column, so every lookup derives
// slugs from names on the fly. Two names can collapse to the same slug; the
// resolver then returns the first candidate in input order.
package slug

import (
	"regexp"
	"strings"
)

// spaceClass is every rune a browser regexp treats as \s: RE2's \s plus
// \v, the Unicode separators (NBSP, em space ...) and the BOM.
const spaceClass = `\s\v\p{Z}\x{FEFF}`

var (
	punctuation = regexp.MustCompile(`[^\w` + spaceClass + `-]`)
	whitespace  = regexp.MustCompile(`[` + spaceClass + `]+`)
	hyphens     = regexp.MustCompile(`-+`)
)

// ToSlug lower-cases text, drops everything that is not an ASCII word
// character, whitespace (Unicode spaces included) or hyphen, turns whitespace
// runs into single hyphens, squeezes repeated hyphens and trims hyphens from
// both ends.
//
// ToSlug is total and idempotent: ToSlug(ToSlug(x)) == ToSlug(x).
func ToSlug(text string) string {
	s := strings.ToLower(text)
	s = punctuation.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Tier names the comparison that produced a match.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierFold
	TierHyphenless
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierFold:
		return "fold"
	case TierHyphenless:
		return "hyphenless"
	default:
		return "none"
	}
}

// tiers are tried in order; the first one with any match decides.
var tiers = []struct {
	tier  Tier
	match func(candidate, target string) bool
}{
	{TierExact, exactEqual},
	{TierFold, foldEqual},
	{TierHyphenless, hyphenlessEqual},
}

func exactEqual(candidate, target string) bool {
	return candidate == target
}

// foldEqual is mostly redundant because ToSlug output is already lowercase;
// it catches targets typed with capitals.
func foldEqual(candidate, target string) bool {
	return strings.ToLower(candidate) == strings.ToLower(target)
}

func hyphenlessEqual(candidate, target string) bool {
	return stripHyphens(candidate) == stripHyphens(target)
}

func stripHyphens(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "")
}

// Resolve finds the candidate whose ToSlug(name(c)) matches target.
//
// Within a tier the first candidate in input order wins; a later tier is only
// consulted when every earlier tier found nothing. ok is false when no tier
// matched.
func Resolve[T any](candidates []T, name func(T) string, target string) (match T, tier Tier, ok bool) {
	slugs := make([]string, len(candidates))
	for i, c := range candidates {
		slugs[i] = ToSlug(name(c))
	}
	for _, t := range tiers {
		for i, s := range slugs {
			if t.match(s, target) {
				return candidates[i], t.tier, true
			}
		}
	}
	var zero T
	return zero, TierNone, false
}
