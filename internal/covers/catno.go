// Package covers derives canonical catalog numbers from free-form catalog
// strings and builds cover-image URLs from them.
//
// Cover scans live in the R2 bucket as {catno}_{position}_cropped.jpg where
// catno is a 4-digit key starting with "10" (AMCL 1004 -> 1004, SJR LP36 ->
// 1036). URLs are a best-effort guess: nothing here checks that an object
// exists.
package covers

import (
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// ExtractCanonicalCatno derives the 4-digit cover key from a raw catalog
// string such as "AMCL 1004", "SJR LP36" or "AMCL 1009LP/1008EP".
//
// The first 4-digit run starting with "10" wins. Otherwise the first run of
// 2 or 3 digits is used, or failing that the first longest run. A chosen run
// of exactly 4 digits is returned as is; any other run is padded to two
// digits and prefixed with "10". No digits at all yields false.
func ExtractCanonicalCatno(raw string) (string, bool) {
	runs := digitRun.FindAllString(raw, -1)
	if len(runs) == 0 {
		return "", false
	}
	for _, r := range runs {
		if len(r) == 4 && strings.HasPrefix(r, "10") {
			return r, true
		}
	}
	best := bestRun(runs)
	if len(best) == 4 {
		return best, true
	}
	if len(best) < 2 {
		best = strings.Repeat("0", 2-len(best)) + best
	}
	return "10" + best, true
}

// bestRun prefers the first 2-3 digit run, then the first longest run.
func bestRun(runs []string) string {
	for _, r := range runs {
		if len(r) >= 2 && len(r) <= 3 {
			return r
		}
	}
	best := runs[0]
	for _, r := range runs[1:] {
		if len(r) > len(best) {
			best = r
		}
	}
	return best
}
