package covers

import (
	"regexp"
	"strings"
)

// InsideBack is the one position name kept verbatim, ampersand included,
// because that is how the objects are named in the bucket.
const InsideBack = "inside&back"

// StandardPositions lists the cover positions tried for every album, in
// display order.
var StandardPositions = []string{"front", "back", InsideBack, "1", "2", "3", "4", "5", "6"}

var spaces = regexp.MustCompile(`\s+`)

// FileName returns the object name for one cover of an album. When no
// canonical catno can be derived the raw catalog string with whitespace
// removed is used instead; such names frequently do not exist.
func FileName(catalogRaw, position string) string {
	catno, ok := ExtractCanonicalCatno(catalogRaw)
	if !ok {
		catno = spaces.ReplaceAllString(catalogRaw, "")
	}
	return catno + "_" + safePosition(position) + "_cropped.jpg"
}

func safePosition(position string) string {
	if position == InsideBack {
		return position
	}
	return spaces.ReplaceAllString(position, "")
}

// Builder builds public cover URLs under a fixed base (the R2 public URL).
type Builder struct {
	BaseURL string
}

// NewBuilder returns a Builder for the given public base URL, used verbatim
// as the prefix.
func NewBuilder(baseURL string) Builder {
	return Builder{BaseURL: baseURL}
}

// CoverURL returns {base}/{catno}_{position}_cropped.jpg. It never fails.
func (b Builder) CoverURL(catalogRaw, position string) string {
	return b.BaseURL + "/" + FileName(catalogRaw, position)
}

// FrontCoverURL is CoverURL for the "front" position.
func (b Builder) FrontCoverURL(catalogRaw string) string {
	return b.CoverURL(catalogRaw, "front")
}

// AllCoverURLs returns one URL per standard position. Callers should expect
// some of them to 404.
func (b Builder) AllCoverURLs(catalogRaw string) []string {
	urls := make([]string, 0, len(StandardPositions))
	for _, p := range StandardPositions {
		urls = append(urls, b.CoverURL(catalogRaw, p))
	}
	return urls
}

// HasCatalog reports whether an album carries any catalog string at all.
// Albums without one get no cover URLs.
func HasCatalog(catalogRaw string) bool {
	return strings.TrimSpace(catalogRaw) != ""
}
