package fields

import "strings"

// NormalizePictures decodes a raw picture list into an ordered list of
// URLs/paths. The first element is the primary picture.
//
// JSON text holding an array yields its string elements, JSON text holding a
// string yields that string, and text that is not JSON at all is taken as a
// single path verbatim. Native arrays yield their string elements. Anything
// else yields an empty list.
func NormalizePictures(raw any) []string {
	return pictures(raw, 0)
}

func pictures(raw any, depth int) []string {
	out := []string{}
	v := Classify(raw)
	switch v.Kind {
	case KindJSONText:
		parsed, err := decodeJSON(v.Text)
		if err != nil {
			return append(out, v.Text)
		}
		switch p := parsed.(type) {
		case string:
			if strings.TrimSpace(p) == "" {
				return out
			}
			return append(out, p)
		case []any:
			if depth >= maxDepth {
				return out
			}
			return pictures(p, depth+1)
		}
	case KindArray:
		for _, item := range v.Items {
			switch s := item.(type) {
			case string:
				if strings.TrimSpace(s) != "" {
					out = append(out, s)
				}
			case []byte:
				if len(s) > 0 {
					out = append(out, string(s))
				}
			}
		}
	}
	return out
}

// PrimaryPicture returns the first picture, if any.
func PrimaryPicture(pics []string) (string, bool) {
	if len(pics) == 0 {
		return "", false
	}
	return pics[0], true
}
