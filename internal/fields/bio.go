package fields

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	inlineSpace = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankLines  = regexp.MustCompile(`\n{3,}`)
)

// PlainText strips markup from an HTML fragment. <br> becomes a newline,
// closing </p> and </div> become paragraph breaks, entities are decoded and
// runs of spaces collapse. Leading and trailing blank lines are dropped.
func PlainText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	nodes, err := parseFragment(fragment)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}
	return tidy(b.String())
}

// BioText extracts a biography from imported HTML. A <p class="pullquote">
// is preferred, then the first paragraph, then the whole fragment.
func BioText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	nodes, err := parseFragment(fragment)
	if err != nil {
		return ""
	}
	var pick *html.Node
	for _, n := range nodes {
		if pick = findParagraph(n, true); pick != nil {
			break
		}
	}
	if pick == nil {
		for _, n := range nodes {
			if pick = findParagraph(n, false); pick != nil {
				break
			}
		}
	}
	if pick == nil {
		return PlainText(fragment)
	}
	var b strings.Builder
	for c := pick.FirstChild; c != nil; c = c.NextSibling {
		writeText(&b, c)
	}
	return tidy(b.String())
}

func parseFragment(fragment string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	return html.ParseFragment(strings.NewReader(fragment), body)
}

func findParagraph(n *html.Node, pullquote bool) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.P {
		if !pullquote || hasClass(n, "pullquote") {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findParagraph(c, pullquote); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			b.WriteString("\n")
			return
		case atom.Script, atom.Style:
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.P || n.DataAtom == atom.Div) {
		b.WriteString("\n\n")
	}
}

func tidy(s string) string {
	s = inlineSpace.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
