// Package htmltext turns the rich text stored by MapX editors into the
// plain text expected by ISO character strings.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, li, tr, h1, h2, h3, h4, h5, h6, blockquote, pre"

// Strip removes markup from s. Block elements and <br> become line breaks,
// runs of blanks inside a line collapse to one space and empty lines are
// dropped. Text without markup is returned unchanged.
func Strip(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	var lines []string

	for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
		if line = normSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

func normSpace(s string) string { return strings.Join(strings.Fields(s), " ") }
