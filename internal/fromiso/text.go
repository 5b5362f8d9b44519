package fromiso

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mapx-converter/internal/attrcodec"
	"mapx-converter/internal/mapx"
	"mapx-converter/internal/tree"
)

const suppInfoTitle = "Supplemental information"

func (c *converter) texts() {
	if title := c.citation.Text(pathTitle...); present(title) {
		c.m.SetTitle(c.lang, title)
	} else {
		c.sink.Warn("Can't generate mandatory MAPX element: title")
	}

	if abstract := c.ident.Text(pathAbstract...); present(abstract) {
		c.m.SetAbstract(c.lang, abstract)
	} else {
		c.sink.Warn("Can't generate mandatory MAPX element: abstract")
	}
}

// present reports whether a mandatory text carries real content.
func present(s string) bool {
	return s != "" && s != mapx.MissingContent
}

func (c *converter) keywords() {
	for _, group := range c.ident.Nodes("descriptiveKeywords") {
		for _, kws := range group.Nodes("MD_Keywords") {
			for _, it := range kws.All("keyword") {
				kw := keywordText(it)
				if kw == "" {
					c.sink.Warn("Can't find expected keyword")
					continue
				}

				c.m.AddKeyword(kw)
			}
		}
	}

	if len(c.m.Keywords()) == 0 {
		c.sink.Warn("Can't generate mandatory MAPX element: keys")
	}

	for _, it := range c.ident.All("topicCategory") {
		code := tree.NodeOf(it).Text("MD_TopicCategoryCode")
		if code == "" {
			c.sink.Warn("Can't find expected MD_TopicCategoryCode element")
			continue
		}

		c.m.AddTopic(code)
	}
}

// keywordText reads a keyword written as CharacterString or gmx:Anchor.
func keywordText(it tree.Item) string {
	n := tree.NodeOf(it)
	if v := n.Text(charString); v != "" {
		return v
	}

	return n.Text("Anchor")
}

// notes assembles the single note text and extracts encoded attributes
// from the supplemental information.
func (c *converter) notes() {
	suppInfo := c.ident.Text(pathSuppInfo...)
	if suppInfo == mapx.MissingContent {
		suppInfo = ""
	}

	suppInfo, attrs := attrcodec.Decode(suppInfo)
	suppInfo = strings.TrimSpace(suppInfo)

	for _, a := range attrs {
		c.m.SetAttribute(c.lang, a.Name, a.Value)
	}

	c.m.AddNote(c.lang, "Purpose", c.ident.Text(pathPurpose...))
	c.m.AddNote(c.lang, "Credit", c.ident.Text(pathCredit...))

	if status := c.ident.AttrAt(attrCodeList, pathStatus...); status != "" {
		c.m.AddNote(c.lang, "Status", cases.Title(language.English, cases.NoLower).String(status))
	}

	c.m.AddNote(c.lang, "Environment", c.ident.Text(pathEnvironment...))

	title := suppInfoTitle
	if strings.HasPrefix(suppInfo, suppInfoTitle) {
		title = ""
	}

	c.m.AddNote(c.lang, title, suppInfo)

	for _, dq := range c.root.Nodes("dataQualityInfo") {
		lineage := dq.FirstNode(pathLineage...)
		if lineage == nil {
			continue
		}

		c.m.AddNote(c.lang, "Lineage", lineage.Text(pathStatement...))

		for _, step := range lineage.Nodes("processStep") {
			var b strings.Builder

			if desc := step.Text(pathStepDesc...); desc != "" {
				fmt.Fprintf(&b, "DESCRIPTION: %s\n", desc)
			}

			if rationale := step.Text(pathStepRationale...); rationale != "" {
				fmt.Fprintf(&b, "RATIONALE: %s\n", rationale)
			}

			c.m.AddNote(c.lang, "PROCESSING STEP", b.String())
		}
	}
}
