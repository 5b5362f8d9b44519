package fromiso

import (
	"fmt"
	"strings"

	"mapx-converter/internal/tree"
)

const (
	otherRestrictions = "otherRestrictions"

	labelGenericUseLimitation = "generic use limitation"
	labelLegalUseLimitation   = "legal use limitation"
	labelLegalAccess          = "legal access constraint"
	labelLegalUse             = "legal use constraint"
	labelOtherLegal           = "other legal constraint"
	labelSecurity             = "security constraints"
)

var (
	constraintContexts = []string{"Metadata", "Dataset"}
	constraintLabels   = []string{
		labelGenericUseLimitation,
		labelLegalUseLimitation,
		labelLegalAccess,
		labelLegalUse,
		labelOtherLegal,
	}
)

// constraints imports the constraint blocks of one context as licenses.
func (c *converter) constraints(context string, list []*tree.Node) {
	label := func(kind string) string { return context + " " + kind }

	for _, block := range list {
		for _, cons := range block.Nodes("MD_Constraints") {
			c.addTexts(label(labelGenericUseLimitation), cons.Nodes("useLimitation"))
		}

		for _, cons := range block.Nodes("MD_LegalConstraints") {
			c.addTexts(label(labelLegalUseLimitation), cons.Nodes("useLimitation"))
			c.addCodes(label(labelLegalAccess), cons.Nodes("accessConstraints"))
			c.addCodes(label(labelLegalUse), cons.Nodes("useConstraints"))

			for _, other := range cons.Nodes("otherConstraints") {
				for _, text := range other.Texts(charString) {
					if name, rest, ok := splitConverted(text); ok {
						c.sink.Log("Found constraints already converted")
						c.m.AddLicense(name, rest)

						continue
					}

					c.m.AddLicense(label(labelOtherLegal), text)
				}
			}
		}

		for _, cons := range block.Nodes("MD_SecurityConstraints") {
			code := cons.AttrAt(attrCodeList, pathClassification...)
			if code == "" {
				code = "unknown"
			}

			var lines []string

			if note := cons.Text(pathUserNote...); note != "" {
				lines = append(lines, "Note: "+note)
			}

			if system := cons.Text(pathClassSystem...); system != "" {
				lines = append(lines, "Classification system: "+system)
			}

			if handling := cons.Text(pathHandling...); handling != "" {
				lines = append(lines, "Handling description: "+handling)
			}

			c.m.AddLicense(fmt.Sprintf("%s: %s", label(labelSecurity), code), strings.Join(lines, "\n\n"))
		}
	}
}

func (c *converter) addTexts(name string, nodes []*tree.Node) {
	for _, n := range nodes {
		for _, text := range n.Texts(charString) {
			c.m.AddLicense(name, text)
		}
	}
}

func (c *converter) addCodes(name string, nodes []*tree.Node) {
	for _, n := range nodes {
		code := n.AttrAt(attrCodeList, "MD_RestrictionCode")
		if code == "" || code == otherRestrictions {
			continue
		}

		c.m.AddLicense(name, code)
	}
}

// splitConverted recognises a constraint text written by the reverse
// mapper ("<context> <label>: <text>") and splits it back. Matching is on
// the literal labels above.
func splitConverted(text string) (string, string, bool) {
	for _, ctx := range constraintContexts {
		for _, label := range constraintLabels {
			name := ctx + " " + label
			if rest, ok := strings.CutPrefix(text, name+": "); ok {
				return name, rest, true
			}
		}

		prefix := ctx + " " + labelSecurity + ": "
		if rest, ok := strings.CutPrefix(text, prefix); ok {
			code, body, _ := strings.Cut(rest, ": ")
			return prefix + code, body, true
		}
	}

	return "", "", false
}
