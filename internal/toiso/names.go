package toiso

import (
	"strconv"

	"mapx-converter/internal/tree"
	"mapx-converter/internal/vocab"
)

const (
	nsGMD = "http://www.isotc211.org/2005/gmd"
	nsGCO = "http://www.isotc211.org/2005/gco"
	nsGML = "http://www.opengis.net/gml"

	isoEnglish   = "eng"
	englishKey   = "en"
	timePeriodID = "temporal_extent"

	downloadProtocol = "WWW:DOWNLOAD-1.0-http--download"
)

func gmd(name string) string { return "gmd:" + name }
func gco(name string) string { return "gco:" + name }
func gml(name string) string { return "gml:" + name }

// charString adds name/gco:CharacterString holding text.
func charString(parent *tree.Node, name, text string) {
	parent.AddNode(gmd(name)).AddText(gco("CharacterString"), text)
}

// decimal adds name/gco:Decimal holding v.
func decimal(parent *tree.Node, name string, v float64) {
	parent.AddNode(gmd(name)).AddText(gco("Decimal"), strconv.FormatFloat(v, 'f', -1, 64))
}

// codeNode returns a codelist element holding value.
func codeNode(codeList, value string) *tree.Node {
	return tree.NewNode().
		SetAttr("codeList", vocab.CodeList(codeList)).
		SetAttr("codeListValue", value)
}

// dateNode adds name/gco:Date, or gco:DateTime when value carries a time.
func dateNode(parent *tree.Node, name, value string) {
	tag := "Date"
	if len(value) > len("2006-01-02") {
		tag = "DateTime"
	}

	parent.AddNode(gmd(name)).AddText(gco(tag), value)
}

// languageNode returns a LanguageCode element for an ISO639-2 code.
func languageNode(code string) *tree.Node {
	n := codeNode("LanguageCode", code)
	n.Value = code

	return n
}
