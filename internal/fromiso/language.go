package fromiso

import (
	"fmt"

	"mapx-converter/internal/common"
	"mapx-converter/internal/mapx"
	"mapx-converter/internal/tree"
	"mapx-converter/internal/vocab"
)

const defaultISOLang = "eng"

// languages resolves the metadata language, used for every text field, and
// the declared data languages.
func (c *converter) languages() {
	code := languageCode(c.root.FirstNode("language"))
	if code == "" {
		c.sink.Log("Metadata language not found - forcing " + defaultISOLang)
		code = defaultISOLang
	}

	lang, ok := c.resolveLanguage(code)
	if !ok {
		c.sink.Warn(fmt.Sprintf("Can't map metadata language [%s] - forcing %s", code, defaultISOLang))
		lang = "en"
	}

	if lang != "en" {
		c.sink.Warn("English metadata were not found during the conversion process. " +
			"These are compulsory in MapX and must be filled manually before the metadata are published.")
	}

	c.sink.Log(fmt.Sprintf("Metadata language [%s]", lang))
	c.lang = lang

	var codes []string

	for _, n := range c.ident.Nodes("language") {
		code := languageCode(n)
		if code == "" {
			c.sink.Warn("Can't find expected LanguageCode element for data")
			continue
		}

		codes = common.AppendUnique(codes, code)
	}

	if len(codes) == 0 {
		c.sink.Warn("Data language not found - forcing " + defaultISOLang)
		codes = []string{defaultISOLang}
	}

	for _, code := range codes {
		lang, ok := c.resolveLanguage(code)
		if !ok {
			c.sink.Warn(fmt.Sprintf("Can't map language [%s] - forcing %s", code, defaultISOLang))
			lang = "en"
		}

		c.m.AddLanguage(lang)
	}
}

// languageCode reads a language element: the LanguageCode codelist value,
// the LanguageCode text, or a plain CharacterString.
func languageCode(n *tree.Node) string {
	if v := n.AttrAt(attrCodeList, "LanguageCode"); v != "" {
		return v
	}

	if v := n.Text("LanguageCode"); v != "" {
		return v
	}

	return n.Text(charString)
}

// resolveLanguage maps an ISO code to a MapX language. Two letter codes are
// accepted as they are, with a warning.
func (c *converter) resolveLanguage(code string) (string, bool) {
	if len(code) == 2 {
		c.sink.Warn(fmt.Sprintf("ISO language definition should be 3 letter [%s]", code))
		return code, mapx.IsLanguage(code)
	}

	lang, ok := vocab.LangISOToMapx(code)

	return lang, ok && mapx.IsLanguage(lang)
}
