package vocab

import "golang.org/x/text/language"

// core ISO 639-2 (T and B) codes for the MapX languages.
var isoToMapxLang = map[string]string{
	"eng": "en",
	"fre": "fr",
	"fra": "fr",
	"spa": "es",
	"rus": "ru",
	"chi": "zh",
	"zho": "zh",
	"deu": "de",
	"ger": "de",
	"ben": "bn",
	"per": "fa",
	"fas": "fa",
	"pus": "ps",
	"ara": "ar",
}

var mapxToISOLang = map[string]string{
	"en": "eng",
	"fr": "fra",
	"es": "spa",
	"ru": "rus",
	"zh": "chi",
	"de": "ger",
	"bn": "ben",
	"fa": "per",
	"ps": "pus",
	"ar": "ara",
}

// LangISOToMapx maps a 3-letter ISO 639-2 code to its 2-letter ISO 639-1
// form. Uncommon codes are resolved through the CLDR tables of x/text.
// It returns false when the code has no 2-letter equivalent.
func LangISOToMapx(code string) (string, bool) {
	if v, ok := isoToMapxLang[code]; ok {
		return v, true
	}

	if len(code) != 3 {
		return "", false
	}

	base, err := language.ParseBase(code)
	if err != nil {
		return "", false
	}

	short := base.String()
	if len(short) != 2 {
		return "", false
	}

	return short, true
}

// LangMapxToISO maps a 2-letter code to the 3-letter ISO 639-2 code written
// into ISO documents.
func LangMapxToISO(code string) (string, bool) {
	if v, ok := mapxToISOLang[code]; ok {
		return v, true
	}

	if len(code) != 2 {
		return "", false
	}

	base, err := language.ParseBase(code)
	if err != nil {
		return "", false
	}

	iso3 := base.ISO3()
	if len(iso3) != 3 {
		return "", false
	}

	return iso3, true
}
