package mapx

import (
	"encoding/json"
	"strconv"
)

// Document is the JSON shape of a MapX record.
type Document struct {
	Text     Text           `json:"text"`
	Temporal Temporal       `json:"temporal"`
	Spatial  Spatial        `json:"spatial"`
	Contact  ContactSection `json:"contact"`
	Origin   Origin         `json:"origin"`
	License  LicenseSection `json:"license"`
	Annex    Annex          `json:"annex"`
}

// Text groups the multilingual and descriptive fields.
type Text struct {
	Title           I18n            `json:"title"`
	Abstract        I18n            `json:"abstract"`
	Notes           I18n            `json:"notes"`
	Keywords        Keywords        `json:"keywords"`
	Attributes      map[string]I18n `json:"attributes"`
	AttributesAlias map[string]I18n `json:"attributes_alias"`
	Language        LanguageList    `json:"language"`
}

// Keywords holds free keywords and topic categories.
type Keywords struct {
	Keys   []string `json:"keys"`
	Topics []string `json:"topics"`
}

// LanguageList holds the declared data languages.
type LanguageList struct {
	Codes []LanguageCode `json:"codes"`
}

// LanguageCode is one declared data language.
type LanguageCode struct {
	Code string `json:"code"`
}

// Temporal groups issuance and temporal range.
type Temporal struct {
	Issuance Issuance `json:"issuance"`
	Range    Range    `json:"range"`
}

// Issuance describes release cadence and dates.
type Issuance struct {
	Periodicity string `json:"periodicity"`
	ReleasedAt  string `json:"released_at"`
	ModifiedAt  string `json:"modified_at"`
}

// Range is the temporal extent of the data.
type Range struct {
	IsTimeless bool   `json:"is_timeless"`
	StartAt    string `json:"start_at"`
	EndAt      string `json:"end_at"`
}

// Spatial groups reference system and extent.
type Spatial struct {
	CRS  CRS  `json:"crs"`
	BBox BBox `json:"bbox"`
}

// CRS identifies the coordinate reference system.
type CRS struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}

// BBox is a geographic bounding box in decimal degrees.
type BBox struct {
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
}

// ContactSection holds the contact list.
type ContactSection struct {
	Contacts []Contact `json:"contacts"`
}

// Contact is one responsible party.
type Contact struct {
	Function string `json:"function"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
}

// Origin describes where the data comes from.
type Origin struct {
	Homepage Homepage `json:"homepage"`
	Source   Source   `json:"source"`
}

// Homepage is the optional landing page.
type Homepage struct {
	URL string `json:"url,omitempty"`
}

// Source lists the data sources.
type Source struct {
	URLs []SourceURL `json:"urls"`
}

// SourceURL is one data source.
type SourceURL struct {
	URL            string `json:"url"`
	IsDownloadLink bool   `json:"is_download_link"`
}

// LicenseSection holds the licenses and constraints.
type LicenseSection struct {
	Licenses []License `json:"licenses"`
}

// License is a named license or constraint text.
type License struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Annex lists related documents.
type Annex struct {
	References []Reference `json:"references"`
}

// Reference is one related document URL.
type Reference struct {
	URL string `json:"url"`
}

// I18n maps a language code to a localized value.
type I18n map[string]string

// UnmarshalJSON decodes leniently: scalars become strings, null becomes
// "", nested values are dropped and a non-object yields an empty map.
func (m *I18n) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = I18n{}
		return nil
	}

	out := make(I18n, len(raw))

	for k, v := range raw {
		switch t := v.(type) {
		case string:
			out[k] = t
		case nil:
			out[k] = ""
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		}
	}

	*m = out

	return nil
}
