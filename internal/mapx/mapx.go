package mapx

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"mapx-converter/internal/diagnostic"
)

// ErrNotObject is returned by FromJSON when the top-level value is not a JSON object.
var ErrNotObject = errors.New("mapx: document is not a JSON object")

// MapX is a repaired MapX document together with the sink its setters report to.
type MapX struct {
	doc  Document
	sink diagnostic.Sink
}

// New returns a document with every field at its default.
func New(sink diagnostic.Sink) *MapX {
	return FromMap(nil, sink)
}

// FromMap repairs obj and builds a document from it. obj is mutated.
func FromMap(obj map[string]any, sink diagnostic.Sink) *MapX {
	m := &MapX{sink: diagnostic.OrDiscard(sink)}

	obj = Repair(obj, m.sink)

	data, err := json.Marshal(obj)
	if err == nil {
		err = json.Unmarshal(data, &m.doc)
	}

	if err != nil {
		m.sink.Warn(fmt.Sprintf("Can't decode document, using defaults: %v", err))
		m.doc = New(diagnostic.Discard).doc
	}

	fixAttributes("attributes", m.attributes(), m.sink)
	fixAttributes("attributes_alias", m.aliases(), m.sink)

	return m
}

// FromJSON decodes and repairs a JSON document.
func FromJSON(data []byte, sink diagnostic.Sink) (*MapX, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding mapx json: %w", err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	return FromMap(obj, sink), nil
}

// Document returns the underlying document.
func (m *MapX) Document() *Document {
	return &m.doc
}

// Sink returns the sink the document reports to.
func (m *MapX) Sink() diagnostic.Sink {
	return m.sink
}

// SetSink replaces the sink; nil discards messages.
func (m *MapX) SetSink(sink diagnostic.Sink) {
	m.sink = diagnostic.OrDiscard(sink)
}

// MarshalJSON encodes the document.
func (m *MapX) MarshalJSON() ([]byte, error) {
	return json.Marshal(&m.doc)
}

// JSON encodes the document indented by indent spaces, or compact when indent is 0.
func (m *MapX) JSON(indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(&m.doc)
	}

	return json.MarshalIndent(&m.doc, "", strings.Repeat(" ", indent))
}

func (m *MapX) setI18n(target *I18n, what, lang, value string) bool {
	if !IsLanguage(lang) {
		m.sink.Warn(fmt.Sprintf("Can't set %s: unknown language [%s]", what, lang))
		return false
	}

	if *target == nil {
		*target = I18n{}
	}

	(*target)[lang] = value

	return true
}

// SetTitle sets the title in lang.
func (m *MapX) SetTitle(lang, value string) bool {
	return m.setI18n(&m.doc.Text.Title, "title", lang, value)
}

// Title returns the title in lang.
func (m *MapX) Title(lang string) string { return m.doc.Text.Title[lang] }

// Titles returns the title in every language.
func (m *MapX) Titles() I18n { return m.doc.Text.Title }

// SetAbstract sets the abstract in lang.
func (m *MapX) SetAbstract(lang, value string) bool {
	return m.setI18n(&m.doc.Text.Abstract, "abstract", lang, value)
}

// Abstract returns the abstract in lang.
func (m *MapX) Abstract(lang string) string { return m.doc.Text.Abstract[lang] }

// Abstracts returns the abstract in every language.
func (m *MapX) Abstracts() I18n { return m.doc.Text.Abstract }

// SetNotes replaces the notes in lang.
func (m *MapX) SetNotes(lang, value string) bool {
	return m.setI18n(&m.doc.Text.Notes, "note", lang, value)
}

// Notes returns the notes in lang.
func (m *MapX) Notes(lang string) string { return m.doc.Text.Notes[lang] }

// AllNotes returns the notes in every language.
func (m *MapX) AllNotes() I18n { return m.doc.Text.Notes }

// AddNote appends "title: value" (or just value when title is empty) to
// the notes in lang, separated from previous notes by ". ". An empty value
// is ignored.
func (m *MapX) AddNote(lang, title, value string) bool {
	if !IsLanguage(lang) {
		m.sink.Warn(fmt.Sprintf("Can't add note: unknown language [%s]", lang))
		return false
	}

	if value == "" {
		return true
	}

	note := value
	if title != "" {
		note = title + ": " + value
	}

	if old := m.doc.Text.Notes[lang]; old != "" {
		note = old + ". " + note
	}

	return m.setI18n(&m.doc.Text.Notes, "note", lang, note)
}

// AddKeyword appends a free keyword.
func (m *MapX) AddKeyword(keyword string) {
	m.doc.Text.Keywords.Keys = append(m.doc.Text.Keywords.Keys, keyword)
}

// Keywords returns the free keywords.
func (m *MapX) Keywords() []string { return slices.Clone(m.doc.Text.Keywords.Keys) }

// AddTopic appends a topic category, rejecting codes outside the vocabulary.
func (m *MapX) AddTopic(topic string) bool {
	if !IsTopic(topic) {
		m.sink.Warn(fmt.Sprintf("Can't set topic: unknown topic [%s]", topic))
		return false
	}

	m.doc.Text.Keywords.Topics = append(m.doc.Text.Keywords.Topics, topic)

	return true
}

// Topics returns the topic categories.
func (m *MapX) Topics() []string { return slices.Clone(m.doc.Text.Keywords.Topics) }

// AddLanguage declares a data language. Duplicates are ignored.
func (m *MapX) AddLanguage(lang string) bool {
	if !IsLanguage(lang) {
		m.sink.Warn(fmt.Sprintf("Can't add unknown language [%s]", lang))
		return false
	}

	if !slices.Contains(m.Languages(), lang) {
		m.doc.Text.Language.Codes = append(m.doc.Text.Language.Codes, LanguageCode{Code: lang})
	}

	return true
}

// Languages returns the declared data languages in order.
func (m *MapX) Languages() []string {
	out := make([]string, 0, len(m.doc.Text.Language.Codes))
	for _, c := range m.doc.Text.Language.Codes {
		out = append(out, c.Code)
	}

	return out
}

func (m *MapX) attributes() map[string]I18n {
	if m.doc.Text.Attributes == nil {
		m.doc.Text.Attributes = map[string]I18n{}
	}

	return m.doc.Text.Attributes
}

func (m *MapX) aliases() map[string]I18n {
	if m.doc.Text.AttributesAlias == nil {
		m.doc.Text.AttributesAlias = map[string]I18n{}
	}

	return m.doc.Text.AttributesAlias
}

// setDynamic sets one language of a dynamic attribute, creating the entry
// with every language when needed.
func (m *MapX) setDynamic(attrs map[string]I18n, what, lang, name, value string) bool {
	if !IsLanguage(lang) {
		m.sink.Warn(fmt.Sprintf("Can't set %s: unknown language [%s]", what, lang))
		return false
	}

	values, ok := attrs[name]
	if !ok || values == nil {
		values = make(I18n, len(languages))
		for _, l := range languages {
			values[l] = ""
		}

		attrs[name] = values
	}

	values[lang] = value

	return true
}

// SetAttribute sets the value of attribute name in lang.
func (m *MapX) SetAttribute(lang, name, value string) bool {
	return m.setDynamic(m.attributes(), "attribute", lang, name, value)
}

// AttributeValue returns the value of attribute name in lang.
func (m *MapX) AttributeValue(lang, name string) (string, bool) {
	values, ok := m.attributes()[name]
	if !ok {
		return "", false
	}

	v, ok := values[lang]

	return v, ok
}

// FirstAttributeValue returns the first non-empty value of attribute name,
// scanning languages in canonical order.
func (m *MapX) FirstAttributeValue(name string) string {
	values := m.attributes()[name]
	for _, lang := range languages {
		if v := values[lang]; v != "" {
			return v
		}
	}

	return ""
}

// Attributes returns every attribute.
func (m *MapX) Attributes() map[string]I18n { return m.attributes() }

// AttributeNames returns the attribute names sorted.
func (m *MapX) AttributeNames() []string {
	names := make([]string, 0, len(m.attributes()))
	for name := range m.attributes() {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// SetAttributeAlias sets the display alias of attribute name in lang.
func (m *MapX) SetAttributeAlias(lang, name, value string) bool {
	return m.setDynamic(m.aliases(), "attribute alias", lang, name, value)
}

// AttributeAliases returns every attribute alias.
func (m *MapX) AttributeAliases() map[string]I18n { return m.aliases() }

// SetReleaseDate sets the release date, rejecting unparseable dates.
func (m *MapX) SetReleaseDate(date string) bool {
	return m.setDate(&m.doc.Temporal.Issuance.ReleasedAt, "release date", date)
}

// ReleaseDate returns the release date or DateDefault.
func (m *MapX) ReleaseDate() string { return m.doc.Temporal.Issuance.ReleasedAt }

// HasReleaseDate reports whether a release date is set.
func (m *MapX) HasReleaseDate() bool { return isSet(m.doc.Temporal.Issuance.ReleasedAt) }

// SetModifiedDate sets the modification date, rejecting unparseable dates.
func (m *MapX) SetModifiedDate(date string) bool {
	return m.setDate(&m.doc.Temporal.Issuance.ModifiedAt, "modified date", date)
}

// ModifiedDate returns the modification date or DateDefault.
func (m *MapX) ModifiedDate() string { return m.doc.Temporal.Issuance.ModifiedAt }

// HasModifiedDate reports whether a modification date is set.
func (m *MapX) HasModifiedDate() bool { return isSet(m.doc.Temporal.Issuance.ModifiedAt) }

// ClearReleaseDate resets the release date to DateDefault.
func (m *MapX) ClearReleaseDate() { m.doc.Temporal.Issuance.ReleasedAt = DateDefault }

// SetPeriodicity sets the update periodicity.
func (m *MapX) SetPeriodicity(periodicity string) bool {
	if !IsPeriodicity(periodicity) {
		m.sink.Warn(fmt.Sprintf("Can't set unknown periodicity [%s]", periodicity))
		return false
	}

	m.doc.Temporal.Issuance.Periodicity = periodicity

	return true
}

// Periodicity returns the update periodicity.
func (m *MapX) Periodicity() string { return m.doc.Temporal.Issuance.Periodicity }

// SetTemporalStart sets the start of the temporal range and clears is_timeless.
func (m *MapX) SetTemporalStart(date string) bool {
	if !m.setDate(&m.doc.Temporal.Range.StartAt, "temporal start", date) {
		return false
	}

	m.doc.Temporal.Range.IsTimeless = false

	return true
}

// SetTemporalEnd sets the end of the temporal range and clears is_timeless.
func (m *MapX) SetTemporalEnd(date string) bool {
	if !m.setDate(&m.doc.Temporal.Range.EndAt, "temporal end", date) {
		return false
	}

	m.doc.Temporal.Range.IsTimeless = false

	return true
}

// IsTimeless reports whether the data has no temporal range.
func (m *MapX) IsTimeless() bool { return m.doc.Temporal.Range.IsTimeless }

// TemporalStart returns the range start or DateDefault.
func (m *MapX) TemporalStart() string { return m.doc.Temporal.Range.StartAt }

// TemporalEnd returns the range end or DateDefault.
func (m *MapX) TemporalEnd() string { return m.doc.Temporal.Range.EndAt }

// HasTemporalStart reports whether a range start is set.
func (m *MapX) HasTemporalStart() bool { return isSet(m.doc.Temporal.Range.StartAt) }

// HasTemporalEnd reports whether a range end is set.
func (m *MapX) HasTemporalEnd() bool { return isSet(m.doc.Temporal.Range.EndAt) }

func (m *MapX) setDate(target *string, what, date string) bool {
	if !CheckDate(date) {
		m.sink.Warn(fmt.Sprintf("Can't set %s: bad date [%s]", what, date))
		return false
	}

	*target = date

	return true
}

func isSet(date string) bool {
	return date != "" && date != DateDefault
}

// SetCRS sets the coordinate reference system.
func (m *MapX) SetCRS(code, url string) {
	m.doc.Spatial.CRS = CRS{Code: code, URL: url}
}

// CRSCode returns the reference system code.
func (m *MapX) CRSCode() string { return m.doc.Spatial.CRS.Code }

// CRSURL returns the reference system URL.
func (m *MapX) CRSURL() string { return m.doc.Spatial.CRS.URL }

// SetBBox sets the sides of the bounding box. A nil side is left unchanged.
func (m *MapX) SetBBox(lngMin, lngMax, latMin, latMax *float64) {
	b := &m.doc.Spatial.BBox

	for _, side := range []struct {
		dst *float64
		src *float64
	}{{&b.LngMin, lngMin}, {&b.LngMax, lngMax}, {&b.LatMin, latMin}, {&b.LatMax, latMax}} {
		if side.src != nil {
			*side.dst = *side.src
		}
	}
}

// BBox returns the bounding box.
func (m *MapX) BBox() BBox { return m.doc.Spatial.BBox }

// AddContact appends a contact.
func (m *MapX) AddContact(function, name, address, email string) {
	m.doc.Contact.Contacts = append(m.doc.Contact.Contacts, Contact{
		Function: function,
		Name:     name,
		Address:  address,
		Email:    email,
	})
}

// Contacts returns the contacts.
func (m *MapX) Contacts() []Contact { return slices.Clone(m.doc.Contact.Contacts) }

// SetHomepage sets the homepage URL.
func (m *MapX) SetHomepage(url string) { m.doc.Origin.Homepage.URL = url }

// Homepage returns the homepage URL or "".
func (m *MapX) Homepage() string { return m.doc.Origin.Homepage.URL }

// AddSource appends a data source.
func (m *MapX) AddSource(url string, isDownloadLink bool) {
	m.doc.Origin.Source.URLs = append(m.doc.Origin.Source.URLs, SourceURL{URL: url, IsDownloadLink: isDownloadLink})
}

// Sources returns the data sources.
func (m *MapX) Sources() []SourceURL { return slices.Clone(m.doc.Origin.Source.URLs) }

// AddLicense appends a license.
func (m *MapX) AddLicense(name, text string) {
	m.doc.License.Licenses = append(m.doc.License.Licenses, License{Name: name, Text: text})
}

// Licenses returns the licenses.
func (m *MapX) Licenses() []License { return slices.Clone(m.doc.License.Licenses) }

// AddReference appends an annex reference.
func (m *MapX) AddReference(url string) {
	m.doc.Annex.References = append(m.doc.Annex.References, Reference{URL: url})
}

// References returns the annex reference URLs.
func (m *MapX) References() []string {
	out := make([]string, 0, len(m.doc.Annex.References))
	for _, r := range m.doc.Annex.References {
		out = append(out, r.URL)
	}

	return out
}
