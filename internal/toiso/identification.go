package toiso

import (
	"fmt"

	"mapx-converter/internal/attrcodec"
	"mapx-converter/internal/common"
	"mapx-converter/internal/mapx"
	"mapx-converter/internal/tree"
	"mapx-converter/internal/vocab"
)

// identification fills MD_DataIdentification, keeping the ISO element order.
func (c *converter) identification(ident *tree.Node, dataContacts []mapx.Contact) {
	cit := ident.AddNode(gmd("citation")).AddNode(gmd("CI_Citation"))
	charString(cit, "title", c.english("title", c.m.Titles()))
	c.dates(cit)

	charString(ident, "abstract", c.clean(c.english("abstract", c.m.Abstracts())))

	for _, ct := range dataContacts {
		ident.Add(gmd("pointOfContact"), responsibleParty(ct))
	}

	c.maintenance(ident)
	c.keywords(ident)
	c.licenses(ident)
	c.languages(ident)

	for _, topic := range c.m.Topics() {
		ident.AddNode(gmd("topicCategory")).AddText(gmd("MD_TopicCategoryCode"), topic)
	}

	c.extents(ident)
	c.supplementalInformation(ident)
}

// dates writes the publication and revision dates. A revision equal to the
// publication is not repeated; with neither, today is written as
// publication date.
func (c *converter) dates(cit *tree.Node) {
	release := c.m.ReleaseDate()
	useRelease := c.m.HasReleaseDate() && mapx.CheckDate(release)

	if useRelease {
		citationDate(cit, release, "publication")
	}

	modified := c.m.ModifiedDate()
	useModified := c.m.HasModifiedDate() && mapx.CheckDate(modified)

	if useModified && (!useRelease || modified != release) {
		citationDate(cit, modified, "revision")
	}

	if !useRelease && !useModified {
		c.sink.Warn("No dataset reference date given.")
		citationDate(cit, c.today, "publication")
	}
}

func citationDate(cit *tree.Node, value, kind string) {
	d := cit.AddNode(gmd("date")).AddNode(gmd("CI_Date"))
	dateNode(d, "date", value)
	d.AddNode(gmd("dateType")).Add(gmd("CI_DateTypeCode"), codeNode("CI_DateTypeCode", kind))
}

func (c *converter) maintenance(ident *tree.Node) {
	code, ok := vocab.FrequencyMapxToISO(c.m.Periodicity())
	if !ok {
		c.sink.Warn(fmt.Sprintf("Can't map periodicity [%s], writing unknown", c.m.Periodicity()))
		code = mapx.PeriodicityUnknown
	}

	ident.AddNode(gmd("resourceMaintenance")).
		AddNode(gmd("MD_MaintenanceInformation")).
		AddNode(gmd("maintenanceAndUpdateFrequency")).
		Add(gmd("MD_MaintenanceFrequencyCode"), codeNode("MD_MaintenanceFrequencyCode", code))
}

func (c *converter) keywords(ident *tree.Node) {
	keys := c.m.Keywords()
	if common.IsEmpty(keys) {
		return
	}

	kws := ident.AddNode(gmd("descriptiveKeywords")).AddNode(gmd("MD_Keywords"))
	for _, k := range keys {
		charString(kws, "keyword", k)
	}
}

// licenses writes every license as "name: text" in one legal constraint.
func (c *converter) licenses(ident *tree.Node) {
	var texts []string

	for _, l := range c.m.Licenses() {
		if text := common.JoinNonEmpty(": ", l.Name, l.Text); text != "" {
			texts = append(texts, text)
		}
	}

	if common.IsEmpty(texts) {
		return
	}

	legal := ident.AddNode(gmd("resourceConstraints")).AddNode(gmd("MD_LegalConstraints"))
	legal.AddNode(gmd("accessConstraints")).
		Add(gmd("MD_RestrictionCode"), codeNode("MD_RestrictionCode", "otherRestrictions"))

	for _, text := range texts {
		charString(legal, "otherConstraints", text)
	}
}

// languages writes the data languages, English when none maps.
func (c *converter) languages(ident *tree.Node) {
	var codes []string

	for _, lang := range c.m.Languages() {
		code, ok := vocab.LangMapxToISO(lang)
		if !ok {
			c.sink.Warn(fmt.Sprintf("Can't map language [%s] to ISO", lang))
			continue
		}

		codes = common.AppendUnique(codes, code)
	}

	if common.IsEmpty(codes) {
		codes = []string{isoEnglish}
	}

	for _, code := range codes {
		ident.AddNode(gmd("language")).Add(gmd("LanguageCode"), languageNode(code))
	}
}

// extents writes the bounding box and, for a dataset that is not timeless
// and has a valid start or end, the time period.
func (c *converter) extents(ident *tree.Node) {
	box := c.m.BBox()

	geo := ident.AddNode(gmd("extent")).
		AddNode(gmd("EX_Extent")).
		AddNode(gmd("geographicElement")).
		AddNode(gmd("EX_GeographicBoundingBox"))
	decimal(geo, "westBoundLongitude", box.LngMin)
	decimal(geo, "eastBoundLongitude", box.LngMax)
	decimal(geo, "southBoundLatitude", box.LatMin)
	decimal(geo, "northBoundLatitude", box.LatMax)

	if c.m.IsTimeless() {
		return
	}

	period := tree.NewNode().SetAttr("gml:id", timePeriodID)

	if start := c.m.TemporalStart(); c.m.HasTemporalStart() && mapx.CheckDate(start) {
		period.AddText(gml("beginPosition"), start)
	}

	if end := c.m.TemporalEnd(); c.m.HasTemporalEnd() && mapx.CheckDate(end) {
		period.AddText(gml("endPosition"), end)
	}

	if common.IsEmpty(period.Names()) {
		c.sink.Log("No valid temporal extent")
		return
	}

	ident.AddNode(gmd("extent")).
		AddNode(gmd("EX_Extent")).
		AddNode(gmd("temporalElement")).
		AddNode(gmd("EX_TemporalExtent")).
		AddNode(gmd("extent")).
		Add(gml("TimePeriod"), period)
}

// supplementalInformation writes the English notes followed by the encoded
// attribute block.
func (c *converter) supplementalInformation(ident *tree.Node) {
	var attrs []attrcodec.Attribute

	for _, name := range c.m.AttributeNames() {
		value := c.m.FirstAttributeValue(name)
		attrs = append(attrs, attrcodec.Attribute{Name: name, Value: value, HasValue: value != ""})
	}

	text := common.JoinNonEmpty("\n", c.clean(c.m.Notes(englishKey)), attrcodec.Encode(attrs))
	if text == "" {
		return
	}

	charString(ident, "supplementalInformation", text)
}
