package toiso

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mapx-converter/internal/diagnostic"
	"mapx-converter/internal/htmltext"
	"mapx-converter/internal/mapx"
	"mapx-converter/internal/tree"
)

// Options tune a conversion.
type Options struct {
	// Now returns the conversion instant. Defaults to time.Now.
	Now func() time.Time
	// StripHTML removes markup from the abstract and the notes.
	StripHTML bool
	// Indent is the XML indentation used by ConvertXML; 0 writes one line.
	Indent int
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}

	return o.Now()
}

type converter struct {
	m     *mapx.MapX
	sink  diagnostic.Sink
	opts  Options
	today string
}

// Convert builds the ISO19139 document node for m. A nil m converts as an
// empty document.
func Convert(m *mapx.MapX, sink diagnostic.Sink, opts Options) *tree.Node {
	sink = diagnostic.OrDiscard(sink)

	if m == nil {
		m = mapx.New(sink)
	}

	c := &converter{
		m:     m,
		sink:  sink,
		opts:  opts,
		today: opts.now().Format(time.DateOnly),
	}

	body := tree.NewNode()

	body.AddNode(gmd("language")).Add(gmd("LanguageCode"), languageNode(isoEnglish))

	var dataContacts []mapx.Contact

	for _, ct := range m.Contacts() {
		body.Add(gmd("contact"), responsibleParty(ct))

		if !strings.Contains(strings.ToLower(ct.Function), "metadata") {
			dataContacts = append(dataContacts, ct)
		}
	}

	body.AddNode(gmd("dateStamp")).AddText(gco("Date"), c.today)

	rs := body.AddNode(gmd("referenceSystemInfo")).
		AddNode(gmd("MD_ReferenceSystem")).
		AddNode(gmd("referenceSystemIdentifier")).
		AddNode(gmd("RS_Identifier"))
	charString(rs, "code", m.CRSCode())

	c.identification(body.AddNode(gmd("identificationInfo")).AddNode(gmd("MD_DataIdentification")), dataContacts)
	c.distribution(body)

	id := c.identifier(body)
	sink.Log(fmt.Sprintf("Generated file identifier [%s]", id))

	root := tree.NewNode().
		SetAttr("xmlns:gmd", nsGMD).
		SetAttr("xmlns:gco", nsGCO).
		SetAttr("xmlns:gml", nsGML)
	charString(root, "fileIdentifier", id)
	body.Each(func(name string, items []tree.Item) {
		root.Add(name, items...)
	})

	return tree.NewNode().Add(gmd("MD_Metadata"), root)
}

// ConvertXML converts m and serialises the result.
func ConvertXML(m *mapx.MapX, sink diagnostic.Sink, opts Options) (string, error) {
	text, err := tree.WriteXML(Convert(m, sink, opts), opts.Indent)
	if err != nil {
		return "", fmt.Errorf("writing iso document: %w", err)
	}

	return text, nil
}

// ConvertJSON decodes a MapX JSON document and converts it.
func ConvertJSON(data []byte, sink diagnostic.Sink, opts Options) (string, error) {
	m, err := mapx.FromJSON(data, sink)
	if err != nil {
		return "", err
	}

	return ConvertXML(m, sink, opts)
}

// identifier derives the file identifier from the serialised metadata
// built so far, so equal content written on the same day gets equal ids.
func (c *converter) identifier(body *tree.Node) string {
	text, err := tree.WriteXML(tree.NewNode().Add(gmd("MD_Metadata"), body), 0)
	if err != nil {
		c.sink.Warn(fmt.Sprintf("Can't hash metadata, using a random identifier: %v", err))
		return uuid.NewString()
	}

	return uuid.NewMD5(uuid.NameSpaceURL, []byte(text)).String()
}

// english returns the English value of a mandatory text.
func (c *converter) english(what string, values mapx.I18n) string {
	if v := values[englishKey]; v != "" {
		return v
	}

	c.sink.Warn(fmt.Sprintf("Missing English %s, writing %q", what, mapx.MissingContent))

	return mapx.MissingContent
}

func (c *converter) clean(s string) string {
	if !c.opts.StripHTML {
		return s
	}

	return htmltext.Strip(s)
}

func responsibleParty(ct mapx.Contact) *tree.Node {
	holder := tree.NewNode()
	rp := holder.AddNode(gmd("CI_ResponsibleParty"))

	charString(rp, "individualName", ct.Name)
	charString(rp, "positionName", ct.Function)

	addr := rp.AddNode(gmd("contactInfo")).
		AddNode(gmd("CI_Contact")).
		AddNode(gmd("address")).
		AddNode(gmd("CI_Address"))
	charString(addr, "deliveryPoint", ct.Address)
	charString(addr, "electronicMailAddress", ct.Email)

	rp.AddNode(gmd("role")).Add(gmd("CI_RoleCode"), codeNode("CI_RoleCode", "pointOfContact"))

	return holder
}
