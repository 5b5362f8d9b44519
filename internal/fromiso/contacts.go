package fromiso

import (
	"mapx-converter/internal/common"
	"mapx-converter/internal/tree"
	"mapx-converter/internal/vocab"
)

// party is the flattened content of a CI_ResponsibleParty.
type party struct {
	individual   string
	position     string
	organisation string
	voice        string
	fax          string
	delivery     string
	city         string
	adminArea    string
	postalCode   string
	country      string
	email        string
	role         string
}

func parseParty(rp *tree.Node) party {
	info := rp.FirstNode(pathContactInfo...)
	phone := info.FirstNode(pathPhone...)
	addr := info.FirstNode(pathAddress...)

	role := rp.AttrAt(attrCodeList, pathRole...)
	if role == "" {
		role = "unknown"
	}

	return party{
		individual:   rp.Text("individualName", charString),
		position:     rp.Text("positionName", charString),
		organisation: rp.Text("organisationName", charString),
		voice:        phone.Text("voice", charString),
		fax:          phone.Text("facsimile", charString),
		delivery:     addr.Text("deliveryPoint", charString),
		city:         addr.Text("city", charString),
		adminArea:    addr.Text("administrativeArea", charString),
		postalCode:   addr.Text("postalCode", charString),
		country:      addr.Text("country", charString),
		email:        addr.Text("electronicMailAddress", charString),
		role:         vocab.RoleLabel(role),
	}
}

// name joins the individual name and position.
func (p party) name() string {
	return common.JoinNonEmpty(", ", p.individual, p.position)
}

// address renders the organisation, postal and phone details as one line.
func (p party) address() string {
	return common.JoinNonEmpty(" - ",
		p.organisation,
		labelled("Address: ", p.delivery),
		labelled("City: ", p.city),
		wrapped("(", p.adminArea, ")"),
		labelled("ZIP ", p.postalCode),
		labelled("Country: ", p.country),
		labelled("Phone: ", p.voice),
		labelled("Fax: ", p.fax),
	)
}

func labelled(label, v string) string {
	return wrapped(label, v, "")
}

func wrapped(prefix, v, suffix string) string {
	if v == "" {
		return ""
	}

	return prefix + v + suffix
}

// contacts imports every responsible party, prefixing the role label with
// context ("Metadata" or "Dataset").
func (c *converter) contacts(context string, list []*tree.Node) {
	for _, n := range list {
		p := parseParty(n.FirstNode(pathResponsible...))
		c.m.AddContact(context+" "+p.role, p.name(), p.address(), p.email)
	}
}
