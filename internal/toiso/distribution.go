package toiso

import (
	"mapx-converter/internal/common"
	"mapx-converter/internal/tree"
)

type onlineResource struct {
	url      string
	protocol string
	name     string
}

// distribution writes the homepage, the sources and the annexes as online
// resources of a single transfer option.
func (c *converter) distribution(body *tree.Node) {
	var res []onlineResource

	if hp := c.m.Homepage(); hp != "" {
		res = append(res, onlineResource{url: hp, name: "Homepage"})
	}

	for _, s := range c.m.Sources() {
		if s.URL == "" {
			c.sink.Log("Skipping source without URL")
			continue
		}

		r := onlineResource{url: s.URL, name: "Other resource"}
		if s.IsDownloadLink {
			r.protocol = downloadProtocol
			r.name = "Downloadable resource"
		}

		res = append(res, r)
	}

	for _, ref := range c.m.References() {
		if ref == "" {
			c.sink.Log("Skipping annex without URL")
			continue
		}

		res = append(res, onlineResource{url: ref, name: "Annex"})
	}

	if common.IsEmpty(res) {
		return
	}

	dto := body.AddNode(gmd("distributionInfo")).
		AddNode(gmd("MD_Distribution")).
		AddNode(gmd("transferOptions")).
		AddNode(gmd("MD_DigitalTransferOptions"))

	for _, r := range res {
		online := dto.AddNode(gmd("onLine")).AddNode(gmd("CI_OnlineResource"))
		online.AddNode(gmd("linkage")).AddText(gmd("URL"), r.url)

		if r.protocol != "" {
			charString(online, "protocol", r.protocol)
		}

		charString(online, "name", r.name)
	}
}
