package fromiso

import (
	"fmt"
	"strings"
)

const (
	downloadProtocolPrefix = "WWW:DOWNLOAD"
	getMapProtocolSuffix   = "get-map"
)

// sources imports every online resource of the distribution transfer
// options. Resources without a URL are skipped.
func (c *converter) sources() {
	for _, opts := range c.root.Nodes(pathTransfer...) {
		for _, dto := range opts.Nodes("MD_DigitalTransferOptions") {
			for _, online := range dto.Nodes("onLine") {
				for _, res := range online.Nodes("CI_OnlineResource") {
					url := res.Text("linkage", "URL")
					proto := res.Text("protocol", charString)
					name := res.Text("name", charString)

					if url == "" {
						c.sink.Log("Skipping online resource without URL")
						continue
					}

					if strings.HasSuffix(proto, getMapProtocolSuffix) {
						if name != "" {
							url += "&LAYER=" + name
						} else {
							c.sink.Warn(fmt.Sprintf("No layer name for map resource [%s]", url))
						}
					}

					c.m.AddSource(url, strings.HasPrefix(proto, downloadProtocolPrefix))
				}
			}
		}
	}
}
