package fromiso

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	epsgURLFormat  = "http://spatialreference.org/ref/epsg/%s/"
	legacyWGS84    = "GCS_WGS_1984"
	verbatimCRSURL = "http://spatialreference.org/ref/epsg/0/"
)

// epsgPatterns are tried in order; the first submatch is the EPSG number.
var epsgPatterns = []*regexp.Regexp{
	regexp.MustCompile(`.*\(EPSG:([0-9]+)\)`),
	regexp.MustCompile(`EPSG:[0-9.]*:([0-9]+)$`),
	regexp.MustCompile(`EPSG:([0-9]+)`),
	regexp.MustCompile(`/EPSG/[0-9.]+/([0-9]+)$`),
}

// extractEPSG pulls an EPSG number out of a reference system identifier.
func extractEPSG(id string) (string, bool) {
	if id == legacyWGS84 {
		return "4326", true
	}

	for _, re := range epsgPatterns {
		if m := re.FindStringSubmatch(id); m != nil {
			return m[1], true
		}
	}

	return "", false
}

func (c *converter) crs() {
	id := c.root.Text(pathCRS...)
	if id == "" {
		id = c.root.Text(pathCRSAnchor...)
	}

	if id == "" {
		c.sink.Warn("CRS not found")
		return
	}

	c.sink.Log(fmt.Sprintf("CRS [%s]", id))

	if code, ok := extractEPSG(id); ok {
		c.m.SetCRS("EPSG:"+code, fmt.Sprintf(epsgURLFormat, code))
		return
	}

	c.sink.Warn(fmt.Sprintf("Can't extract an EPSG code from CRS [%s], copying it verbatim", id))
	c.m.SetCRS(id, verbatimCRSURL)
}

func (c *converter) bbox() {
	box := c.ident.FindNode(pathBBox...)
	if box == nil {
		return
	}

	side := func(name string) *float64 {
		text := box.Text(name, "Decimal")
		if text == "" {
			return nil
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			c.sink.Warn(fmt.Sprintf("Bad %s value [%s]", name, text))
			return nil
		}

		return &v
	}

	c.m.SetBBox(
		side("westBoundLongitude"),
		side("eastBoundLongitude"),
		side("southBoundLatitude"),
		side("northBoundLatitude"),
	)
}
