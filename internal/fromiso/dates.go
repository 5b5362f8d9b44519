package fromiso

import (
	"fmt"

	"mapx-converter/internal/mapx"
	"mapx-converter/internal/vocab"
)

const (
	dateCreation    = "creation"
	datePublication = "publication"
	dateRevision    = "revision"
)

func (c *converter) periodicity() {
	freq := c.ident.FirstNode(pathFrequency...)
	if freq == nil {
		return
	}

	code := freq.Attr(attrCodeList)

	periodicity, ok := vocab.FrequencyISOToMapx(code)
	if !ok {
		c.sink.Warn(fmt.Sprintf("Unknown maintenance frequency [%s]", code))
		periodicity = mapx.PeriodicityUnknown
	}

	c.m.SetPeriodicity(periodicity)
}

// dates sets released_at and modified_at from the citation dates.
// modified_at is the revision date. released_at is the publication date,
// falling back to the creation date and then to the metadata timestamp; a
// fallback later than the revision date is discarded.
func (c *converter) dates() {
	stamp := c.pickDate(c.root.Text(pathStampDateTime...), c.root.Text(pathStampDate...))

	found := map[string]string{}

	for _, n := range c.citation.Nodes("date") {
		kind := n.AttrAt(attrCodeList, pathDateType...)

		date := c.pickDate(n.Text(pathDateDateTime...), n.Text(pathDateDate...))
		if date == "" {
			continue
		}

		switch kind {
		case dateCreation, datePublication, dateRevision:
			if _, ok := found[kind]; !ok {
				found[kind] = date
			}
		default:
			c.sink.Log(fmt.Sprintf("Ignoring date [%s] of type [%s]", date, kind))
		}
	}

	update := found[dateRevision]
	release := found[datePublication]

	if release == "" {
		c.sink.Warn("No publication date available")

		switch {
		case found[dateCreation] != "":
			release = found[dateCreation]
			c.sink.Warn(fmt.Sprintf("Trying using data creation date as release date: %s", release))
		case stamp != "":
			release = stamp
			c.sink.Warn(fmt.Sprintf("Trying using metadata timestamp as release date: %s", release))
		}

		if release != "" && update != "" && release > update {
			c.sink.Warn(fmt.Sprintf("Release date set to default value, since picked value (%s) follows Modified Date (%s)", release, update))
			release = ""
		}
	}

	if release != "" {
		c.m.SetReleaseDate(release)
	}

	if update != "" {
		c.m.SetModifiedDate(update)
	}
}

func (c *converter) temporalExtent() {
	period := c.ident.FindNode(pathTimePeriod...)
	if period == nil {
		return
	}

	if begin := c.pickDate(period.Text("beginPosition")); begin != "" {
		c.m.SetTemporalStart(begin)
	}

	if end := c.pickDate(period.Text("endPosition")); end != "" {
		c.m.SetTemporalEnd(end)
	}
}

// pickDate returns the first non-empty candidate as a date, truncating
// datetimes. Invalid candidates, including bare years, are reported and
// skipped.
func (c *converter) pickDate(candidates ...string) string {
	for _, d := range candidates {
		if d == "" {
			continue
		}

		if !mapx.CheckDate(d) {
			c.sink.Warn(fmt.Sprintf("Date not valid [%s]", d))
			continue
		}

		if len(d) > len(mapx.DateDefault) {
			d = d[:len(mapx.DateDefault)]
		}

		if mapx.CheckDate(d) {
			return d
		}

		c.sink.Warn(fmt.Sprintf("Date not valid [%s]", d))
	}

	return ""
}
