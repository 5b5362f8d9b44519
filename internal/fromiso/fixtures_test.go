package fromiso

import (
	"fmt"
	"strings"
)

const nsAttrs = `xmlns:gmd="http://www.isotc211.org/2005/gmd" xmlns:gco="http://www.isotc211.org/2005/gco" ` +
	`xmlns:gml="http://www.opengis.net/gml" xmlns:gmx="http://www.isotc211.org/2005/gmx" ` +
	`xmlns:xlink="http://www.w3.org/1999/xlink"`

const fullDoc = `<?xml version="1.0" encoding="UTF-8"?>
<gmd:MD_Metadata ` + nsAttrs + `>
  <gmd:fileIdentifier><gco:CharacterString>abc-123</gco:CharacterString></gmd:fileIdentifier>
  <gmd:language><gmd:LanguageCode codeList="x" codeListValue="eng">eng</gmd:LanguageCode></gmd:language>
  <gmd:contact>
    <gmd:CI_ResponsibleParty>
      <gmd:individualName><gco:CharacterString>Jane Doe</gco:CharacterString></gmd:individualName>
      <gmd:positionName><gco:CharacterString>CTO</gco:CharacterString></gmd:positionName>
      <gmd:organisationName><gco:CharacterString>Bren School</gco:CharacterString></gmd:organisationName>
      <gmd:contactInfo>
        <gmd:CI_Contact>
          <gmd:phone>
            <gmd:CI_Telephone>
              <gmd:voice><gco:CharacterString>+1 555</gco:CharacterString></gmd:voice>
            </gmd:CI_Telephone>
          </gmd:phone>
          <gmd:address>
            <gmd:CI_Address>
              <gmd:deliveryPoint><gco:CharacterString>1 Main St</gco:CharacterString></gmd:deliveryPoint>
              <gmd:city><gco:CharacterString>Santa Barbara</gco:CharacterString></gmd:city>
              <gmd:administrativeArea><gco:CharacterString>CA</gco:CharacterString></gmd:administrativeArea>
              <gmd:postalCode><gco:CharacterString>93106</gco:CharacterString></gmd:postalCode>
              <gmd:country><gco:CharacterString>USA</gco:CharacterString></gmd:country>
              <gmd:electronicMailAddress><gco:CharacterString>jane@example.org</gco:CharacterString></gmd:electronicMailAddress>
            </gmd:CI_Address>
          </gmd:address>
        </gmd:CI_Contact>
      </gmd:contactInfo>
      <gmd:role><gmd:CI_RoleCode codeList="x" codeListValue="pointOfContact">pointOfContact</gmd:CI_RoleCode></gmd:role>
    </gmd:CI_ResponsibleParty>
  </gmd:contact>
  <gmd:dateStamp><gco:DateTime>2020-04-01T10:00:00</gco:DateTime></gmd:dateStamp>
  <gmd:referenceSystemInfo>
    <gmd:MD_ReferenceSystem>
      <gmd:referenceSystemIdentifier>
        <gmd:RS_Identifier>
          <gmd:code><gco:CharacterString>ETRS89 / ETRS-LAEA (EPSG:3035)</gco:CharacterString></gmd:code>
        </gmd:RS_Identifier>
      </gmd:referenceSystemIdentifier>
    </gmd:MD_ReferenceSystem>
  </gmd:referenceSystemInfo>
  <gmd:identificationInfo>
    <gmd:MD_DataIdentification>
      <gmd:citation>
        <gmd:CI_Citation>
          <gmd:title><gco:CharacterString>Land use</gco:CharacterString></gmd:title>
          <gmd:date>
            <gmd:CI_Date>
              <gmd:date><gco:Date>2020-01-01</gco:Date></gmd:date>
              <gmd:dateType><gmd:CI_DateTypeCode codeListValue="creation"/></gmd:dateType>
            </gmd:CI_Date>
          </gmd:date>
          <gmd:date>
            <gmd:CI_Date>
              <gmd:date><gco:DateTime>2020-02-01T10:00:00</gco:DateTime></gmd:date>
              <gmd:dateType><gmd:CI_DateTypeCode codeListValue="revision"/></gmd:dateType>
            </gmd:CI_Date>
          </gmd:date>
          <gmd:date>
            <gmd:CI_Date>
              <gmd:date><gco:Date>2020-03-01</gco:Date></gmd:date>
              <gmd:dateType><gmd:CI_DateTypeCode codeListValue="publication"/></gmd:dateType>
            </gmd:CI_Date>
          </gmd:date>
        </gmd:CI_Citation>
      </gmd:citation>
      <gmd:abstract><gco:CharacterString>Land use of the region</gco:CharacterString></gmd:abstract>
      <gmd:purpose><gco:CharacterString>Testing</gco:CharacterString></gmd:purpose>
      <gmd:status><gmd:MD_ProgressCode codeListValue="onGoing"/></gmd:status>
      <gmd:pointOfContact>
        <gmd:CI_ResponsibleParty>
          <gmd:individualName><gco:CharacterString>John</gco:CharacterString></gmd:individualName>
          <gmd:role><gmd:CI_RoleCode codeListValue="owner"/></gmd:role>
        </gmd:CI_ResponsibleParty>
      </gmd:pointOfContact>
      <gmd:resourceMaintenance>
        <gmd:MD_MaintenanceInformation>
          <gmd:maintenanceAndUpdateFrequency>
            <gmd:MD_MaintenanceFrequencyCode codeListValue="asNeeded"/>
          </gmd:maintenanceAndUpdateFrequency>
        </gmd:MD_MaintenanceInformation>
      </gmd:resourceMaintenance>
      <gmd:descriptiveKeywords>
        <gmd:MD_Keywords>
          <gmd:keyword><gco:CharacterString>land</gco:CharacterString></gmd:keyword>
          <gmd:keyword><gmx:Anchor xlink:href="http://example.org/cover">cover</gmx:Anchor></gmd:keyword>
        </gmd:MD_Keywords>
      </gmd:descriptiveKeywords>
      <gmd:resourceConstraints>
        <gmd:MD_Constraints>
          <gmd:useLimitation><gco:CharacterString>No commercial use</gco:CharacterString></gmd:useLimitation>
        </gmd:MD_Constraints>
      </gmd:resourceConstraints>
      <gmd:resourceConstraints>
        <gmd:MD_LegalConstraints>
          <gmd:accessConstraints><gmd:MD_RestrictionCode codeListValue="license"/></gmd:accessConstraints>
          <gmd:useConstraints><gmd:MD_RestrictionCode codeListValue="otherRestrictions"/></gmd:useConstraints>
          <gmd:otherConstraints><gco:CharacterString>Free for research</gco:CharacterString></gmd:otherConstraints>
        </gmd:MD_LegalConstraints>
      </gmd:resourceConstraints>
      <gmd:resourceConstraints>
        <gmd:MD_SecurityConstraints>
          <gmd:classification><gmd:MD_ClassificationCode codeListValue="restricted"/></gmd:classification>
          <gmd:userNote><gco:CharacterString>Internal only</gco:CharacterString></gmd:userNote>
          <gmd:handlingDescription><gco:CharacterString>Lock it</gco:CharacterString></gmd:handlingDescription>
        </gmd:MD_SecurityConstraints>
      </gmd:resourceConstraints>
      <gmd:language><gmd:LanguageCode codeListValue="fre"/></gmd:language>
      <gmd:language><gmd:LanguageCode codeListValue="eng"/></gmd:language>
      <gmd:language><gmd:LanguageCode codeListValue="fra"/></gmd:language>
      <gmd:topicCategory><gmd:MD_TopicCategoryCode>biota</gmd:MD_TopicCategoryCode></gmd:topicCategory>
      <gmd:topicCategory><gmd:MD_TopicCategoryCode>cooking</gmd:MD_TopicCategoryCode></gmd:topicCategory>
      <gmd:extent>
        <gmd:EX_Extent>
          <gmd:geographicElement>
            <gmd:EX_GeographicBoundingBox>
              <gmd:westBoundLongitude><gco:Decimal>7</gco:Decimal></gmd:westBoundLongitude>
              <gmd:eastBoundLongitude><gco:Decimal>48.5</gco:Decimal></gmd:eastBoundLongitude>
              <gmd:southBoundLatitude><gco:Decimal>0</gco:Decimal></gmd:southBoundLatitude>
            </gmd:EX_GeographicBoundingBox>
          </gmd:geographicElement>
        </gmd:EX_Extent>
      </gmd:extent>
      <gmd:extent>
        <gmd:EX_Extent>
          <gmd:temporalElement>
            <gmd:EX_TemporalExtent>
              <gmd:extent>
                <gml:TimePeriod gml:id="t1">
                  <gml:beginPosition>2010-01-03T00:00:00</gml:beginPosition>
                  <gml:endPosition>2040</gml:endPosition>
                </gml:TimePeriod>
              </gmd:extent>
            </gmd:EX_TemporalExtent>
          </gmd:temporalElement>
        </gmd:EX_Extent>
      </gmd:extent>
      <gmd:supplementalInformation><gco:CharacterString>note00
Attributes description: width: road width;; in meters; lanes;</gco:CharacterString></gmd:supplementalInformation>
    </gmd:MD_DataIdentification>
  </gmd:identificationInfo>
  <gmd:distributionInfo>
    <gmd:MD_Distribution>
      <gmd:transferOptions>
        <gmd:MD_DigitalTransferOptions>
          <gmd:onLine>
            <gmd:CI_OnlineResource>
              <gmd:linkage><gmd:URL>http://example.org/wms?service=WMS</gmd:URL></gmd:linkage>
              <gmd:protocol><gco:CharacterString>OGC:WMS-1.3.0-http-get-map</gco:CharacterString></gmd:protocol>
              <gmd:name><gco:CharacterString>hot2040</gco:CharacterString></gmd:name>
            </gmd:CI_OnlineResource>
          </gmd:onLine>
          <gmd:onLine>
            <gmd:CI_OnlineResource>
              <gmd:linkage><gmd:URL>ftp://example.org/data.zip</gmd:URL></gmd:linkage>
              <gmd:protocol><gco:CharacterString>WWW:DOWNLOAD-1.0-ftp--download</gco:CharacterString></gmd:protocol>
              <gmd:name><gmx:MimeFileType type="application/zip">data.zip</gmx:MimeFileType></gmd:name>
            </gmd:CI_OnlineResource>
          </gmd:onLine>
        </gmd:MD_DigitalTransferOptions>
      </gmd:transferOptions>
      <gmd:transferOptions>
        <gmd:MD_DigitalTransferOptions>
          <gmd:onLine>
            <gmd:CI_OnlineResource>
              <gmd:linkage><gmd:URL/></gmd:linkage>
            </gmd:CI_OnlineResource>
          </gmd:onLine>
        </gmd:MD_DigitalTransferOptions>
      </gmd:transferOptions>
    </gmd:MD_Distribution>
  </gmd:distributionInfo>
  <gmd:dataQualityInfo>
    <gmd:DQ_DataQuality>
      <gmd:lineage>
        <gmd:LI_Lineage>
          <gmd:statement><gco:CharacterString>Derived from survey</gco:CharacterString></gmd:statement>
          <gmd:processStep>
            <gmd:LI_ProcessStep>
              <gmd:description><gco:CharacterString>Cleaned</gco:CharacterString></gmd:description>
              <gmd:rationale><gco:CharacterString>Noise</gco:CharacterString></gmd:rationale>
            </gmd:LI_ProcessStep>
          </gmd:processStep>
        </gmd:LI_Lineage>
      </gmd:lineage>
    </gmd:DQ_DataQuality>
  </gmd:dataQualityInfo>
  <gmd:metadataConstraints>
    <gmd:MD_LegalConstraints>
      <gmd:otherConstraints><gco:CharacterString>Dataset legal access constraint: license</gco:CharacterString></gmd:otherConstraints>
    </gmd:MD_LegalConstraints>
  </gmd:metadataConstraints>
</gmd:MD_Metadata>`

// isoDoc builds a small document: mdLang is the metadata language code
// ("" omits it), ident is the content of MD_DataIdentification and extra is
// appended to the root.
func isoDoc(mdLang, ident, extra string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<gmd:MD_Metadata %s>\n", nsAttrs)

	if mdLang != "" {
		fmt.Fprintf(&b, `<gmd:language><gmd:LanguageCode codeListValue="%s"/></gmd:language>`+"\n", mdLang)
	}

	b.WriteString(extra)
	fmt.Fprintf(&b, "<gmd:identificationInfo><gmd:MD_DataIdentification>\n%s\n</gmd:MD_DataIdentification></gmd:identificationInfo>\n", ident)
	b.WriteString("</gmd:MD_Metadata>")

	return b.String()
}

const basicIdent = `<gmd:citation><gmd:CI_Citation><gmd:title><gco:CharacterString>T</gco:CharacterString></gmd:title></gmd:CI_Citation></gmd:citation>
<gmd:abstract><gco:CharacterString>A</gco:CharacterString></gmd:abstract>
<gmd:language><gmd:LanguageCode codeListValue="eng"/></gmd:language>`

// datesDoc builds a document with the given metadata timestamp and
// citation dates; empty values are omitted.
func datesDoc(stamp, creation, revision, publication string) string {
	var dates strings.Builder

	for _, d := range []struct{ kind, value string }{
		{"creation", creation},
		{"revision", revision},
		{"publication", publication},
	} {
		if d.value == "" {
			continue
		}

		fmt.Fprintf(&dates, `<gmd:date><gmd:CI_Date><gmd:date><gco:Date>%s</gco:Date></gmd:date>`+
			`<gmd:dateType><gmd:CI_DateTypeCode codeListValue="%s"/></gmd:dateType></gmd:CI_Date></gmd:date>`,
			d.value, d.kind)
	}

	ident := fmt.Sprintf(`<gmd:citation><gmd:CI_Citation><gmd:title><gco:CharacterString>T</gco:CharacterString></gmd:title>%s</gmd:CI_Citation></gmd:citation>`,
		dates.String())

	extra := ""
	if stamp != "" {
		tag := "Date"
		if len(stamp) > 10 {
			tag = "DateTime"
		}

		extra = fmt.Sprintf("<gmd:dateStamp><gco:%s>%s</gco:%s></gmd:dateStamp>\n", tag, stamp, tag)
	}

	return isoDoc("eng", ident, extra)
}
