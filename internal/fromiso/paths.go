package fromiso

import "mapx-converter/internal/tree"

// p parses a slash separated path. Paths are constants, so a bad one is a
// programming error.
func p(path string) []string {
	segments, err := tree.ParsePath(path)
	if err != nil {
		panic(err)
	}

	return segments
}

const (
	rootName         = "MD_Metadata"
	dataIdentName    = "MD_DataIdentification"
	serviceIdentName = "SRV_ServiceIdentification"
	charString       = "CharacterString"
	attrCodeList     = "codeListValue"
)

var (
	pathFileIdentifier = p("fileIdentifier/CharacterString")
	pathCitation       = p("citation/CI_Citation")
	pathTitle          = p("title/CharacterString")
	pathAbstract       = p("abstract/CharacterString")
	pathSuppInfo       = p("supplementalInformation/CharacterString")
	pathPurpose        = p("purpose/CharacterString")
	pathCredit         = p("credit/CharacterString")
	pathStatus         = p("status/MD_ProgressCode")
	pathEnvironment    = p("environmentDescription/CharacterString")
	pathLineage        = p("DQ_DataQuality/lineage/LI_Lineage")
	pathStatement      = p("statement/CharacterString")
	pathStepDesc       = p("LI_ProcessStep/description/CharacterString")
	pathStepRationale  = p("LI_ProcessStep/rationale/CharacterString")
	pathFrequency      = p("resourceMaintenance/MD_MaintenanceInformation/maintenanceAndUpdateFrequency/MD_MaintenanceFrequencyCode")
	pathStampDate      = p("dateStamp/Date")
	pathStampDateTime  = p("dateStamp/DateTime")
	pathDateType       = p("CI_Date/dateType/CI_DateTypeCode")
	pathDateDate       = p("CI_Date/date/Date")
	pathDateDateTime   = p("CI_Date/date/DateTime")
	pathTimePeriod     = p("extent/EX_Extent/temporalElement/EX_TemporalExtent/extent/TimePeriod")
	pathCRS            = p("referenceSystemInfo/MD_ReferenceSystem/referenceSystemIdentifier/RS_Identifier/code/CharacterString")
	pathCRSAnchor      = p("referenceSystemInfo/MD_ReferenceSystem/referenceSystemIdentifier/RS_Identifier/code/Anchor")
	pathBBox           = p("extent/EX_Extent/geographicElement/EX_GeographicBoundingBox")
	pathTransfer       = p("distributionInfo/MD_Distribution/transferOptions")
	pathResponsible    = p("CI_ResponsibleParty")
	pathContactInfo    = p("contactInfo/CI_Contact")
	pathPhone          = p("phone/CI_Telephone")
	pathAddress        = p("address/CI_Address")
	pathRole           = p("role/CI_RoleCode")
	pathClassification = p("classification/MD_ClassificationCode")
	pathUserNote       = p("userNote/CharacterString")
	pathClassSystem    = p("classificationSystem/CharacterString")
	pathHandling       = p("handlingDescription/CharacterString")
)
