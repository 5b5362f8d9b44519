package vocab

// CodeListBase is the location of the ISO 19139 codelist catalogue.
const CodeListBase = "http://standards.iso.org/ittf/PubliclyAvailableStandards/ISO_19139_Schemas/resources/codelist/ML_gmxCodelists.xml"

// CodeList returns the codelist URL for a codelist name, e.g. "CI_RoleCode".
func CodeList(name string) string {
	return CodeListBase + "#" + name
}

var freqISOToMapx = map[string]string{
	"continual":   "continual",
	"daily":       "daily",
	"weekly":      "weekly",
	"fortnightly": "fortnightly",
	"monthly":     "monthly",
	"quarterly":   "quarterly",
	"biannually":  "biannually",
	"annually":    "annually",
	"asNeeded":    "as_needed",
	"irregular":   "irregular",
	"notPlanned":  "not_planned",
	"unknown":     "unknown",
}

var freqMapxToISO = map[string]string{
	"continual":   "continual",
	"daily":       "daily",
	"weekly":      "weekly",
	"fortnightly": "fortnightly",
	"monthly":     "monthly",
	"quarterly":   "quarterly",
	"biannually":  "biannually",
	"annually":    "annually",
	"as_needed":   "asNeeded",
	"irregular":   "irregular",
	"not_planned": "notPlanned",
	"unknown":     "unknown",
}

// FrequencyISOToMapx maps an MD_MaintenanceFrequencyCode to a MapX periodicity.
func FrequencyISOToMapx(code string) (string, bool) {
	v, ok := freqISOToMapx[code]

	return v, ok
}

// FrequencyMapxToISO maps a MapX periodicity to an MD_MaintenanceFrequencyCode.
func FrequencyMapxToISO(periodicity string) (string, bool) {
	v, ok := freqMapxToISO[periodicity]

	return v, ok
}

var roleLabels = map[string]string{
	"resourceProvider":      "Resource provider",
	"custodian":             "Custodian",
	"owner":                 "Owner",
	"user":                  "User",
	"distributor":           "Distributor",
	"originator":            "Originator",
	"pointOfContact":        "Point of Contact",
	"principalInvestigator": "Principal investigator",
	"processor":             "Processor",
	"publisher":             "Publisher",
	"author":                "Author",
}

// RoleLabel returns the display label of a CI_RoleCode, or the code itself
// when it is not part of the vocabulary.
func RoleLabel(code string) string {
	if v, ok := roleLabels[code]; ok {
		return v
	}

	return code
}
