package mapx

import "slices"

// DateDefault is the sentinel date meaning "not set".
const DateDefault = "0001-01-01"

// MissingContent replaces mandatory text that has no English value when a
// document is written to ISO. It is treated as absent when read back.
const MissingContent = "MISSING CONTENT"

// DefaultCRSCode and DefaultCRSURL describe WGS84, the default reference system.
const (
	DefaultCRSCode = "EPSG:4326"
	DefaultCRSURL  = "http://spatialreference.org/ref/epsg/4326/"
)

// PeriodicityUnknown is the default periodicity.
const PeriodicityUnknown = "unknown"

var languages = []string{"en", "fr", "es", "ru", "zh", "de", "bn", "fa", "ps", "ar"}

var periodicities = []string{
	"continual", "daily", "weekly", "fortnightly", "monthly", "quarterly", "biannually",
	"annually", "as_needed", "irregular", "not_planned", PeriodicityUnknown,
}

var topics = []string{
	"biota",
	"boundaries",
	"farming",
	"climatologyMeteorologyAtmosphere",
	"economy",
	"elevation",
	"environment",
	"geoscientificInformation",
	"health",
	"imageryBaseMapsEarthCover",
	"intelligenceMilitary",
	"inlandWaters",
	"location",
	"oceans",
	"planningCadastre",
	"society",
	"structure",
	"transportation",
	"utilitiesCommunication",
}

// Languages returns the MapX languages in their canonical order.
func Languages() []string { return slices.Clone(languages) }

// Periodicities returns the accepted periodicity codes.
func Periodicities() []string { return slices.Clone(periodicities) }

// Topics returns the topic category vocabulary.
func Topics() []string { return slices.Clone(topics) }

// IsLanguage reports whether code is a MapX language.
func IsLanguage(code string) bool { return slices.Contains(languages, code) }

// IsPeriodicity reports whether p is an accepted periodicity.
func IsPeriodicity(p string) bool { return slices.Contains(periodicities, p) }

// IsTopic reports whether topic belongs to the topic vocabulary.
func IsTopic(topic string) bool { return slices.Contains(topics, topic) }
