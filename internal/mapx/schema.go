package mapx

// Kind is the JSON kind a schema field must hold.
type Kind int

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

const (
	KindObject Kind = iota // object
	KindList               // list
	KindString             // string
	KindNumber             // number
	KindBool               // bool
)

// Field describes one schema field.
type Field struct {
	// Name is the JSON key.
	Name string
	// Kind is the expected JSON kind.
	Kind Kind
	// Mandatory fields are warned about when missing.
	Mandatory bool
	// Default is the scalar default. Objects and lists default to empty
	// containers. A nil Default on a scalar leaves the key absent.
	Default any
	// Children describes the keys of an object field.
	Children []Field
	// Items describes the elements of a list field.
	Items *Field
}

func object(name string, mandatory bool, children ...Field) Field {
	return Field{Name: name, Kind: KindObject, Mandatory: mandatory, Children: children}
}

func list(name string, items *Field) Field {
	return Field{Name: name, Kind: KindList, Mandatory: true, Items: items}
}

func str(name string, mandatory bool, def any) Field {
	return Field{Name: name, Kind: KindString, Mandatory: mandatory, Default: def}
}

func num(name string, def float64) Field {
	return Field{Name: name, Kind: KindNumber, Mandatory: true, Default: def}
}

// i18n is a per-language text object with every language optional.
func i18n(name string) Field {
	f := object(name, true)
	for _, lang := range languages {
		f.Children = append(f.Children, str(lang, false, ""))
	}

	return f
}

var (
	stringItem  = &Field{Kind: KindString}
	codeItem    = &Field{Kind: KindObject, Children: []Field{str("code", true, "")}}
	contactItem = &Field{Kind: KindObject, Children: []Field{
		str("function", false, ""),
		str("name", false, ""),
		str("address", false, ""),
		str("email", false, ""),
	}}
	sourceItem = &Field{Kind: KindObject, Children: []Field{
		str("url", true, ""),
		{Name: "is_download_link", Kind: KindBool, Default: false},
	}}
	licenseItem = &Field{Kind: KindObject, Children: []Field{
		str("name", false, ""),
		str("text", false, ""),
	}}
	referenceItem = &Field{Kind: KindObject, Children: []Field{str("url", true, "")}}
)

// Schema returns the static MapX schema. The attribute dictionaries are
// declared as plain objects; their per-language content is repaired apart.
func Schema() []Field {
	return []Field{
		object("text", true,
			i18n("title"),
			i18n("abstract"),
			i18n("notes"),
			object("keywords", true,
				list("keys", stringItem),
				list("topics", stringItem),
			),
			object("attributes", false),
			object("attributes_alias", false),
			object("language", true,
				list("codes", codeItem),
			),
		),
		object("temporal", true,
			object("issuance", true,
				str("periodicity", true, PeriodicityUnknown),
				str("released_at", true, DateDefault),
				str("modified_at", true, DateDefault),
			),
			object("range", true,
				Field{Name: "is_timeless", Kind: KindBool, Mandatory: true, Default: true},
				str("start_at", false, DateDefault),
				str("end_at", false, DateDefault),
			),
		),
		object("spatial", true,
			object("crs", true,
				str("code", true, DefaultCRSCode),
				str("url", true, DefaultCRSURL),
			),
			object("bbox", true,
				num("lng_min", -180),
				num("lng_max", 180),
				num("lat_min", -90),
				num("lat_max", 90),
			),
		),
		object("contact", true,
			list("contacts", contactItem),
		),
		object("origin", true,
			object("homepage", true,
				str("url", false, nil),
			),
			object("source", true,
				list("urls", sourceItem),
			),
		),
		object("license", true,
			list("licenses", licenseItem),
		),
		object("annex", true,
			list("references", referenceItem),
		),
	}
}

// defaultValue returns a fresh default for f.
func (f Field) defaultValue() any {
	switch f.Kind {
	case KindObject:
		return map[string]any{}
	case KindList:
		return []any{}
	default:
		return f.Default
	}
}

// matches reports whether v holds the JSON kind k.
func (k Kind) matches(v any) bool {
	switch v.(type) {
	case map[string]any:
		return k == KindObject
	case []any:
		return k == KindList
	case string:
		return k == KindString
	case bool:
		return k == KindBool
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return k == KindNumber
	default:
		return false
	}
}
