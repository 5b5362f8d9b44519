package attrcodec

import (
	"strings"
)

// Marker opens an attribute block.
const Marker = "Attributes description:"

// Attribute is a name with an optional value.
type Attribute struct {
	Name     string
	Value    string
	HasValue bool
}

var (
	escaper   = strings.NewReplacer(":", "::", ";", ";;")
	unescaper = strings.NewReplacer("::", ":", ";;", ";")
)

// Escape doubles every ':' and ';' in s.
func Escape(s string) string { return escaper.Replace(s) }

// Unescape reverses Escape.
func Unescape(s string) string { return unescaper.Replace(s) }

// Encode renders attrs as an attribute block, or "" when attrs is empty.
func Encode(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(Marker)

	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(';')
		}

		b.WriteByte(' ')
		b.WriteString(Escape(a.Name))

		if a.HasValue {
			b.WriteString(": ")
			b.WriteString(Escape(a.Value))
		}
	}

	b.WriteByte(';')

	return b.String()
}

// Decode splits text into the text surrounding the first attribute block and
// the attributes the block holds. Text without a well-formed block is
// returned unchanged with no attributes.
func Decode(text string) (string, []Attribute) {
	start := strings.Index(text, Marker)
	if start < 0 {
		return text, nil
	}

	attrs, end := scanEntries(text, start+len(Marker))
	if len(attrs) == 0 {
		return text, nil
	}

	if start > 0 && text[start-1] == '\n' {
		start--
	}

	return text[:start] + text[end:], attrs
}

// scanEntries reads complete entries starting at pos. It returns them with
// the offset just past the last complete entry.
func scanEntries(text string, pos int) ([]Attribute, int) {
	var attrs []Attribute

	end := pos

	for {
		p := skipSeparator(text, end)

		name, p, stop := scanToken(text, p, true)
		if p >= len(text) {
			return attrs, end
		}

		a := Attribute{Name: Unescape(name)}

		if stop == ':' {
			p = skipSeparator(text, p+1)

			var value string

			value, p, _ = scanToken(text, p, false)
			if p >= len(text) {
				return attrs, end
			}

			a.Value = Unescape(value)
			a.HasValue = true
		}

		attrs = append(attrs, a)
		end = p + 1
	}
}

// scanToken reads until an unescaped ';' (or ':' when colonStops is set),
// returning the raw token, the stop offset and the stop byte. Offset
// len(text) means the token ran off the end.
func scanToken(text string, pos int, colonStops bool) (string, int, byte) {
	i := pos

	for i < len(text) {
		c := text[i]

		switch {
		case c == ';' || (c == ':' && colonStops):
			if i+1 < len(text) && text[i+1] == c {
				i += 2
				continue
			}

			return text[pos:i], i, c
		case c == ':' && i+1 < len(text) && text[i+1] == ':':
			i += 2
		default:
			i++
		}
	}

	return text[pos:], len(text), 0
}

// skipSeparator skips the single blank Encode writes before a name or a
// value. Further whitespace belongs to the token.
func skipSeparator(text string, pos int) int {
	if pos < len(text) && text[pos] == ' ' {
		pos++
	}

	return pos
}
