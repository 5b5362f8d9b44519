package mapx

import (
	"fmt"
	"sort"
	"strings"

	"mapx-converter/internal/diagnostic"
)

// Repair makes obj conform to Schema, mutating and returning it.
// A nil obj yields a fully defaulted document without any warning.
func Repair(obj map[string]any, sink diagnostic.Sink) map[string]any {
	sink = diagnostic.OrDiscard(sink)

	check := obj != nil
	if obj == nil {
		obj = map[string]any{}
	}

	repairFields(Schema(), obj, "", check, sink)

	return obj
}

// repairFields walks the schema, not the data. Once a field is reported,
// check is false for its whole subtree.
func repairFields(fields []Field, obj map[string]any, prefix string, check bool, sink diagnostic.Sink) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		checkChild := check

		v, ok := obj[f.Name]

		switch {
		case !ok:
			if f.Mandatory && check {
				sink.Warn(fmt.Sprintf("Missing mandatory element [%s]", path))
				checkChild = false
			}

			v = f.defaultValue()
		case !f.Kind.matches(v):
			if check && (v != nil || f.Mandatory) {
				sink.Warn(fmt.Sprintf("Bad type for element [%s]: expected %s", path, f.Kind))
				checkChild = false
			}

			v = f.defaultValue()
		}

		if v == nil {
			delete(obj, f.Name)

			continue
		}

		switch f.Kind {
		case KindObject:
			repairFields(f.Children, v.(map[string]any), path, checkChild, sink)
		case KindList:
			v = repairItems(f.Items, v.([]any), path, checkChild, sink)
		}

		obj[f.Name] = v
	}
}

func repairItems(item *Field, items []any, path string, check bool, sink diagnostic.Sink) []any {
	if item == nil {
		return items
	}

	out := make([]any, 0, len(items))

	for i, v := range items {
		elem := fmt.Sprintf("%s[%d]", path, i)

		if !item.Kind.matches(v) {
			if check {
				sink.Warn(fmt.Sprintf("Dropping element [%s]: expected %s", elem, item.Kind))
			}

			continue
		}

		if item.Kind == KindObject {
			repairFields(item.Children, v.(map[string]any), elem, check, sink)
		}

		out = append(out, v)
	}

	return out
}

// fixAttributes gives every attribute all MapX languages. A name missing
// some languages is reported once with the full list.
func fixAttributes(field string, attrs map[string]I18n, sink diagnostic.Sink) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		values := attrs[name]
		if values == nil {
			values = I18n{}
			attrs[name] = values
		}

		var missing []string

		for _, lang := range languages {
			if _, ok := values[lang]; !ok {
				missing = append(missing, lang)
				values[lang] = ""
			}
		}

		if len(missing) > 0 {
			sink.Warn(fmt.Sprintf("%s %s is missing languages: %s", field, name, strings.Join(missing, ", ")))
		}
	}
}
