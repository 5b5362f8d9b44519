package mapx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapx-converter/internal/diagnostic"
)

// hasPath reports whether every schema path exists in obj with the right kind.
func hasPath(t *testing.T, fields []Field, obj map[string]any, prefix string) {
	t.Helper()

	for _, f := range fields {
		path := prefix + f.Name

		v, ok := obj[f.Name]
		if f.Kind == KindString && f.Default == nil {
			if ok {
				assert.True(t, f.Kind.matches(v), "bad kind at %s", path)
			}

			continue
		}

		if !assert.True(t, ok, "missing %s", path) {
			continue
		}

		if !assert.True(t, f.Kind.matches(v), "bad kind at %s", path) {
			continue
		}

		if f.Kind == KindObject {
			hasPath(t, f.Children, v.(map[string]any), path+".")
		}
	}
}

func TestRepairTotality(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":        `{}`,
		"partial":      `{"text": {"title": {"en": "x"}}, "temporal": {}}`,
		"wrong kinds":  `{"text": [], "spatial": {"bbox": "whole world"}, "temporal": {"range": {"is_timeless": "yes"}}}`,
		"null members": `{"contact": null, "origin": {"homepage": {"url": null}}}`,
		"bad items":    `{"contact": {"contacts": [1, "x", {"name": "ok"}]}, "annex": {"references": [{}]}}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var obj map[string]any
			require.NoError(t, json.Unmarshal([]byte(input), &obj))

			out := Repair(obj, diagnostic.Discard)
			hasPath(t, Schema(), out, "")
		})
	}
}

func TestRepairNilHasNoWarnings(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics

	out := Repair(nil, &d)
	hasPath(t, Schema(), out, "")
	assert.False(t, d.HasWarnings())

	bbox := out["spatial"].(map[string]any)["bbox"].(map[string]any)
	assert.InDelta(t, -180.0, bbox["lng_min"], 0)
	assert.InDelta(t, 90.0, bbox["lat_max"], 0)

	issuance := out["temporal"].(map[string]any)["issuance"].(map[string]any)
	assert.Equal(t, DateDefault, issuance["released_at"])
	assert.Equal(t, PeriodicityUnknown, issuance["periodicity"])

	_, hasURL := out["origin"].(map[string]any)["homepage"].(map[string]any)["url"]
	assert.False(t, hasURL)
}

func TestRepairWarnsOncePerBranch(t *testing.T) {
	t.Parallel()

	var d diagnostic.Diagnostics

	Repair(map[string]any{}, &d)

	warnings := d.Warnings()
	assert.Contains(t, warnings, "Missing mandatory element [text]")
	assert.Contains(t, warnings, "Missing mandatory element [temporal]")
	assert.NotContains(t, warnings, "Missing mandatory element [text.title]")
	assert.NotContains(t, warnings, "Missing mandatory element [temporal.issuance.released_at]")
	assert.Len(t, warnings, 7)
}

func TestRepairReportsNestedOmission(t *testing.T) {
	t.Parallel()

	obj := New(diagnostic.Discard)
	data, err := obj.JSON(0)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	delete(raw["temporal"].(map[string]any)["issuance"].(map[string]any), "modified_at")
	raw["spatial"].(map[string]any)["bbox"] = "x"

	var d diagnostic.Diagnostics

	Repair(raw, &d)

	assert.Equal(t, []string{
		"Missing mandatory element [temporal.issuance.modified_at]",
		"Bad type for element [spatial.bbox]: expected object",
	}, d.Warnings())
}

func TestRepairDropsBadItems(t *testing.T) {
	t.Parallel()

	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"contact": {"contacts": [1, {"name": "ok"}]}}`), &obj))

	var d diagnostic.Diagnostics

	out := Repair(obj, &d)

	contacts := out["contact"].(map[string]any)["contacts"].([]any)
	require.Len(t, contacts, 1)
	assert.Equal(t, "ok", contacts[0].(map[string]any)["name"])
	assert.Equal(t, "", contacts[0].(map[string]any)["email"])
	assert.Contains(t, d.Warnings(), "Dropping element [contact.contacts[0]]: expected object")
}

func TestRepairIdempotent(t *testing.T) {
	t.Parallel()

	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"text": {"title": {"en": "x"}}, "license": {"licenses": [{"name": "a"}]}}`), &obj))

	once := Repair(obj, diagnostic.Discard)
	first, err := json.Marshal(once)
	require.NoError(t, err)

	var d diagnostic.Diagnostics

	twice := Repair(once, &d)
	second, err := json.Marshal(twice)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.False(t, d.HasWarnings())
}

func TestFixAttributes(t *testing.T) {
	t.Parallel()

	attrs := map[string]I18n{
		"full": {"en": "a", "fr": "b", "es": "", "ru": "", "zh": "", "de": "", "bn": "", "fa": "", "ps": "", "ar": ""},
		"part": {"en": "a", "fr": "b", "es": "", "ru": "", "zh": "", "de": "", "bn": "", "ps": ""},
		"nil":  nil,
	}

	var d diagnostic.Diagnostics

	fixAttributes("attributes", attrs, &d)

	for name, values := range attrs {
		assert.Len(t, values, len(languages), name)
	}

	assert.Equal(t, "a", attrs["part"]["en"])
	assert.Equal(t, []string{
		"attributes nil is missing languages: en, fr, es, ru, zh, de, bn, fa, ps, ar",
		"attributes part is missing languages: fa, ar",
	}, d.Warnings())
}
