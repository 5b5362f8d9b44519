package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	root := NewNode()
	md := root.AddNode("MD_Metadata")
	md.AddText("fileIdentifier", "abc")

	// two extents: the first has no temporal element
	ident := md.AddNode("identificationInfo").AddNode("MD_DataIdentification")
	ident.AddNode("extent").AddNode("EX_Extent").AddNode("geographicElement")
	ex := ident.AddNode("extent").AddNode("EX_Extent")
	ex.AddNode("temporalElement").AddText("name", "period")

	ident.AddText("language", "eng")
	ident.AddText("language", "fra")
	ident.AddNode("status").AddNode("MD_ProgressCode").SetAttr("codeListValue", "completed")

	return root
}

func TestFirst(t *testing.T) {
	t.Parallel()

	root := sampleTree()

	assert.Equal(t, "abc", root.Text("MD_Metadata", "fileIdentifier"))
	assert.Nil(t, root.First("MD_Metadata", "missing"))
	assert.Nil(t, root.First("MD_Metadata", "fileIdentifier", "deeper"), "leaf cannot be descended")
	assert.Equal(t, "completed", root.AttrAt("codeListValue",
		"MD_Metadata", "identificationInfo", "MD_DataIdentification", "status", "MD_ProgressCode"))

	// First only looks at the first extent
	assert.Nil(t, root.First("MD_Metadata", "identificationInfo", "MD_DataIdentification",
		"extent", "EX_Extent", "temporalElement"))
}

func TestFind(t *testing.T) {
	t.Parallel()

	ident := sampleTree().FirstNode("MD_Metadata", "identificationInfo", "MD_DataIdentification")
	require.NotNil(t, ident)

	found := ident.FindNode("extent", "EX_Extent", "temporalElement")
	require.NotNil(t, found)
	assert.Equal(t, "period", found.Text("name"))

	assert.Nil(t, ident.Find("extent", "EX_Extent", "verticalElement"))
}

func TestAllAndTexts(t *testing.T) {
	t.Parallel()

	ident := sampleTree().FirstNode("MD_Metadata", "identificationInfo", "MD_DataIdentification")

	assert.Len(t, ident.All("extent"), 2)
	assert.Len(t, ident.Nodes("extent"), 2)
	assert.Equal(t, []string{"eng", "fra"}, ident.Texts("language"))
	assert.Nil(t, ident.All())
}

func TestNilSafety(t *testing.T) {
	t.Parallel()

	var n *Node

	assert.Nil(t, n.First("a"))
	assert.Nil(t, n.Find("a"))
	assert.Empty(t, n.Text("a"))
	assert.Empty(t, n.Attr("a"))
	assert.Empty(t, n.All("a"))
	assert.Empty(t, n.Names())
	assert.False(t, n.Has("a"))
	n.Each(func(string, []Item) { t.Fatal("must not be called") })
}

func TestBuilderOrder(t *testing.T) {
	t.Parallel()

	n := NewNode().AddText("b", "1").AddText("a", "2").AddText("b", "3")

	assert.Equal(t, []string{"b", "a"}, n.Names())
	assert.Len(t, n.Children("b"), 2)
	assert.Equal(t, "3", TextOf(n.Children("b")[1]))
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr bool
	}{
		{name: "single", path: "MD_Metadata", want: []string{"MD_Metadata"}},
		{name: "nested", path: "/MD_Metadata/identificationInfo/", want: []string{"MD_Metadata", "identificationInfo"}},
		{name: "empty", path: "", wantErr: true},
		{name: "empty segment", path: "a//b", wantErr: true},
		{name: "bad name", path: "a/1b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
