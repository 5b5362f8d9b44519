package fromiso

import (
	"fmt"

	"mapx-converter/internal/common"
	"mapx-converter/internal/diagnostic"
	"mapx-converter/internal/mapx"
	"mapx-converter/internal/tree"
)

// converter holds the state of one conversion.
type converter struct {
	m     *mapx.MapX
	sink  diagnostic.Sink
	root  *tree.Node
	ident *tree.Node
	// citation is the CI_Citation of the identification.
	citation *tree.Node
	// lang is the MapX language every text field is stored under.
	lang string
}

// ConvertXML parses ISO19139 XML text and converts it. It returns nil when
// the text is not well-formed XML or holds no metadata root.
func ConvertXML(text string, sink diagnostic.Sink) *mapx.MapX {
	sink = diagnostic.OrDiscard(sink)

	doc, err := tree.ParseXML(text)
	if err != nil {
		sink.Warn(fmt.Sprintf("Could not parse XML document, skipping mapx creation: %v", err))
		return nil
	}

	return Convert(doc, sink)
}

// Convert builds a MapX document from a parsed ISO19139 document node.
// The metadata root may be the document element or be wrapped by one
// enclosing element. Convert returns nil when no root is found.
func Convert(doc *tree.Node, sink diagnostic.Sink) *mapx.MapX {
	sink = diagnostic.OrDiscard(sink)

	root := findRoot(doc, sink)
	if root == nil {
		sink.Warn(fmt.Sprintf("Could not find the root %s element", rootName))
		return nil
	}

	c := &converter{
		m:    mapx.New(sink),
		sink: sink,
		root: root,
	}

	c.identification()
	c.languages()
	c.texts()
	c.keywords()
	c.notes()
	c.periodicity()
	c.dates()
	c.temporalExtent()
	c.crs()
	c.bbox()
	c.contacts("Metadata", root.Nodes("contact"))
	c.contacts("Dataset", c.ident.Nodes("pointOfContact"))
	c.sources()
	c.constraints("Metadata", root.Nodes("metadataConstraints"))
	c.constraints("Dataset", c.ident.Nodes("resourceConstraints"))

	return c.m
}

func findRoot(doc *tree.Node, sink diagnostic.Sink) *tree.Node {
	if doc.Has(rootName) {
		return asNode(doc.First(rootName))
	}

	name, ok := common.First(doc.Names())
	if !ok {
		return nil
	}

	sink.Log(fmt.Sprintf("Unwrapping %s", name))

	return asNode(doc.First(name, rootName))
}

// asNode returns the root item as a node. An empty root element parses as
// a leaf and converts as a node without children.
func asNode(it tree.Item) *tree.Node {
	switch v := it.(type) {
	case *tree.Node:
		return v
	case tree.Leaf:
		return &tree.Node{Value: string(v)}
	default:
		return nil
	}
}

func (c *converter) identification() {
	if id := c.root.Text(pathFileIdentifier...); id != "" {
		c.sink.Log(fmt.Sprintf("Metadata id [%s]", id))
	}

	infos := c.root.Nodes("identificationInfo")
	if len(infos) > 1 {
		c.sink.Warn("More than 1 identificationInfo found")
	}

	info, ok := common.First(infos)
	if !ok {
		c.sink.Warn("Could not find the identificationInfo element")
		return
	}

	c.ident = info.FirstNode(dataIdentName)
	if c.ident == nil {
		c.ident = info.FirstNode(serviceIdentName)
		if c.ident != nil {
			c.sink.Log(fmt.Sprintf("Using %s", serviceIdentName))
		}
	}

	if c.ident == nil {
		c.sink.Warn(fmt.Sprintf("Could not find %s or %s", dataIdentName, serviceIdentName))
		return
	}

	c.citation = c.ident.FirstNode(pathCitation...)
}
