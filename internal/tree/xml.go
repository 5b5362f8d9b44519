package tree

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// ParseXML parses an XML document into a tree. The returned node is a
// document node holding the root element as its only child. Namespace
// prefixes are stripped from element names; attribute names keep theirs.
func ParseXML(text string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("failed to parse XML: no root element")
	}

	return NewNode().Add(root.Tag, fromElement(root)), nil
}

func fromElement(el *etree.Element) Item {
	children := el.ChildElements()
	text := strings.TrimSpace(el.Text())

	if len(el.Attr) == 0 && len(children) == 0 {
		return Leaf(text)
	}

	node := &Node{Value: text}

	for _, a := range el.Attr {
		node.SetAttr(a.FullKey(), a.Value)
	}

	for _, child := range children {
		node.Add(child.Tag, fromElement(child))
	}

	return node
}

// WriteXML serialises a document node (as returned by ParseXML or built by
// the reverse mapper) into indented XML text with an XML declaration.
// Attributes are written in name order so equal trees yield equal text.
func WriteXML(doc *Node, indent int) (string, error) {
	if doc == nil || len(doc.names) == 0 {
		return "", errors.New("failed to write XML: empty document")
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	doc.Each(func(name string, items []Item) {
		for _, it := range items {
			toElement(&out.Element, name, it)
		}
	})

	if indent > 0 {
		out.Indent(indent)
	}

	text, err := out.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to write XML: %w", err)
	}

	return text, nil
}

func toElement(parent *etree.Element, name string, it Item) {
	el := parent.CreateElement(name)

	switch v := it.(type) {
	case Leaf:
		el.SetText(string(v))
	case *Node:
		if v == nil {
			return
		}

		keys := make([]string, 0, len(v.Attrs))
		for k := range v.Attrs {
			keys = append(keys, k)
		}

		slices.Sort(keys)

		for _, k := range keys {
			el.CreateAttr(k, v.Attrs[k])
		}

		if v.Value != "" {
			el.SetText(v.Value)
		}

		v.Each(func(childName string, items []Item) {
			for _, child := range items {
				toElement(el, childName, child)
			}
		})
	}
}
