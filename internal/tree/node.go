package tree

// Item is a child of a Node: either *Node or Leaf.
type Item interface {
	isItem()
}

// Leaf is an element carrying only text.
type Leaf string

func (Leaf) isItem() {}

// Node is an element with attributes and/or child elements.
type Node struct {
	// Attrs holds element attributes keyed by (possibly prefixed) name.
	Attrs map[string]string
	// Value is the character data of an element that also has attributes or children.
	Value string

	names    []string
	children map[string][]Item
}

func (*Node) isItem() {}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{}
}

// Add appends items under name, keeping first-insertion order of names.
func (n *Node) Add(name string, items ...Item) *Node {
	if n.children == nil {
		n.children = make(map[string][]Item)
	}

	if _, ok := n.children[name]; !ok {
		n.names = append(n.names, name)
	}

	n.children[name] = append(n.children[name], items...)

	return n
}

// AddNode appends a fresh child node under name and returns the child.
func (n *Node) AddNode(name string) *Node {
	child := NewNode()
	n.Add(name, child)

	return child
}

// AddText appends a leaf under name.
func (n *Node) AddText(name, text string) *Node {
	return n.Add(name, Leaf(text))
}

// SetAttr sets an attribute and returns n.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}

	n.Attrs[key] = value

	return n
}

// Attr returns the attribute value or "" when absent or when n is nil.
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}

	return n.Attrs[key]
}

// Names returns the child tag names in first-insertion order.
func (n *Node) Names() []string {
	if n == nil {
		return nil
	}

	return append([]string(nil), n.names...)
}

// Children returns the children stored under name.
func (n *Node) Children(name string) []Item {
	if n == nil {
		return nil
	}

	return n.children[name]
}

// Has reports whether at least one child is stored under name.
func (n *Node) Has(name string) bool {
	return len(n.Children(name)) > 0
}

// Each calls fn for every child name in order.
func (n *Node) Each(fn func(name string, items []Item)) {
	if n == nil {
		return
	}

	for _, name := range n.names {
		fn(name, n.children[name])
	}
}

// NodeOf returns it as a *Node, or nil when it is a Leaf or nil.
func NodeOf(it Item) *Node {
	node, _ := it.(*Node)

	return node
}

// TextOf returns the text carried by it: the leaf value or the node text.
func TextOf(it Item) string {
	switch v := it.(type) {
	case Leaf:
		return string(v)
	case *Node:
		if v == nil {
			return ""
		}

		return v.Value
	default:
		return ""
	}
}
