package tree

// First follows the first child at each step of path.
// It returns nil when any step is missing or a leaf is met before the end.
func (n *Node) First(path ...string) Item {
	if n == nil {
		return nil
	}

	var cur Item = n

	for _, step := range path {
		node := NodeOf(cur)
		if node == nil {
			return nil
		}

		items := node.children[step]
		if len(items) == 0 {
			return nil
		}

		cur = items[0]
	}

	return cur
}

// All follows the first child down to the parent of the last step and
// returns every child stored under the last step.
func (n *Node) All(path ...string) []Item {
	if len(path) == 0 {
		return nil
	}

	parent := NodeOf(n.First(path[:len(path)-1]...))

	return parent.Children(path[len(path)-1])
}

// Find searches depth-first through every matching child at each step and
// returns the first child found under the last step.
func (n *Node) Find(path ...string) Item {
	if n == nil || len(path) == 0 {
		return nil
	}

	items := n.children[path[0]]
	if len(items) == 0 {
		return nil
	}

	if len(path) == 1 {
		return items[0]
	}

	for _, it := range items {
		if found := NodeOf(it).Find(path[1:]...); found != nil {
			return found
		}
	}

	return nil
}

// FirstNode is First restricted to nodes.
func (n *Node) FirstNode(path ...string) *Node {
	return NodeOf(n.First(path...))
}

// FindNode is Find restricted to nodes.
func (n *Node) FindNode(path ...string) *Node {
	return NodeOf(n.Find(path...))
}

// Nodes returns the node children matched by All, skipping leaves.
func (n *Node) Nodes(path ...string) []*Node {
	var out []*Node

	for _, it := range n.All(path...) {
		if node := NodeOf(it); node != nil {
			out = append(out, node)
		}
	}

	return out
}

// Text returns the text of the item found by First, or "".
func (n *Node) Text(path ...string) string {
	return TextOf(n.First(path...))
}

// Texts returns the text of every item matched by All, skipping empty ones.
func (n *Node) Texts(path ...string) []string {
	var out []string

	for _, it := range n.All(path...) {
		if s := TextOf(it); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// AttrAt returns the attribute of the node found by First, or "".
func (n *Node) AttrAt(attr string, path ...string) string {
	return n.FirstNode(path...).Attr(attr)
}
