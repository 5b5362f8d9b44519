// Package tree provides the generic tag tree both mappers work on.
//
// A Node maps tag names to ordered lists of children; each child is either
// another *Node or a Leaf holding element text. Element attributes (such as
// codeListValue) live in Node.Attrs. Namespace prefixes are stripped when a
// document is parsed, and written verbatim ("gmd:title") when a tree is built
// for serialisation.
//
// # Queries
//
// The query helpers mirror how metadata documents are usually read:
//
//   - First follows the first matching child at every step
//   - All follows first children down to the last step and returns every match there
//   - Find searches depth-first through every matching child at each step
//
// All helpers are nil-safe: querying a nil *Node returns nothing.
package tree
