// Package attrcodec carries an open list of named attributes through a single
// free-text field.
//
// The block grammar is:
//
//	Block := "Attributes description:" Entry+
//	Entry := " "? Name (":" " "? Value)? ";"
//
// Inside names and values a literal ':' is written "::" and a literal ';' is
// written ";;". Only the one blank before a name or a value is a separator,
// so leading whitespace inside either survives a round trip. Decode strips
// the block (and one newline before it) from the surrounding text and
// returns the unescaped attributes.
package attrcodec
