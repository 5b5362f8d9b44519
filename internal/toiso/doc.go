// Package toiso renders a MapX document as an ISO19139 tag tree.
//
// ISO text fields are monolingual: titles, abstracts and notes are always
// taken from the English MapX values, with mapx.MissingContent written in
// place of an absent mandatory text. Every other MapX section maps onto
// its ISO counterpart; nothing makes the conversion fail.
//
// Element names carry their namespace prefix (gmd, gco or gml) so the tree
// can be written with tree.WriteXML as is.
package toiso
