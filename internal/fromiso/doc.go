// Package fromiso builds MapX documents from ISO19139 metadata.
//
// The input is a tag tree as produced by tree.ParseXML, with namespace
// prefixes stripped. The converter never fails on field level problems:
// a missing or unexpected value leaves the MapX default in place and is
// reported through the diagnostic sink. Only an unparseable document or a
// missing MD_Metadata root make Convert return nil.
//
// Notable heuristics:
//
//   - the release date falls back to the creation date, then to the
//     metadata timestamp, unless the candidate is later than the revision date
//   - EPSG codes are pulled out of free text reference system identifiers
//   - constraint texts written by the reverse mapper are recognised and split
//     back into name and text instead of being labelled a second time
package fromiso
