// Package mapx provides the canonical MapX metadata document, its schema
// and the repair routine that turns partial or malformed input into a
// document every getter can trust.
//
// # Lifecycle
//
// A MapX is created empty (New) or from untrusted data (FromJSON, FromMap).
// Either way the data goes through schema repair first: every field the
// schema declares is created with its default when absent, and fields of the
// wrong JSON kind are replaced. Only the first omission along a branch is
// warned; descendants of a freshly defaulted field are silently defaulted.
// After repair the attribute dictionaries get every MapX language filled in.
//
// Once built, a MapX is mutated only through its setters, which reject
// unknown languages, topics, periodicities and unparseable dates.
//
// # Dates
//
// Dates are ISO date strings. DateDefault ("0001-01-01") means "not set"
// and is never replaced by an empty string or null.
package mapx
