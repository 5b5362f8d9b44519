// Package diagnostic provides the message sink every conversion step reports
// through, plus collectors for inspecting what happened afterwards.
//
// Key capabilities:
//   - Sink interface (Log, Warn) accepted by every converter
//   - Diagnostics collector keeping an ordered, inspectable warning list
//   - zap-backed sink for structured logging
//   - Tee for fanning one conversion out to several sinks
//
// Converters never fail on missing or malformed fields. They substitute a
// default and report a warning, so callers that want to fail a pipeline on
// data quality issues inspect the collected warnings themselves.
package diagnostic
