// Package logtail reads the tail of foodwagen's JSON log file for the
// in-app activity view.
//
// Read keeps a ring buffer of the last N lines so large files are never held
// in memory. Parse decodes the zap JSON encoding (ts, level, logger, msg plus
// arbitrary fields) into an Entry, and Entry.Format flattens it to one
// display line. Lines that are not JSON pass through unchanged.
package logtail
