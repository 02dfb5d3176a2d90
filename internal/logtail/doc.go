// Package logtail reads the tail of the tutor log file for the diagnostics
// overlay.
//
// Read keeps a ring buffer of maxLines entries and scans the file once, so
// memory stays O(maxLines) regardless of file size. Lines come back oldest
// first. A missing file returns nil, nil; other I/O errors are wrapped.
//
// The log is written by log/slog's text handler, so every record carries a
// "level=" field. Level extracts it and Filter drops records below a minimum
// level. Lines without a level (panics, stray writes) are always kept.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//	lines = logtail.Filter(lines, "info")
package logtail
