// Package failure defines the error markers shared by the wordcloud pipeline.
//
// Stage code wraps underlying causes with one of the exported sentinels so the
// CLI and the run history can classify a failure without string matching. An
// I/O problem reading the source text or the stop-word list is ErrIO; an
// invalid top-N request is ErrSelection.
package failure
