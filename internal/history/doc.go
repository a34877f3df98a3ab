// Package history records analysis runs in SQLite.
//
// Each row describes one invocation of the analyzer: which file was read, the
// tokenizer mode, how many words were requested and returned, the elapsed
// time, and how the run ended. Per-word counts are deliberately absent; the
// table is an audit trail, not a cache.
//
// Schema changes bump schemaVersion in schema.go; users delete the database
// (or run `wordcloud history clear`) to adopt a new schema.
package history
