// Package analysis runs one word-frequency pass over a document: it picks the
// tokenizer, counts, ranks the top words, and reports timing and totals.
//
// Rendering and output are left to callers so the same Result can feed the
// plain listing, a table, JSON, or the HTML cloud.
package analysis
