// Package report writes analysis results for humans: the tab-separated count
// listing, the elapsed-time line, and the rendered HTML cloud on disk.
package report
