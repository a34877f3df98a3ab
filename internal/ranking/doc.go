// Package ranking selects the most frequent words from a sorted word list.
//
// Select returns the first n entries plus every entry tied in count with the
// n-th one, so callers must be ready for more than n results. With
// Options.DiscardLeading the first sorted entry is dropped before selection;
// line-mode counting tends to rank the empty token first. The option applies
// in every mode, so a character-stream run loses its top word as well.
package ranking
