// Package wordfreq turns plain text into ranked word counts.
//
// Two tokenizers are provided. CountStream scans the text rune by rune,
// keeping letters and apostrophes, dropping any token that contains a digit,
// and trimming apostrophes from both ends. CountLines works a line at a time:
// each line is lowercased, non-word runes become spaces, digits are deleted,
// and the resulting tokens are filtered against a StopWords set before they
// are counted. Line mode counts empty tokens like any other word.
//
// Both return the finished counts as a slice of WordCount sorted by
// descending count and then by word. The map used while counting never leaves
// the package.
package wordfreq
