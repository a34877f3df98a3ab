package wordfreq

import (
	"cmp"
	"slices"
	"strings"
)

// WordCount pairs a normalized word with the number of times it occurred.
// Values are built once counting is finished and are passed by value.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Compare orders word counts from most to least frequent, breaking ties by
// ascending word.
func Compare(a, b WordCount) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Word, b.Word)
}

// Total sums the counts in words.
func Total(words []WordCount) int {
	total := 0
	for _, wc := range words {
		total += wc.Count
	}
	return total
}

// Mode identifies the tokenizer that produced a set of counts.
type Mode string

const (
	// ModeStream is the rune-by-rune tokenizer used without a stop-word list.
	ModeStream Mode = "stream"
	// ModeLines is the line-based tokenizer with stop-word filtering.
	ModeLines Mode = "lines"
)

type counter struct {
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(word string) {
	c.counts[word]++
}

// snapshot converts the table into a sorted slice. The counter must not be
// used afterwards.
func (c *counter) snapshot() []WordCount {
	words := make([]WordCount, 0, len(c.counts))
	for word, count := range c.counts {
		words = append(words, WordCount{Word: word, Count: count})
	}
	slices.SortFunc(words, Compare)
	c.counts = nil
	return words
}
