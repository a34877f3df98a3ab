package ranking

import (
	"fmt"

	"wordcloud/internal/failure"
	"wordcloud/internal/wordfreq"
)

// Options tunes Select.
type Options struct {
	// DiscardLeading drops the first entry of the sorted list before the
	// cutoff is computed.
	DiscardLeading bool
}

// SelectionError reports a top-N request that cannot be satisfied. It matches
// failure.ErrSelection with errors.Is.
type SelectionError struct {
	Requested int
	Available int
}

func (e *SelectionError) Error() string {
	if e.Requested <= 0 {
		return fmt.Sprintf("selection error: top-n must be positive, got %d", e.Requested)
	}
	return fmt.Sprintf("selection error: requested %d words but only %d are available", e.Requested, e.Available)
}

// Unwrap exposes the shared selection marker.
func (e *SelectionError) Unwrap() error {
	return failure.ErrSelection
}

// OutOfRange reports whether the request failed only because n exceeded the
// available words.
func (e *SelectionError) OutOfRange() bool {
	return e.Requested > 0 && e.Requested > e.Available
}

// Select returns the top n entries of sorted, which must already be ordered by
// wordfreq.Compare, extended by every entry tied in count with the last one
// kept. The result is a new slice.
//
// n <= 0 and n larger than the number of available entries both fail with a
// *SelectionError. An empty list yields an empty result for any positive n.
func Select(sorted []wordfreq.WordCount, n int, opts Options) ([]wordfreq.WordCount, error) {
	list := sorted
	if opts.DiscardLeading && len(list) > 0 {
		list = list[1:]
	}
	if n <= 0 {
		return nil, &SelectionError{Requested: n, Available: len(list)}
	}
	if len(list) == 0 {
		return []wordfreq.WordCount{}, nil
	}
	if n > len(list) {
		return nil, &SelectionError{Requested: n, Available: len(list)}
	}

	cut := n
	for cut < len(list) && list[cut].Count == list[cut-1].Count {
		cut++
	}
	out := make([]wordfreq.WordCount, cut)
	copy(out, list[:cut])
	return out, nil
}

// Available returns how many entries Select can draw from under opts.
func Available(sorted []wordfreq.WordCount, opts Options) int {
	if opts.DiscardLeading && len(sorted) > 0 {
		return len(sorted) - 1
	}
	return len(sorted)
}
