package wordfreq

import "io"

// StopWords is a read-only set of words excluded from line-mode counts.
// Membership is exact string equality.
type StopWords map[string]struct{}

// LoadStopWords reads one stop-word per line. Lines are kept as read, so a
// blank line adds the empty string to the set.
func LoadStopWords(r io.Reader) (StopWords, error) {
	set := make(StopWords)
	err := eachLine(r, func(line string) {
		set[line] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Contains reports whether word is a stop-word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// FilterStopWords returns the tokens that are not stop-words, in order. The
// input slice is left untouched.
func FilterStopWords(tokens []string, stop StopWords) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if stop.Contains(token) {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}
