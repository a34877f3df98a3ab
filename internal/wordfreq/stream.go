package wordfreq

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CountStream tokenizes r one rune at a time.
//
// Letters and apostrophes accumulate into the pending token. A digit discards
// the pending token and everything up to the next terminator. Any other rune,
// and the end of input, terminates the token: apostrophes are trimmed from both
// ends and a non-empty remainder is lowercased and counted.
func CountStream(r io.Reader) ([]WordCount, error) {
	reader := bufio.NewReader(r)
	caser := cases.Lower(language.Und)
	table := newCounter()

	var pending []rune
	poisoned := false
	flush := func() {
		if !poisoned {
			if word := strings.Trim(string(pending), "'"); word != "" {
				table.add(caser.String(word))
			}
		}
		pending = pending[:0]
		poisoned = false
	}

	for {
		ch, _, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			flush()
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case unicode.IsLetter(ch) || ch == '\'':
			if !poisoned {
				pending = append(pending, ch)
			}
		case unicode.IsDigit(ch):
			pending = pending[:0]
			poisoned = true
		default:
			flush()
		}
	}
	return table.snapshot(), nil
}
