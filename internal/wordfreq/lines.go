package wordfreq

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nonWordPattern matches a single rune outside [A-Za-z0-9_].
var nonWordPattern = regexp.MustCompile(`[^\w]`)

// CleanLine lowercases line, replaces each non-word rune and each underscore
// with a space, and deletes ASCII digits. Runs of delimiters are not
// collapsed.
func CleanLine(line string) string {
	return cleanLine(cases.Lower(language.Und), line)
}

func cleanLine(caser cases.Caser, line string) string {
	line = caser.String(line)
	line = nonWordPattern.ReplaceAllLiteralString(line, " ")
	line = strings.ReplaceAll(line, "_", " ")
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, line)
}

// SplitLine splits a cleaned line on single spaces. Trailing empty tokens are
// dropped, interior and leading ones are kept. A line without any space is
// returned as the only token, even when it is empty.
func SplitLine(line string) []string {
	parts := strings.Split(line, " ")
	if len(parts) == 1 {
		return parts
	}
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}

// Tokens reads r line by line and returns every candidate token in document
// order.
func Tokens(r io.Reader) ([]string, error) {
	caser := cases.Lower(language.Und)
	var tokens []string
	err := eachLine(r, func(line string) {
		tokens = append(tokens, SplitLine(cleanLine(caser, line))...)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// CountLines tokenizes text line by line, removes every token found in the
// stop-word list read from stopWords, and counts what survives. Both readers
// are consumed fully before counting starts.
func CountLines(text, stopWords io.Reader) ([]WordCount, error) {
	tokens, err := Tokens(text)
	if err != nil {
		return nil, err
	}
	stop, err := LoadStopWords(stopWords)
	if err != nil {
		return nil, err
	}
	return countTokens(FilterStopWords(tokens, stop)), nil
}

func countTokens(tokens []string) []WordCount {
	table := newCounter()
	for _, token := range tokens {
		table.add(token)
	}
	return table.snapshot()
}

// eachLine calls fn with every line of r, without its "\n" or "\r\n"
// terminator. Line length is unbounded. A final line without a terminator is
// still delivered; an empty reader delivers nothing.
func eachLine(r io.Reader, fn func(line string)) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fn(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
