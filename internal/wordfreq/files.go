package wordfreq

import (
	"os"

	"wordcloud/internal/failure"
)

const stageTokenize = "tokenize"

// CountFile opens path and counts it with CountStream. Open and read errors
// are tagged with failure.ErrIO.
func CountFile(path string) ([]WordCount, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageTokenize, "open source", path, err)
	}
	defer file.Close()

	words, err := CountStream(file)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageTokenize, "read source", path, err)
	}
	return words, nil
}

// CountFileWithStopWords opens both files and counts path with CountLines.
// Both files are opened before either is read so a missing stop-word list
// fails the run without scanning the text.
func CountFileWithStopWords(path, stopWordsPath string) ([]WordCount, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageTokenize, "open source", path, err)
	}
	defer file.Close()

	stopFile, err := os.Open(stopWordsPath)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageTokenize, "open stop words", stopWordsPath, err)
	}
	defer stopFile.Close()

	tokens, err := Tokens(file)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageTokenize, "read source", path, err)
	}
	stop, err := LoadStopWords(stopFile)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageTokenize, "read stop words", stopWordsPath, err)
	}
	return countTokens(FilterStopWords(tokens, stop)), nil
}
