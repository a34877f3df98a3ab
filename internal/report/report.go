package report

import (
	"fmt"
	"io"
	"time"

	"wordcloud/internal/failure"
	"wordcloud/internal/fileutil"
	"wordcloud/internal/wordfreq"
)

// WriteCounts prints one "word:\tcount" line per entry, in order.
func WriteCounts(w io.Writer, words []wordfreq.WordCount) error {
	for _, wc := range words {
		if _, err := fmt.Fprintf(w, "%s:\t%d\n", wc.Word, wc.Count); err != nil {
			return failure.Wrap(failure.ErrIO, "report", "write counts", "", err)
		}
	}
	return nil
}

// WriteElapsed prints the elapsed time in whole milliseconds.
func WriteElapsed(w io.Writer, elapsed time.Duration) error {
	if _, err := fmt.Fprintf(w, "Milliseconds:%d\n", elapsed.Milliseconds()); err != nil {
		return failure.Wrap(failure.ErrIO, "report", "write elapsed", "", err)
	}
	return nil
}

// lockTimeout bounds how long SaveHTML waits for another writer of the same
// file.
var lockTimeout = 10 * time.Second

// SaveHTML writes the rendered cloud to path under an exclusive file lock.
func SaveHTML(path, html string) error {
	if err := fileutil.TryWriteLocked(path, []byte(html), 0o644, lockTimeout); err != nil {
		return failure.Wrap(failure.ErrIO, "report", "save html", path, err)
	}
	return nil
}
