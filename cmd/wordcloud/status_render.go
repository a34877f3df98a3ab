package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"wordcloud/internal/failure"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

const detailLabelWidth = 16

// renderOutcome labels a run outcome, colored when the destination is a TTY.
func renderOutcome(outcome string, colorize bool) string {
	if !colorize {
		return outcome
	}
	if color := outcomeColor(outcome); color != "" {
		return color + outcome + ansiReset
	}
	return outcome
}

func outcomeColor(outcome string) string {
	switch outcome {
	case failure.KindNone:
		return ansiGreen
	case failure.KindSelection, failure.KindValidation, failure.KindConfiguration:
		return ansiYellow
	case failure.KindIO, failure.KindInternal:
		return ansiRed
	default:
		return ""
	}
}

func renderDetailLine(label, value string) string {
	return fmt.Sprintf("%-*s %s", detailLabelWidth, label+":", value)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
