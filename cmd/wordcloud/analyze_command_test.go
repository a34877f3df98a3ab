package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordcloud/internal/failure"
	"wordcloud/internal/testsupport"
)

const sampleText = "the cat and the hat and the bat\n"

func TestAnalyzePlainOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	src := env.writeFile(t, "text.txt", sampleText)

	out, errOut, err := runCLI(t, []string{"analyze", src, "-n", "2", "--keep-leading", "--seed", "7"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, errOut, "Milliseconds:")
	if !strings.HasPrefix(out, "the:\t3\nand:\t2\n") {
		t.Fatalf("unexpected count lines: %q", out)
	}
	requireContains(t, out, "<!DOCTYPE html><html><body><div>")
	requireContains(t, out, `font-size: 30px">the</span>`)
	requireContains(t, out, `font-size: 20px">and</span>`)
	requireContains(t, out, "</div></body></html> \n")
	requireNotContains(t, out, "Milliseconds")
}

func TestAnalyzeDiscardsLeadingByDefault(t *testing.T) {
	env := setupCLITestEnv(t)
	src := env.writeFile(t, "text.txt", sampleText)

	out, _, err := runCLI(t, []string{"analyze", src, "-n", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.HasPrefix(out, "and:\t2\n<!DOCTYPE") {
		t.Fatalf("expected leading word discarded, got %q", out)
	}
}

func TestAnalyzeStopWordsToFile(t *testing.T) {
	env := setupCLITestEnv(t)
	src := env.writeFile(t, "text.txt", "The cat, the dog.\nthe the cat\n")
	stop := env.writeFile(t, "stop.txt", "the\n")
	target := filepath.Join(env.baseDir, "out", "cloud.html")

	args := []string{"analyze", src, "-s", stop, "-n", "1", "--keep-leading", "-o", target, "--seed", "42"}
	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	// "cat, the" leaves an empty token between the comma and the space.
	if out != "cat:\t2\n" {
		t.Fatalf("unexpected stdout %q", out)
	}
	first, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read cloud: %v", err)
	}
	requireContains(t, string(first), `>cat</span>`)

	if _, _, err := runCLI(t, args, env.configPath); err != nil {
		t.Fatalf("second analyze: %v", err)
	}
	second, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read cloud: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("expected identical clouds for the same seed")
	}
}

func TestAnalyzeJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	src := env.writeFile(t, "text.txt", sampleText)

	out, errOut, err := runCLI(t, []string{"analyze", src, "--format", "json", "-n", "50", "--keep-leading"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var payload analyzeJSON
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if !payload.Clamped || payload.Returned != 5 || payload.Requested != 50 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Mode != "stream" || payload.TotalTokens != 8 || payload.RunID == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Words[0].Word != "the" || payload.Words[0].Count != 3 {
		t.Fatalf("unexpected first word: %+v", payload.Words[0])
	}
	requireContains(t, errOut, "top-n exceeds available words")
}

func TestAnalyzeTableOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	src := env.writeFile(t, "text.txt", sampleText)

	out, _, err := runCLI(t, []string{"analyze", src, "--format", "table", "-n", "2", "--keep-leading"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, strings.ToUpper(out), "WORD")
	requireContains(t, out, "the")
	requireContains(t, out, "Distinct words:")
	requireNotContains(t, out, "<!DOCTYPE")
}

func TestAnalyzeStrictSelectionError(t *testing.T) {
	env := setupCLITestEnv(t)
	src := env.writeFile(t, "text.txt", sampleText)

	_, _, err := runCLI(t, []string{"analyze", src, "-n", "99", "--strict"}, env.configPath)
	if !errors.Is(err, failure.ErrSelection) {
		t.Fatalf("expected selection error, got %v", err)
	}
	if exitCode(err) != 3 {
		t.Fatalf("exit code = %d, want 3", exitCode(err))
	}
}

func TestAnalyzeMissingSource(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"analyze", filepath.Join(env.baseDir, "absent.txt")}, env.configPath)
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if exitCode(err) != 4 {
		t.Fatalf("exit code = %d, want 4", exitCode(err))
	}
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	src := env.writeFile(t, "text.txt", sampleText)

	_, _, err := runCLI(t, []string{"analyze", src, "--format", "xml"}, env.configPath)
	if !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAnalyzeUsesConfiguredStopWords(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStopWords("the", ""), testsupport.WithTopN(1))
	src := env.writeFile(t, "text.txt", "the cat the dog\n")

	out, _, err := runCLI(t, []string{"analyze", src, "--keep-leading"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.HasPrefix(out, "cat:\t1\ndog:\t1\n") {
		t.Fatalf("unexpected output %q", out)
	}
}
