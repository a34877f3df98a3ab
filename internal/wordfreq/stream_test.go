package wordfreq_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"wordcloud/internal/wordfreq"
)

func TestCountStreamTokenRules(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []wordfreq.WordCount
	}{
		{
			name: "digit drops whole token",
			text: "abc123 def",
			want: []wordfreq.WordCount{{Word: "def", Count: 1}},
		},
		{
			name: "letters after digit stay dropped",
			text: "abc123def ghi",
			want: []wordfreq.WordCount{{Word: "ghi", Count: 1}},
		},
		{
			name: "leading digit",
			text: "3d 3D model",
			want: []wordfreq.WordCount{{Word: "model", Count: 1}},
		},
		{
			name: "apostrophes trimmed at both ends only",
			text: "It's the dog's 'bone' -- the END",
			want: []wordfreq.WordCount{
				{Word: "the", Count: 2},
				{Word: "bone", Count: 1},
				{Word: "dog's", Count: 1},
				{Word: "end", Count: 1},
				{Word: "it's", Count: 1},
			},
		},
		{
			name: "apostrophe only token ignored",
			text: "'' ' word",
			want: []wordfreq.WordCount{{Word: "word", Count: 1}},
		},
		{
			name: "end of input flushes pending token",
			text: "tail",
			want: []wordfreq.WordCount{{Word: "tail", Count: 1}},
		},
		{
			name: "non ascii letters",
			text: "Élan élan",
			want: []wordfreq.WordCount{{Word: "élan", Count: 2}},
		},
		{
			name: "empty input",
			text: "",
			want: []wordfreq.WordCount{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := wordfreq.CountStream(strings.NewReader(tc.text))
			if err != nil {
				t.Fatalf("CountStream failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("CountStream(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestCountStreamTotalMatchesValidTokens(t *testing.T) {
	text := "one two, two; three 3d three three. x1 ''"
	words, err := wordfreq.CountStream(strings.NewReader(text))
	if err != nil {
		t.Fatalf("CountStream failed: %v", err)
	}
	if total := wordfreq.Total(words); total != 6 {
		t.Fatalf("expected 6 valid tokens, got %d (%v)", total, words)
	}
	for _, wc := range words {
		if wc.Word == "" || strings.ContainsAny(wc.Word, "0123456789") {
			t.Fatalf("invalid word in table: %q", wc.Word)
		}
		if wc.Count < 1 {
			t.Fatalf("non-positive count for %q", wc.Word)
		}
	}
}

func TestCountStreamIsDeterministic(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. The dog sleeps."
	first, err := wordfreq.CountStream(strings.NewReader(text))
	if err != nil {
		t.Fatalf("CountStream failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := wordfreq.CountStream(strings.NewReader(text))
		if err != nil {
			t.Fatalf("CountStream failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestCountStreamSortOrder(t *testing.T) {
	text := "b a c a b a d d d d"
	words, err := wordfreq.CountStream(strings.NewReader(text))
	if err != nil {
		t.Fatalf("CountStream failed: %v", err)
	}
	for i := 1; i < len(words); i++ {
		prev, cur := words[i-1], words[i]
		if prev.Count < cur.Count || (prev.Count == cur.Count && prev.Word > cur.Word) {
			t.Fatalf("order violated at %d: %v before %v", i, prev, cur)
		}
	}
	if words[0].Word != "d" || words[1].Word != "a" {
		t.Fatalf("unexpected head of ranking: %v", words)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestCountStreamPropagatesReadErrors(t *testing.T) {
	words, err := wordfreq.CountStream(failingReader{})
	if err == nil {
		t.Fatal("expected read error")
	}
	if words != nil {
		t.Fatalf("expected no partial table, got %v", words)
	}
}

func TestCompare(t *testing.T) {
	a := wordfreq.WordCount{Word: "a", Count: 5}
	the := wordfreq.WordCount{Word: "the", Count: 5}
	dog := wordfreq.WordCount{Word: "dog", Count: 3}
	if wordfreq.Compare(a, the) >= 0 {
		t.Fatal("expected a before the on tied counts")
	}
	if wordfreq.Compare(dog, the) <= 0 {
		t.Fatal("expected higher count first")
	}
	if wordfreq.Compare(a, a) != 0 {
		t.Fatal("expected equal values to compare equal")
	}
}
