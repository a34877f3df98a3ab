package cloud

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"wordcloud/internal/wordfreq"
)

// DefaultFontScale converts a word count into pixels.
const DefaultFontScale = 10

// Orientations lists the CSS writing modes a word may be drawn with.
var Orientations = []string{"horizontal-tb", "vertical-rl"}

// Palette lists the RGB hex colors a word may be drawn with.
var Palette = []string{"000000", "FF0000", "00FF00", "0000FF", "FFFF00", "00FFFF", "FF00FF", "C0C0C0"}

const (
	documentOpen  = "<!DOCTYPE html><html><body><div>"
	documentClose = "</div></body></html> "
)

// Renderer produces tag cloud markup.
type Renderer struct {
	rng       *rand.Rand
	fontScale int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFontScale sets the pixels per occurrence. Non-positive values keep the
// default.
func WithFontScale(scale int) Option {
	return func(r *Renderer) {
		if scale > 0 {
			r.fontScale = scale
		}
	}
}

// NewRenderer returns a Renderer drawing from rng. A nil rng is replaced by
// a randomly seeded source.
func NewRenderer(rng *rand.Rand, opts ...Option) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &Renderer{rng: rng, fontScale: DefaultFontScale}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewSeededRand returns a deterministic source for seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Render shuffles words and returns the HTML document. The input slice is not
// modified.
func (r *Renderer) Render(words []wordfreq.WordCount) string {
	shuffled := Shuffle(words, r.rng)

	var b strings.Builder
	b.Grow(len(documentOpen) + len(documentClose) + len(shuffled)*160)
	b.WriteString(documentOpen)
	for i, wc := range shuffled {
		orientation := Orientations[r.rng.IntN(len(Orientations))]
		color := Palette[r.rng.IntN(len(Palette))]
		class := "div" + strconv.Itoa(i)

		b.WriteString("<style> span.")
		b.WriteString(class)
		b.WriteString(" { writing-mode: ")
		b.WriteString(orientation)
		b.WriteString("; } </style>")

		b.WriteString(`<span class="`)
		b.WriteString(class)
		b.WriteString(`" style="color:#`)
		b.WriteString(color)
		b.WriteString(";font-size: ")
		b.WriteString(strconv.Itoa(FontSize(wc.Count, r.fontScale)))
		b.WriteString(`px">`)
		b.WriteString(wc.Word)
		b.WriteString("</span>  ")
	}
	b.WriteString(documentClose)
	return b.String()
}

// FontSize returns the pixel size for count.
func FontSize(count, scale int) int {
	return count * scale
}

// Shuffle returns a uniformly random permutation of words as a new slice.
func Shuffle(words []wordfreq.WordCount, rng *rand.Rand) []wordfreq.WordCount {
	out := make([]wordfreq.WordCount, len(words))
	copy(out, words)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
