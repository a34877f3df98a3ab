package testsupport

import (
	"path/filepath"
	"testing"

	"wordcloud/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Cloud.Seed = 1

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithStopWords writes a stop-word list under the config's temp directory and
// points analysis.stop_words at it.
func WithStopWords(words ...string) ConfigOption {
	return func(b *configBuilder) {
		content := ""
		for _, w := range words {
			content += w + "\n"
		}
		b.cfg.Analysis.StopWords = WriteText(b.t, filepath.Join(b.baseDir, "stopwords.txt"), content)
	}
}

// WithHistory enables run history in the config's data directory.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
	}
}

// WithTopN overrides analysis.top_n.
func WithTopN(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Analysis.TopN = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
