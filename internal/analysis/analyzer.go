package analysis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"wordcloud/internal/failure"
	"wordcloud/internal/logging"
	"wordcloud/internal/ranking"
	"wordcloud/internal/wordfreq"
)

const stageAnalyze = "analyze"

// Request describes one analysis run.
type Request struct {
	SourcePath    string
	StopWordsPath string
	TopN          int
	Ranking       ranking.Options
	// Strict turns an over-large TopN into an error instead of clamping it.
	Strict bool
}

// Result is the outcome of a successful run.
type Result struct {
	RunID       string
	StartedAt   time.Time
	Mode        wordfreq.Mode
	Words       []wordfreq.WordCount
	Requested   int
	Distinct    int
	TotalTokens int
	SourceBytes int64
	Elapsed     time.Duration
	// Clamped is set when TopN exceeded the available words and the
	// selection fell back to all of them.
	Clamped bool
}

// Analyzer executes analysis requests.
type Analyzer struct {
	logger *slog.Logger
	now    func() time.Time
}

// New constructs an Analyzer. A nil logger discards output.
func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Analyzer{
		logger: logging.NewComponentLogger(logger, "analysis"),
		now:    time.Now,
	}
}

// Run counts and ranks req.SourcePath. Elapsed covers loading, counting, and
// ranking. The run id comes from ctx when set with logging.WithRunID.
func (a *Analyzer) Run(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.SourcePath) == "" {
		return nil, failure.Wrap(failure.ErrValidation, stageAnalyze, "validate request", "source path is required", nil)
	}

	runID, ok := logging.RunIDFromContext(ctx)
	if !ok {
		runID = uuid.NewString()
		ctx = logging.WithRunID(ctx, runID)
	}
	logger := logging.WithContext(ctx, a.logger).With(
		logging.String(logging.FieldStage, stageAnalyze),
		logging.String(logging.FieldSource, req.SourcePath),
	)

	result := &Result{
		RunID:     runID,
		StartedAt: a.now(),
		Mode:      wordfreq.ModeStream,
		Requested: req.TopN,
	}
	if req.StopWordsPath != "" {
		result.Mode = wordfreq.ModeLines
	}

	info, err := os.Stat(req.SourcePath)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageAnalyze, "stat source", req.SourcePath, err)
	}
	result.SourceBytes = info.Size()

	start := a.now()
	var counts []wordfreq.WordCount
	if result.Mode == wordfreq.ModeLines {
		counts, err = wordfreq.CountFileWithStopWords(req.SourcePath, req.StopWordsPath)
	} else {
		counts, err = wordfreq.CountFile(req.SourcePath)
	}
	if err != nil {
		return nil, err
	}
	result.Distinct = len(counts)
	result.TotalTokens = wordfreq.Total(counts)

	words, err := ranking.Select(counts, req.TopN, req.Ranking)
	if err != nil {
		var selErr *ranking.SelectionError
		if req.Strict || !errors.As(err, &selErr) || !selErr.OutOfRange() {
			return nil, err
		}
		logger.Warn("top-n exceeds available words; returning all",
			logging.Int("requested", selErr.Requested),
			logging.Int("available", selErr.Available),
		)
		words, err = ranking.Select(counts, selErr.Available, req.Ranking)
		if err != nil {
			return nil, err
		}
		result.Clamped = true
	}
	result.Words = words
	result.Elapsed = a.now().Sub(start)

	logger.Debug("analysis complete",
		logging.String(logging.FieldMode, string(result.Mode)),
		logging.Int64("source_bytes", result.SourceBytes),
		logging.Int("distinct_words", result.Distinct),
		logging.Int("total_tokens", result.TotalTokens),
		logging.Int("returned", len(result.Words)),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
