package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordcloud/internal/analysis"
	"wordcloud/internal/cloud"
	"wordcloud/internal/config"
	"wordcloud/internal/failure"
	"wordcloud/internal/history"
	"wordcloud/internal/logging"
	"wordcloud/internal/ranking"
	"wordcloud/internal/report"
	"wordcloud/internal/wordfreq"
)

const (
	formatPlain = "plain"
	formatTable = "table"
	formatJSON  = "json"
)

type analyzeOptions struct {
	stopWords   string
	topN        int
	output      string
	format      string
	seed        uint64
	keepLeading bool
	strict      bool
	noHistory   bool
}

type analyzeJSON struct {
	RunID         string               `json:"run_id"`
	Source        string               `json:"source"`
	StopWords     string               `json:"stop_words,omitempty"`
	Mode          wordfreq.Mode        `json:"mode"`
	Requested     int                  `json:"requested"`
	Returned      int                  `json:"returned"`
	Clamped       bool                 `json:"clamped"`
	DistinctWords int                  `json:"distinct_words"`
	TotalTokens   int                  `json:"total_tokens"`
	SourceBytes   int64                `json:"source_bytes"`
	ElapsedMS     int64                `json:"elapsed_ms"`
	Output        string               `json:"output,omitempty"`
	Words         []wordfreq.WordCount `json:"words"`
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze <text-file>",
		Short: "Count word frequencies and render the top words as an HTML cloud",
		Long: `Count word frequencies in a text file, print the top words as
"word:<TAB>count" lines, and emit an HTML tag cloud.

Without a stop-word list the file is read rune by rune and tokens containing
digits are dropped. With --stop-words the file is cleaned line by line and
every listed word is removed before counting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			req, err := resolveAnalyzeRequest(cmd, cfg, &opts, args[0])
			if err != nil {
				return err
			}
			logger, closeLog, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			defer closeLog()
			return runAnalyze(cmd, cfg, logger, req)
		},
	}

	cmd.Flags().StringVarP(&opts.stopWords, "stop-words", "s", "", "Stop-word list, one word per line (enables line mode)")
	cmd.Flags().IntVarP(&opts.topN, "top", "n", 0, "Number of top words to keep (ties at the cutoff are kept too)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the HTML cloud to this file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", formatPlain, "Output format: plain, table, or json")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed for the cloud layout (0 picks one at random)")
	cmd.Flags().BoolVar(&opts.keepLeading, "keep-leading", false, "Keep the top-ranked word instead of discarding it")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when --top exceeds the number of distinct words")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record this run in history")
	return cmd
}

type analyzeRequest struct {
	analysis.Request
	format    string
	output    string
	seed      uint64
	fontScale int
	record    bool
}

// resolveAnalyzeRequest layers explicitly set flags over configuration.
func resolveAnalyzeRequest(cmd *cobra.Command, cfg *config.Config, opts *analyzeOptions, source string) (analyzeRequest, error) {
	flags := cmd.Flags()
	req := analyzeRequest{
		Request: analysis.Request{
			SourcePath:    source,
			StopWordsPath: cfg.Analysis.StopWords,
			TopN:          cfg.Analysis.TopN,
			Ranking:       ranking.Options{DiscardLeading: cfg.Ranking.DiscardLeading},
			Strict:        cfg.Ranking.Strict,
		},
		format:    strings.ToLower(strings.TrimSpace(opts.format)),
		output:    cfg.Cloud.Output,
		seed:      cfg.Cloud.Seed,
		fontScale: cfg.Cloud.FontScale,
		record:    cfg.History.Enabled && !opts.noHistory,
	}

	switch req.format {
	case formatPlain, formatTable, formatJSON:
	default:
		return req, failure.Wrap(failure.ErrValidation, "analyze", "parse flags",
			fmt.Sprintf("unsupported format %q (want plain, table, or json)", opts.format), nil)
	}

	var err error
	if req.SourcePath, err = config.ExpandPath(source); err != nil {
		return req, failure.Wrap(failure.ErrValidation, "analyze", "resolve source", source, err)
	}
	if flags.Changed("stop-words") {
		if req.StopWordsPath, err = config.ExpandPath(strings.TrimSpace(opts.stopWords)); err != nil {
			return req, failure.Wrap(failure.ErrValidation, "analyze", "resolve stop words", opts.stopWords, err)
		}
	}
	if flags.Changed("output") {
		if req.output, err = config.ExpandPath(strings.TrimSpace(opts.output)); err != nil {
			return req, failure.Wrap(failure.ErrValidation, "analyze", "resolve output", opts.output, err)
		}
	}
	if flags.Changed("top") {
		req.TopN = opts.topN
	}
	if flags.Changed("seed") {
		req.seed = opts.seed
	}
	if flags.Changed("keep-leading") {
		req.Ranking.DiscardLeading = !opts.keepLeading
	}
	if flags.Changed("strict") {
		req.Strict = opts.strict
	}
	return req, nil
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, req analyzeRequest) error {
	runID := uuid.NewString()
	runCtx := logging.WithRunID(cmd.Context(), runID)
	started := time.Now()

	result, err := analysis.New(logger).Run(runCtx, req.Request)
	if err != nil {
		recordRun(runCtx, cfg, logger, req, started, nil, err)
		return err
	}

	var rng *rand.Rand
	if req.seed != 0 {
		rng = cloud.NewSeededRand(req.seed)
	}
	html := cloud.NewRenderer(rng, cloud.WithFontScale(req.fontScale)).Render(result.Words)

	if err := writeAnalyzeOutput(cmd, req, result, html); err != nil {
		recordRun(runCtx, cfg, logger, req, started, result, err)
		return err
	}
	recordRun(runCtx, cfg, logger, req, started, result, nil)
	return nil
}

func writeAnalyzeOutput(cmd *cobra.Command, req analyzeRequest, result *analysis.Result, html string) error {
	stdout := cmd.OutOrStdout()

	switch req.format {
	case formatJSON:
		if err := saveHTMLIfRequested(req, html); err != nil {
			return err
		}
		return writeJSON(cmd, analyzeJSON{
			RunID:         result.RunID,
			Source:        req.SourcePath,
			StopWords:     req.StopWordsPath,
			Mode:          result.Mode,
			Requested:     result.Requested,
			Returned:      len(result.Words),
			Clamped:       result.Clamped,
			DistinctWords: result.Distinct,
			TotalTokens:   result.TotalTokens,
			SourceBytes:   result.SourceBytes,
			ElapsedMS:     result.Elapsed.Milliseconds(),
			Output:        req.output,
			Words:         nonNilWords(result.Words),
		})
	case formatTable:
		if err := saveHTMLIfRequested(req, html); err != nil {
			return err
		}
		writeResultTable(stdout, req, result)
		return nil
	default:
		if err := report.WriteElapsed(cmd.ErrOrStderr(), result.Elapsed); err != nil {
			return err
		}
		if err := report.WriteCounts(stdout, result.Words); err != nil {
			return err
		}
		if req.output != "" {
			return report.SaveHTML(req.output, html)
		}
		if _, err := fmt.Fprintln(stdout, html); err != nil {
			return failure.Wrap(failure.ErrIO, "report", "write html", "", err)
		}
		return nil
	}
}

func saveHTMLIfRequested(req analyzeRequest, html string) error {
	if req.output == "" {
		return nil
	}
	return report.SaveHTML(req.output, html)
}

func writeResultTable(w io.Writer, req analyzeRequest, result *analysis.Result) {
	rows := make([][]string, 0, len(result.Words))
	for i, wc := range result.Words {
		rows = append(rows, []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)})
	}
	fmt.Fprintln(w, renderTable([]string{"#", "Word", "Count"}, rows, []columnAlignment{alignRight, alignLeft, alignRight}))

	fmt.Fprintln(w, renderDetailLine("Mode", string(result.Mode)))
	fmt.Fprintln(w, renderDetailLine("Distinct words", strconv.Itoa(result.Distinct)))
	fmt.Fprintln(w, renderDetailLine("Total tokens", strconv.Itoa(result.TotalTokens)))
	fmt.Fprintln(w, renderDetailLine("Clamped", yesNo(result.Clamped)))
	fmt.Fprintln(w, renderDetailLine("Elapsed", fmt.Sprintf("%dms", result.Elapsed.Milliseconds())))
	if req.output != "" {
		fmt.Fprintln(w, renderDetailLine("Cloud", req.output))
	}
}

func nonNilWords(words []wordfreq.WordCount) []wordfreq.WordCount {
	if words == nil {
		return []wordfreq.WordCount{}
	}
	return words
}

// recordRun stores run metadata when history is enabled. History failures are
// logged and never fail the run.
func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, req analyzeRequest, started time.Time, result *analysis.Result, runErr error) {
	if !req.record {
		return
	}
	runID, _ := logging.RunIDFromContext(ctx)
	run := history.Run{
		ID:            runID,
		StartedAt:     started,
		SourcePath:    req.SourcePath,
		StopWordsPath: req.StopWordsPath,
		Mode:          string(wordfreq.ModeStream),
		TopN:          req.TopN,
		OutputPath:    req.output,
		Outcome:       failure.Kind(runErr),
	}
	if req.StopWordsPath != "" {
		run.Mode = string(wordfreq.ModeLines)
	}
	if runErr != nil {
		run.ErrorMessage = runErr.Error()
	}
	if result != nil {
		run.StartedAt = result.StartedAt
		run.SourceBytes = result.SourceBytes
		run.Returned = len(result.Words)
		run.DistinctWords = result.Distinct
		run.TotalTokens = result.TotalTokens
		run.ElapsedMS = result.Elapsed.Milliseconds()
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logging.WithContext(ctx, logger).Warn("history unavailable; run not recorded", logging.Error(err))
		return
	}
	defer store.Close()
	if err := store.Record(ctx, run); err != nil {
		logging.WithContext(ctx, logger).Warn("failed to record run", logging.Error(err))
	}
}
