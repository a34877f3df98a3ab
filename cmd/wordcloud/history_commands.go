package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"wordcloud/internal/history"
)

const shortIDLength = 8

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analysis runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					if runs == nil {
						runs = []history.Run{}
					}
					return writeJSON(cmd, runs)
				}
				out := cmd.OutOrStdout()
				if !cfg.History.Enabled {
					fmt.Fprintln(cmd.ErrOrStderr(), "History recording is disabled; set [history] enabled = true to record runs.")
				}
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				fmt.Fprintln(out, renderHistoryTable(runs, shouldColorize(out)))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded run (id or unique prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			return ctx.withHistory(func(store *history.Store) error {
				run, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run %s not found", id)
				}
				if asJSON {
					return writeJSON(cmd, run)
				}
				out := cmd.OutOrStdout()
				for _, line := range runDetailLines(*run, shouldColorize(out)) {
					fmt.Fprintln(out, line)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d run(s)\n", removed)
				return nil
			})
		},
	}
}

func renderHistoryTable(runs []history.Run, colorize bool) string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			humanize.Time(run.StartedAt),
			filepath.Base(run.SourcePath),
			humanize.Bytes(uint64(max(run.SourceBytes, 0))),
			run.Mode,
			strconv.Itoa(run.TopN),
			strconv.Itoa(run.Returned),
			fmt.Sprintf("%dms", run.ElapsedMS),
			renderOutcome(run.Outcome, colorize),
		})
	}
	headers := []string{"ID", "Started", "Source", "Size", "Mode", "Top", "Returned", "Elapsed", "Outcome"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft}
	return renderTable(headers, rows, aligns)
}

func runDetailLines(run history.Run, colorize bool) []string {
	lines := []string{
		renderDetailLine("ID", run.ID),
		renderDetailLine("Started", fmt.Sprintf("%s (%s)", run.StartedAt.Local().Format("2006-01-02 15:04:05"), humanize.Time(run.StartedAt))),
		renderDetailLine("Source", run.SourcePath),
		renderDetailLine("Size", humanize.Bytes(uint64(max(run.SourceBytes, 0)))),
		renderDetailLine("Mode", run.Mode),
	}
	if run.StopWordsPath != "" {
		lines = append(lines, renderDetailLine("Stop words", run.StopWordsPath))
	}
	lines = append(lines,
		renderDetailLine("Top N", strconv.Itoa(run.TopN)),
		renderDetailLine("Returned", strconv.Itoa(run.Returned)),
		renderDetailLine("Distinct words", humanize.Comma(int64(run.DistinctWords))),
		renderDetailLine("Total tokens", humanize.Comma(int64(run.TotalTokens))),
		renderDetailLine("Elapsed", fmt.Sprintf("%dms", run.ElapsedMS)),
	)
	if run.OutputPath != "" {
		lines = append(lines, renderDetailLine("Cloud", run.OutputPath))
	}
	lines = append(lines, renderDetailLine("Outcome", renderOutcome(run.Outcome, colorize)))
	if run.ErrorMessage != "" {
		lines = append(lines, renderDetailLine("Error", run.ErrorMessage))
	}
	return lines
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}
