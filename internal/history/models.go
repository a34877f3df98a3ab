package history

import "time"

// Run is one recorded analysis.
type Run struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	SourcePath    string    `json:"source_path"`
	SourceBytes   int64     `json:"source_bytes"`
	StopWordsPath string    `json:"stop_words_path,omitempty"`
	Mode          string    `json:"mode"`
	TopN          int       `json:"top_n"`
	Returned      int       `json:"returned"`
	DistinctWords int       `json:"distinct_words"`
	TotalTokens   int       `json:"total_tokens"`
	ElapsedMS     int64     `json:"elapsed_ms"`
	OutputPath    string    `json:"output_path,omitempty"`
	Outcome       string    `json:"outcome"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

// Succeeded reports whether the run completed without error.
func (r Run) Succeeded() bool {
	return r.Outcome == "ok"
}
