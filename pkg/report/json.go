package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONReporter generates JSON reports from evaluation records.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// GenerateReport creates a JSON report for a batch of records.
func (r *JSONReporter) GenerateReport(
	records []Record,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}

// jsonSummary is the JSON structure for a batch summary.
type jsonSummary struct {
	GeneratedAt time.Time `json:"generated_at"`
	Total       int       `json:"total"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	PassRate    float64   `json:"pass_rate"`
	Records     []Record  `json:"records"`
}

// GenerateSummary creates a JSON summary over all records.
func (r *JSONReporter) GenerateSummary(
	records []Record,
) ([]byte, error) {
	s := BuildSummary(records)

	out := jsonSummary{
		GeneratedAt: s.GeneratedAt,
		Total:       s.Total,
		Passed:      s.Passed,
		Failed:      s.Failed,
		PassRate:    s.PassRate,
		Records:     records,
	}

	if r.pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	records []Record,
) error {
	data, err := r.GenerateReport(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
