package report

import (
	"fmt"
	"io"
	"time"
)

// Summary aggregates a batch of evaluation records.
type Summary struct {
	GeneratedAt time.Time `json:"generated_at"`
	Total       int       `json:"total"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	PassRate    float64   `json:"pass_rate"`
}

// BuildSummary computes pass counts over records.
func BuildSummary(records []Record) *Summary {
	s := &Summary{
		GeneratedAt: time.Now(),
		Total:       len(records),
	}

	for _, rec := range records {
		if rec.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}

	if s.Total > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Total)
	}

	return s
}

// WriteText writes a human-readable summary followed by one
// line per failing record.
func WriteText(
	w io.Writer,
	summary *Summary,
	records []Record,
) error {
	_, err := fmt.Fprintf(
		w,
		"%d evaluations: %d passed, %d failed (%.1f%%)\n",
		summary.Total, summary.Passed, summary.Failed,
		summary.PassRate*100,
	)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.Passed {
			continue
		}
		_, err := fmt.Fprintf(
			w, "  FAIL %s: %s\n", rec.Name, rec.Message,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
