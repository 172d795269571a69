package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Writer renders metrics as CSV.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// SummaryRecord is one row of a benchmark report.
type SummaryRecord struct {
	Suite      string
	Agent      string
	Trials     int
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
	Duration   string
	Expansions int64
	Rollouts   int64
}

func (w *Writer) WriteSummaries(records []SummaryRecord) error {
	writer := csv.NewWriter(w.w)

	// Write header
	header := []string{"suite", "agent", "trials", "mean", "stddev", "min", "max", "duration", "expansions", "rollouts"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			record.Suite,
			record.Agent,
			strconv.Itoa(record.Trials),
			strconv.FormatFloat(record.Mean, 'f', 3, 64),
			strconv.FormatFloat(record.StdDev, 'f', 3, 64),
			strconv.FormatFloat(record.Min, 'f', 0, 64),
			strconv.FormatFloat(record.Max, 'f', 0, 64),
			record.Duration,
			strconv.FormatInt(record.Expansions, 10),
			strconv.FormatInt(record.Rollouts, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteMoveMetrics(moves []MoveMetric) error {
	writer := csv.NewWriter(w.w)

	// Write header
	header := []string{"step", "action", "score", "duration", "expansions", "rollouts"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write move metrics header: %w", err)
	}

	// Write each row
	for _, move := range moves {
		row := []string{
			strconv.Itoa(move.Step),
			move.Action,
			strconv.Itoa(move.Score),
			move.Duration.String(),
			strconv.FormatInt(move.Expansions, 10),
			strconv.FormatInt(move.Rollouts, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move metric row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
