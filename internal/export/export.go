// Package export streams a population trace as CSV or JSON. Traces are
// request-scoped and never persisted; exporters only write to the
// writer they are handed, normally stdout.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/prateekn/ecosim/internal/eco"
	"github.com/prateekn/ecosim/internal/stats"
)

// WriteCSV writes one row per time step with a derived total column.
func WriteCSV(w io.Writer, trace *eco.Trace) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "plants", "herbivores", "predators", "total"}); err != nil {
		return err
	}

	for i := 0; i < trace.Len(); i++ {
		s := trace.At(i)
		row := []string{
			strconv.Itoa(i),
			formatPop(s.Plants),
			formatPop(s.Herbivores),
			formatPop(s.Predators),
			formatPop(s.Total()),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatPop(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Document is the JSON export layout: the inputs, the full trace and
// the summary metrics of one run.
type Document struct {
	Params     eco.Parameters     `json:"params"`
	Steps      int                `json:"steps"`
	Plants     []float64          `json:"plants"`
	Herbivores []float64          `json:"herbivores"`
	Predators  []float64          `json:"predators"`
	Total      []float64          `json:"total"`
	Metrics    map[string]float64 `json:"metrics"`
}

// WriteJSON writes the run as an indented JSON document.
func WriteJSON(w io.Writer, p eco.Parameters, trace *eco.Trace) error {
	summary := stats.Summarize(trace)

	metrics := make(map[string]float64)
	for _, s := range summary.Species {
		metrics["mean_"+s.Species] = s.Mean
		metrics["peak_"+s.Species] = s.Peak
		metrics["final_"+s.Species] = s.Final
	}
	metrics["mean_total"] = summary.MeanTotal

	doc := Document{
		Params:     p,
		Steps:      trace.Len(),
		Plants:     trace.Plants,
		Herbivores: trace.Herbivores,
		Predators:  trace.Predators,
		Total:      trace.Totals(),
		Metrics:    metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
