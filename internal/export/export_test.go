package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/prateekn/ecosim/internal/eco"
)

func TestWriteCSV(t *testing.T) {
	p := eco.Defaults()
	p.TimeSteps = 10
	trace := eco.Simulate(p)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, trace); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back failed: %v", err)
	}

	if len(records) != 11 {
		t.Fatalf("expected header + 10 rows, got %d", len(records))
	}

	header := records[0]
	want := []string{"time", "plants", "herbivores", "predators", "total"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d] = %s, want %s", i, header[i], col)
		}
	}

	for i, rec := range records[1:] {
		step, err := strconv.Atoi(rec[0])
		if err != nil || step != i {
			t.Errorf("row %d: time column = %s", i, rec[0])
		}
		var total, sum float64
		for col := 1; col < 5; col++ {
			v, err := strconv.ParseFloat(rec[col], 64)
			if err != nil {
				t.Fatalf("row %d col %d: %v", i, col, err)
			}
			if col == 4 {
				total = v
			} else {
				sum += v
			}
		}
		if diff := total - sum; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("row %d: total %g does not match sum %g", i, total, sum)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	p := eco.Defaults()
	p.TimeSteps = 10
	trace := eco.Simulate(p)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, p, trace); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("reading back failed: %v", err)
	}

	if doc.Steps != 10 {
		t.Errorf("steps = %d, want 10", doc.Steps)
	}
	if len(doc.Plants) != 10 || len(doc.Herbivores) != 10 || len(doc.Predators) != 10 || len(doc.Total) != 10 {
		t.Error("series lengths should all equal steps")
	}
	if doc.Params.TimeSteps != 10 {
		t.Errorf("params not carried, got %d steps", doc.Params.TimeSteps)
	}
	if _, ok := doc.Metrics["mean_plants"]; !ok {
		t.Error("metrics should include mean_plants")
	}
	if _, ok := doc.Metrics["mean_total"]; !ok {
		t.Error("metrics should include mean_total")
	}
}
