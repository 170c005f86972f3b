package chat

import (
	"fmt"
	"strings"

	"github.com/prateekn/ecosim/internal/eco"
	"github.com/prateekn/ecosim/internal/stats"
)

// BuildPrompt frames a user question for the generation model.
func BuildPrompt(question string) string {
	return strings.TrimSpace(question)
}

// BuildPromptWithSummary prepends a compact run summary to the user's
// question so the model can ground its answer in the simulated numbers.
func BuildPromptWithSummary(question string, p eco.Parameters, summary stats.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "An ecosystem simulation ran for %d steps with water availability %.2f, ", summary.Steps, p.Water)
	fmt.Fprintf(&b, "temperature variation %.1f, soil quality %.2f and human impact %.2f.\n", p.Temperature, p.SoilQuality, p.HumanImpact)

	for _, s := range summary.Species {
		fmt.Fprintf(&b, "Average %s population: %.2f (peak %.2f, final %.2f", s.Species, s.Mean, s.Peak, s.Final)
		if s.ExtinctionStep >= 0 {
			fmt.Fprintf(&b, ", extinct at step %d", s.ExtinctionStep)
		}
		b.WriteString(").\n")
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(strings.TrimSpace(question))
	return b.String()
}
