package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/prateekn/ecosim/internal/analysis"
	"github.com/prateekn/ecosim/internal/chat"
	"github.com/prateekn/ecosim/internal/config"
	"github.com/prateekn/ecosim/internal/eco"
	"github.com/prateekn/ecosim/internal/export"
	"github.com/prateekn/ecosim/internal/impact"
	"github.com/prateekn/ecosim/internal/stats"
	"github.com/prateekn/ecosim/internal/sweep"
	"github.com/prateekn/ecosim/internal/tui"
	"github.com/prateekn/ecosim/internal/viz"
)

var (
	configFile string
	preset     string

	// Simulation parameters
	plantGrowth float64
	herbBirth   float64
	predBirth   float64
	initPlants  float64
	initHerbs   float64
	initPreds   float64
	timeSteps   int
	water       float64
	temperature float64
	soil        float64
	humanImpact float64

	// Presentation and analysis
	plotSeries    string
	sweepSeries   string
	analyzeSeries string
	exportAs      string
	sweepPoints   int
	sweepFrom     float64
	sweepTo       float64
	frameRate     int

	// Chatbot
	withSummary  bool
	chatMaxLen   int
	chatModel    string
	chatEndpoint string
	chatToken    string
)

// floatFlags maps each float parameter flag to its field key; timeSteps
// is wired separately because it is the one integer input.
var floatFlags = []struct {
	flag string
	key  string
	ptr  *float64
}{
	{"plant-growth", "plant_growth_rate", &plantGrowth},
	{"herbivore-birth", "herbivore_birth_rate", &herbBirth},
	{"predator-birth", "predator_birth_rate", &predBirth},
	{"plants", "initial_plants", &initPlants},
	{"herbivores", "initial_herbivores", &initHerbs},
	{"predators", "initial_predators", &initPreds},
	{"water", "water_availability", &water},
	{"temperature", "temperature_variation", &temperature},
	{"soil", "soil_quality", &soil},
	{"human-impact", "human_impact", &humanImpact},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecosim",
		Short: "three-tier ecosystem simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive editor when no command given
			return tui.Run()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and show plots and summary",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot population dynamics",
		RunE:  plotPopulations,
	}
	addSimFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotSeries, "series", "all", "series to plot (plants|herbivores|predators|total|all)")

	impactCmd := &cobra.Command{
		Use:   "impact",
		Short: "show abiotic factor impact scores",
		RunE:  showImpact,
	}
	addSimFlags(impactCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the trace to stdout as csv or json",
		RunE:  exportTrace,
	}
	addSimFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportAs, "format", "csv", "output format (csv|json)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [parameter]",
		Short: "sweep one parameter across its range",
		Long: "sweep runs the simulation for evenly spaced values of one parameter\n" +
			"and reports how the mean populations respond.\n\n" +
			"parameters: " + strings.Join(eco.FieldKeys(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 8, "number of samples")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "range start (default: parameter minimum)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "range end (default: parameter maximum)")
	sweepCmd.Flags().StringVar(&sweepSeries, "series", "total", "series to chart against the parameter")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "population oscillation analysis",
		RunE:  analyzeCycles,
	}
	addSimFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeSeries, "series", "herbivores", "series to analyze")

	compareCmd := &cobra.Command{
		Use:   "compare [preset...]",
		Short: "compare presets side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE:  comparePresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark simulation throughput",
		RunE:  benchSimulator,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate a simulation step by step",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 15, "frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	askCmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "ask the ecosystem chatbot",
		Args:  cobra.MinimumNArgs(1),
		RunE:  askChatbot,
	}
	addSimFlags(askCmd)
	askCmd.Flags().BoolVar(&withSummary, "with-summary", false, "prepend a simulation summary to the prompt")
	askCmd.Flags().IntVar(&chatMaxLen, "max-length", 0, "maximum generated length (default from config)")
	askCmd.Flags().StringVar(&chatModel, "model", "", "generation model (default from config)")
	askCmd.Flags().StringVar(&chatEndpoint, "endpoint", "", "generation endpoint (default from config)")
	askCmd.Flags().StringVar(&chatToken, "token", "", "bearer token (default from config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.AddCommand(runCmd, plotCmd, impactCmd, exportCmd, sweepCmd, analyzeCmd,
		compareCmd, benchCmd, liveCmd, tuiCmd, askCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&plantGrowth, "plant-growth", eco.DefaultPlantGrowthRate, "plant growth rate")
	cmd.Flags().Float64Var(&herbBirth, "herbivore-birth", eco.DefaultHerbivoreBirthRate, "herbivore birth rate")
	cmd.Flags().Float64Var(&predBirth, "predator-birth", eco.DefaultPredatorBirthRate, "predator birth rate")
	cmd.Flags().Float64Var(&initPlants, "plants", eco.DefaultInitialPlants, "initial plant population")
	cmd.Flags().Float64Var(&initHerbs, "herbivores", eco.DefaultInitialHerbivores, "initial herbivore population")
	cmd.Flags().Float64Var(&initPreds, "predators", eco.DefaultInitialPredators, "initial predator population")
	cmd.Flags().IntVar(&timeSteps, "steps", eco.DefaultTimeSteps, "simulation duration in steps")
	cmd.Flags().Float64Var(&water, "water", eco.DefaultWater, "water availability")
	cmd.Flags().Float64Var(&temperature, "temperature", eco.DefaultTemperature, "temperature variation")
	cmd.Flags().Float64Var(&soil, "soil", eco.DefaultSoilQuality, "soil quality index")
	cmd.Flags().Float64Var(&humanImpact, "human-impact", eco.DefaultHumanImpact, "human impact factor")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
}

// resolveConfig layers defaults, config file, preset and changed flags,
// then validates the resulting parameter set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Params = p
	}

	for _, b := range floatFlags {
		if cmd.Flags().Changed(b.flag) {
			f, err := eco.FieldByKey(b.key)
			if err != nil {
				return nil, err
			}
			f.Set(&cfg.Params, *b.ptr)
		}
	}
	if cmd.Flags().Changed("steps") {
		cfg.Params.TimeSteps = timeSteps
	}

	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("running simulation (%d steps)...\n", cfg.Params.TimeSteps)
	start := time.Now()
	trace := eco.Simulate(cfg.Params)
	fmt.Printf("completed in %v\n\n", time.Since(start))

	fmt.Println(viz.PopulationPlots(trace))

	summary := stats.Summarize(trace)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPECIES\tMEAN\tPEAK\tFINAL\tEXTINCT")
	for _, s := range summary.Species {
		extinct := "-"
		if s.ExtinctionStep >= 0 {
			extinct = fmt.Sprintf("step %d", s.ExtinctionStep)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Species,
			humanize.CommafWithDigits(s.Mean, 2),
			humanize.CommafWithDigits(s.Peak, 2),
			humanize.CommafWithDigits(s.Final, 2),
			extinct,
		)
	}
	fmt.Fprintf(w, "total\t%s\t\t\t\n", humanize.CommafWithDigits(summary.MeanTotal, 2))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nabiotic factor impact:")
	fmt.Println(viz.ImpactBars(impact.Scores(cfg.Params)))
	return nil
}

func plotPopulations(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	trace := eco.Simulate(cfg.Params)

	if plotSeries == "all" {
		fmt.Println(viz.PopulationPlots(trace))
		return nil
	}

	data := trace.Series(plotSeries)
	if data == nil {
		return fmt.Errorf("unknown series: %s (plants|herbivores|predators|total)", plotSeries)
	}
	fmt.Println(viz.SeriesPlot(data, plotSeries+" over time"))
	return nil
}

func showImpact(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	scores := impact.Scores(cfg.Params)

	fmt.Println(viz.ImpactBars(scores))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FACTOR\tPLANTS\tHERBIVORES\tPREDATORS")
	for _, s := range scores {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", s.Factor, s.Plants, s.Herbivores, s.Predators)
	}
	return w.Flush()
}

func exportTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	trace := eco.Simulate(cfg.Params)

	switch exportAs {
	case "csv":
		return export.WriteCSV(os.Stdout, trace)
	case "json":
		return export.WriteJSON(os.Stdout, cfg.Params, trace)
	}
	return fmt.Errorf("unknown format: %s (csv|json)", exportAs)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fieldKey := args[0]
	sweepCfg, err := sweep.FullRange(fieldKey, sweepPoints)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("from") {
		sweepCfg.From = sweepFrom
	}
	if cmd.Flags().Changed("to") {
		sweepCfg.To = sweepTo
	}

	fmt.Printf("sweeping %s over [%g, %g] with %d points...\n\n",
		fieldKey, sweepCfg.From, sweepCfg.To, sweepCfg.Points)

	points, err := sweep.Run(cmd.Context(), cfg.Params, sweepCfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMEAN PLANTS\tMEAN HERBIVORES\tMEAN PREDATORS\tMEAN TOTAL\n", strings.ToUpper(fieldKey))
	curve := make([]float64, len(points))
	for i, pt := range points {
		fmt.Fprintf(w, "%.3f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			pt.Value,
			pt.Summary.Species[0].Mean,
			pt.Summary.Species[1].Mean,
			pt.Summary.Species[2].Mean,
			pt.Summary.MeanTotal,
		)
		curve[i] = meanFor(pt.Summary, sweepSeries)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(curve,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("mean %s vs %s", sweepSeries, fieldKey)),
	))
	return nil
}

func meanFor(s stats.Summary, series string) float64 {
	for _, sp := range s.Species {
		if sp.Species == series {
			return sp.Mean
		}
	}
	return s.MeanTotal
}

func analyzeCycles(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	trace := eco.Simulate(cfg.Params)
	data := trace.Series(analyzeSeries)
	if data == nil {
		return fmt.Errorf("unknown series: %s (plants|herbivores|predators|total)", analyzeSeries)
	}

	cycle := analysis.DominantCycle(data)

	fmt.Printf("oscillation analysis: %s over %d steps\n\n", analyzeSeries, trace.Len())

	plot := cycle.Spectrum
	if len(plot) > 4 {
		plot = plot[:len(plot)/2]
	}
	fmt.Println(asciigraph.Plot(plot,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("power spectrum"),
	))
	fmt.Println()

	if cycle.Period == 0 {
		fmt.Println("no dominant cycle found")
		return nil
	}
	fmt.Printf("dominant cycle period: %.1f steps\n", cycle.Period)
	return nil
}

func comparePresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTEPS\tMEAN PLANTS\tMEAN HERBIVORES\tMEAN PREDATORS\tEXTINCTIONS")

	for _, name := range args {
		p, ok := config.GetPreset(name)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}

		summary := stats.Summarize(eco.Simulate(p))

		extinctions := make([]string, 0, 3)
		for _, s := range summary.Species {
			if s.ExtinctionStep >= 0 {
				extinctions = append(extinctions, fmt.Sprintf("%s@%d", s.Species, s.ExtinctionStep))
			}
		}
		extinct := "-"
		if len(extinctions) > 0 {
			extinct = strings.Join(extinctions, " ")
		}

		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%s\n",
			name, summary.Steps,
			summary.Species[0].Mean,
			summary.Species[1].Mean,
			summary.Species[2].Mean,
			extinct,
		)
	}
	return w.Flush()
}

func benchSimulator(cmd *cobra.Command, args []string) error {
	fmt.Println("benchmarking simulator")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tRUNS\tTIME\tSTEPS/SEC")

	p := eco.Defaults()
	for _, steps := range []int{10, 50, 200} {
		const runs = 1000
		p.TimeSteps = steps

		start := time.Now()
		for i := 0; i < runs; i++ {
			eco.Simulate(p)
		}
		elapsed := time.Since(start)

		total := steps * runs
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n",
			steps, runs, elapsed, float64(total)/elapsed.Seconds())
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewLiveModel(cfg.Params, frameRate)
	_, err = tea.NewProgram(m).Run()
	return err
}

func askChatbot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if chatEndpoint != "" {
		cfg.Chat.Endpoint = chatEndpoint
	}
	if chatModel != "" {
		cfg.Chat.Model = chatModel
	}
	if chatToken != "" {
		cfg.Chat.Token = chatToken
	}
	if chatMaxLen > 0 {
		cfg.Chat.MaxLength = chatMaxLen
	}

	question := strings.Join(args, " ")
	prompt := chat.BuildPrompt(question)
	if withSummary {
		trace := eco.Simulate(cfg.Params)
		prompt = chat.BuildPromptWithSummary(question, cfg.Params, stats.Summarize(trace))
	}

	generator := chat.NewClient(cfg.Chat.Endpoint, cfg.Chat.Model,
		chat.WithToken(cfg.Chat.Token),
		chat.WithCandidates(cfg.Chat.Candidates),
		chat.WithTimeout(time.Duration(cfg.Chat.TimeoutSec)*time.Second),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Chat.TimeoutSec)*time.Second)
	defer cancel()

	fmt.Printf("asking %s...\n", cfg.Chat.Model)
	candidates, err := generator.Generate(ctx, prompt, cfg.Chat.MaxLength)
	if err != nil {
		return fmt.Errorf("chatbot error: %w", err)
	}

	fmt.Println()
	fmt.Println(candidates[0])
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTEPS\tWATER\tTEMP\tSOIL\tHUMAN")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.1f\t%.2f\t%.2f\n",
			name, p.TimeSteps, p.Water, p.Temperature, p.SoilQuality, p.HumanImpact)
	}
	return w.Flush()
}
