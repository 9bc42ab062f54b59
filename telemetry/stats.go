// Package telemetry collects windowed statistics and timing data for the
// particle simulation, with slog and CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a stats window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Pool composition at window end
	ParticleCount int `csv:"particles"`
	GasCount      int `csv:"gas"`
	LiquidCount   int `csv:"liquid"`
	VaporCount    int `csv:"vapor"`

	// Events during window
	Evaporations  int `csv:"evaporations"`  // liquid -> vapor transitions
	Condensations int `csv:"condensations"` // vapor -> liquid transitions
	Respawns      int `csv:"respawns"`      // life-depleted particle resets

	// Temperature distribution (sampled at window end, Kelvin)
	TempMean float64 `csv:"temp_mean"`
	TempStd  float64 `csv:"temp_std"`
	TempP10  float64 `csv:"temp_p10"`
	TempP50  float64 `csv:"temp_p50"`
	TempP90  float64 `csv:"temp_p90"`

	// Speed distribution (pixels per tick)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// ComputeDistribution calculates mean, standard deviation, and empirical
// quantiles of a sample. Returns all zeros for an empty sample.
func ComputeDistribution(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("particles", s.ParticleCount),
		slog.Int("gas", s.GasCount),
		slog.Int("liquid", s.LiquidCount),
		slog.Int("vapor", s.VaporCount),
		slog.Int("evaporations", s.Evaporations),
		slog.Int("condensations", s.Condensations),
		slog.Int("respawns", s.Respawns),
		slog.Float64("temp_mean", s.TempMean),
		slog.Float64("temp_std", s.TempStd),
		slog.Float64("temp_p10", s.TempP10),
		slog.Float64("temp_p50", s.TempP50),
		slog.Float64("temp_p90", s.TempP90),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"particles", s.ParticleCount,
		"gas", s.GasCount,
		"liquid", s.LiquidCount,
		"vapor", s.VaporCount,
		"evaporations", s.Evaporations,
		"condensations", s.Condensations,
		"respawns", s.Respawns,
		"temp_mean", s.TempMean,
		"temp_std", s.TempStd,
		"temp_p10", s.TempP10,
		"temp_p50", s.TempP50,
		"temp_p90", s.TempP90,
		"speed_mean", s.SpeedMean,
		"speed_p90", s.SpeedP90,
	)
}
