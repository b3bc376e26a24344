package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes one stats window of frame timings. Durations are
// in milliseconds.
type WindowStats struct {
	Frame         int     `csv:"frame"`
	Samples       int     `csv:"samples"`
	FrameMean     float64 `csv:"frame_mean_ms"`
	FrameP50      float64 `csv:"frame_p50_ms"`
	FrameP90      float64 `csv:"frame_p90_ms"`
	FrameP99      float64 `csv:"frame_p99_ms"`
	IntegrateMean float64 `csv:"integrate_ms"`
	GridMean      float64 `csv:"grid_ms"`
	ForcesMean    float64 `csv:"forces_ms"`
	TriMean       float64 `csv:"triangulate_ms"`
	Triangles     int     `csv:"triangles"`
	Points        int     `csv:"points"`
}

// Quantile returns the p-th quantile of unsorted values, p in [0, 1].
// Returns 0 for an empty slice.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summarize builds window stats from the collector's current window.
func Summarize(p *PerfCollector, frame, triangles, points int) WindowStats {
	frames := p.frameDurations()

	ws := WindowStats{
		Frame:     frame,
		Samples:   len(frames),
		Triangles: triangles,
		Points:    points,
	}
	if len(frames) == 0 {
		return ws
	}

	sorted := make([]float64, len(frames))
	copy(sorted, frames)
	sort.Float64s(sorted)

	ws.FrameMean = stat.Mean(sorted, nil)
	ws.FrameP50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	ws.FrameP90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	ws.FrameP99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)

	ws.IntegrateMean = p.phaseMean(PhaseIntegrate)
	ws.GridMean = p.phaseMean(PhaseGrid)
	ws.ForcesMean = p.phaseMean(PhaseForces)
	ws.TriMean = p.phaseMean(PhaseTriangulate)

	return ws
}
