// Package engine owns the complete simulation state and sequences one
// frame: integrate, rebuild the spatial index, apply forces, triangulate.
//
// The engine is a single-consumer structure: the caller drives it
// synchronously and reads the output buffers between frames. No errors
// cross the boundary; numeric inputs are clamped to safe ranges instead.
package engine

import (
	"meshdrift/config"
	"meshdrift/effects"
	"meshdrift/mesh"
	"meshdrift/noise"
	"meshdrift/particle"
	"meshdrift/physics"
	"meshdrift/rng"
	"meshdrift/spatial"
	"meshdrift/telemetry"
)

// tuning is the engine's snapshot of the loaded configuration.
type tuning struct {
	springBack        float32
	damping           float32
	velocityInfluence float32
	baseVelocity      float32
	maxDT             float32
	maxSpeed          float32

	waveWidth float32
	gravity   physics.GravityParams
	attract   float32
	repel     float32

	minCellSize     float32
	resizeTolerance float32
	ghostThreshold  float32

	noiseOctaves     int
	noisePersistence float64
	noiseLacunarity  float64

	minPoints, maxPoints int
	minDim, maxDim       float32
}

func tuningFromConfig(cfg *config.Config) tuning {
	return tuning{
		springBack:        cfg.Physics.SpringBack,
		damping:           cfg.Physics.Damping,
		velocityInfluence: cfg.Physics.VelocityInfluence,
		baseVelocity:      cfg.Physics.BaseVelocity,
		maxDT:             cfg.Physics.MaxDT,
		maxSpeed:          cfg.Physics.MaxSpeed,
		waveWidth:         cfg.Shockwave.WaveWidth,
		gravity: physics.GravityParams{
			MinDist:  cfg.Gravity.MinDist,
			MaxRange: cfg.Gravity.MaxRange,
		},
		attract:          cfg.Gravity.AttractStrength,
		repel:            cfg.Gravity.RepelStrength,
		minCellSize:      cfg.Grid.MinCellSize,
		resizeTolerance:  cfg.Grid.ResizeTolerance,
		ghostThreshold:   cfg.Mesh.GhostThreshold,
		noiseOctaves:     cfg.Noise.Octaves,
		noisePersistence: cfg.Noise.Persistence,
		noiseLacunarity:  cfg.Noise.Lacunarity,
		minPoints:        cfg.Limits.MinPointCount,
		maxPoints:        cfg.Limits.MaxPointCount,
		minDim:           cfg.Limits.MinDimension,
		maxDim:           cfg.Limits.MaxDimension,
	}
}

// Simulation is the long-lived engine instance.
type Simulation struct {
	tune tuning

	points        []particle.Point
	width, height float32
	rand          *rng.Source
	field         *noise.Field

	noiseScale      float32
	heightIntensity float32

	mouse             effects.MouseState
	springBack        float32
	damping           float32
	velocityInfluence float32

	waves *effects.Shockwaves
	well  *effects.GravityWell

	grid     *spatial.Grid
	queryBuf []int

	buffers       *mesh.Buffers
	lastTriangles int

	perf *telemetry.PerfCollector
}

// New creates a simulation. Dimensions and point count are clamped to the
// configured limits; the seed fixes both the point layout and the height
// field, so identical arguments and an identical call sequence produce
// bit-identical buffers.
func New(width, height float32, pointCount int, seed uint32) *Simulation {
	cfg := config.Cfg()
	tune := tuningFromConfig(cfg)

	width = clampf(width, tune.minDim, tune.maxDim)
	height = clampf(height, tune.minDim, tune.maxDim)
	pointCount = clampi(pointCount, tune.minPoints, tune.maxPoints)

	s := &Simulation{
		tune:              tune,
		width:             width,
		height:            height,
		rand:              rng.New(seed),
		field:             noise.New(int64(seed), tune.noiseOctaves, tune.noisePersistence, tune.noiseLacunarity),
		noiseScale:        cfg.Noise.Scale,
		heightIntensity:   cfg.Noise.Intensity,
		mouse:             effects.NewMouseState(cfg.Mouse.Radius, cfg.Mouse.Strength),
		springBack:        tune.springBack,
		damping:           tune.damping,
		velocityInfluence: tune.velocityInfluence,
		waves: effects.NewShockwaves(cfg.Shockwave.MaxCount, cfg.Shockwave.Speed,
			cfg.Shockwave.Decay, cfg.Shockwave.MinStrength, cfg.Shockwave.MaxStrength),
		buffers: mesh.NewBuffers(),
	}

	s.points = make([]particle.Point, 0, pointCount)
	for i := 0; i < pointCount; i++ {
		s.points = append(s.points, particle.NewRandom(s.rand, width, height,
			s.field, s.noiseScale, s.heightIntensity, tune.baseVelocity))
	}

	s.grid = spatial.NewGrid(width, height, cfg.Mouse.Radius/2)

	return s
}

// SetPerfCollector attaches an optional phase-timing collector. Pass nil
// to detach.
func (s *Simulation) SetPerfCollector(p *telemetry.PerfCollector) {
	s.perf = p
}

// SetNoiseParams updates the height field parameters and regenerates
// every point's static height.
func (s *Simulation) SetNoiseParams(scale, intensity float32) {
	s.noiseScale = clampf(scale, 0.0001, 1)
	s.heightIntensity = clampf(intensity, 0, 2)

	for i := range s.points {
		s.points[i].RegenerateHeight(s.width, s.height, s.field, s.noiseScale, s.heightIntensity)
	}
}

// SetMouseState records a pointer report.
func (s *Simulation) SetMouseState(x, y float32, inBounds bool, radius, strength float32, mode uint32) {
	s.mouse.Update(x, y, inBounds, radius, strength, mode)
}

// SetPhysicsParams replaces the spring and damping tuning.
func (s *Simulation) SetPhysicsParams(springBack, damping, velocityInfluence float32) {
	s.springBack = springBack
	s.damping = damping
	s.velocityInfluence = velocityInfluence
}

// TriggerShockwave spawns an expanding ring at a position.
func (s *Simulation) TriggerShockwave(x, y, strength float32) {
	s.waves.Trigger(x, y, strength)
}

// SetGravityWell places or clears the single gravity well.
func (s *Simulation) SetGravityWell(x, y float32, active, attract bool) {
	if !active {
		s.well = nil
		return
	}
	strength := s.tune.attract
	if !attract {
		strength = s.tune.repel
	}
	w := effects.NewGravityWell(x, y, strength)
	s.well = &w
}

// UpdateGravityWellPosition moves the well if one is active.
func (s *Simulation) UpdateGravityWellPosition(x, y float32) {
	if s.well != nil {
		s.well.SetPosition(x, y)
	}
}

// Resize rescales all point positions proportionally to the new bounds.
func (s *Simulation) Resize(width, height float32) {
	width = clampf(width, s.tune.minDim, s.tune.maxDim)
	height = clampf(height, s.tune.minDim, s.tune.maxDim)

	if s.width > 0 && s.height > 0 {
		sx := width / s.width
		sy := height / s.height
		for i := range s.points {
			s.points[i].Rescale(sx, sy)
		}
	}

	s.width = width
	s.height = height
}

// SetPointCount re-seeds the random stream and grows or truncates the
// point set. Existing points keep their state.
func (s *Simulation) SetPointCount(count int, seed uint32) {
	count = clampi(count, s.tune.minPoints, s.tune.maxPoints)
	s.rand = rng.New(seed)

	for len(s.points) < count {
		s.points = append(s.points, particle.NewRandom(s.rand, s.width, s.height,
			s.field, s.noiseScale, s.heightIntensity, s.tune.baseVelocity))
	}
	s.points = s.points[:count]
}

// Step advances one frame of physics: effect lifetimes, drift and spring
// integration, grid rebuild, then force application.
func (s *Simulation) Step(dt, speed float32) {
	dt = clampf(dt, 0, s.tune.maxDT)
	speed = clampf(speed, 0, s.tune.maxSpeed)

	if s.perf != nil {
		s.perf.StartFrame()
		s.perf.StartPhase(telemetry.PhaseIntegrate)
	}

	s.waves.Update()

	for i := range s.points {
		p := &s.points[i]
		p.Advance(dt, speed, s.width, s.height)
		p.ApplySpring(s.springBack, s.damping)
	}

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseGrid)
	}
	s.rebuildGrid()

	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseForces)
	}

	s.queryBuf = physics.ApplyMouse(s.points, &s.mouse, s.velocityInfluence, s.grid, s.queryBuf)

	if s.well != nil {
		s.queryBuf = physics.ApplyGravity(s.points, *s.well, s.tune.gravity, s.grid, s.queryBuf)
	}

	for _, wave := range s.waves.Active() {
		s.queryBuf = physics.ApplyShockwave(s.points, wave, s.tune.waveWidth, s.grid, s.queryBuf)
	}
}

// rebuildGrid refills the spatial index, resizing its cells when the
// governing effect radius has drifted past the tolerance.
func (s *Simulation) rebuildGrid() {
	maxRadius := s.mouse.Radius
	if r := s.waves.MaxRadius(s.tune.waveWidth); r > maxRadius {
		maxRadius = r
	}
	if s.well != nil && s.tune.gravity.MaxRange > maxRadius {
		maxRadius = s.tune.gravity.MaxRange
	}

	cellSize := maxRadius / 2
	if cellSize < s.tune.minCellSize {
		cellSize = s.tune.minCellSize
	}

	drift := s.grid.CellSize() - cellSize
	if drift < 0 {
		drift = -drift
	}
	if drift > s.tune.resizeTolerance || s.grid.Width() != s.width || s.grid.Height() != s.height {
		s.grid.Resize(s.width, s.height, cellSize)
	} else {
		s.grid.Clear()
	}

	for i := range s.points {
		s.grid.Insert(i, s.points[i].X, s.points[i].Y)
	}
}

// Triangulate refreshes the output buffers and returns the triangle
// count. A triangulation failure leaves the previous mesh in place and
// reports the previous count; there is no meaningful partial result.
func (s *Simulation) Triangulate() int {
	if s.perf != nil {
		s.perf.StartPhase(telemetry.PhaseTriangulate)
		defer s.perf.EndFrame()
	}

	count, err := s.buffers.Triangulate(s.points, s.width, s.height, s.tune.ghostThreshold)
	if err != nil {
		return s.lastTriangles
	}
	s.lastTriangles = count
	return count
}

// Tick performs pointer update, physics step and triangulation in one
// call to minimize host boundary crossings.
func (s *Simulation) Tick(dt, speed, mouseX, mouseY float32, mouseInBounds bool, mouseRadius, mouseStrength float32, mouseMode uint32) int {
	s.SetMouseState(mouseX, mouseY, mouseInBounds, mouseRadius, mouseStrength, mouseMode)
	s.Step(dt, speed)
	return s.Triangulate()
}

// TriangleVertices returns the filled-mesh buffer: 18 floats per triangle.
// The slice is owned by the engine and valid until the next Triangulate.
func (s *Simulation) TriangleVertices() []float32 {
	return s.buffers.Triangles
}

// StrokeVertices returns the wireframe buffer: 12 floats per triangle.
func (s *Simulation) StrokeVertices() []float32 {
	return s.buffers.Strokes
}

// PointVertices returns the marker buffer: 2 floats per genuine point.
func (s *Simulation) PointVertices() []float32 {
	return s.buffers.Points
}

// TriangleCount returns the triangle count of the current mesh.
func (s *Simulation) TriangleCount() int {
	return s.buffers.TriangleCount()
}

// StrokeVertexCount returns the number of stroke endpoints.
func (s *Simulation) StrokeVertexCount() int {
	return s.buffers.StrokeVertexCount()
}

// PointCount returns the number of live points.
func (s *Simulation) PointCount() int {
	return len(s.points)
}

// Width returns the current simulation width.
func (s *Simulation) Width() float32 { return s.width }

// Height returns the current simulation height.
func (s *Simulation) Height() float32 { return s.height }

// BufferSizes returns the float counts of the three buffers for host-side
// pre-allocation.
func (s *Simulation) BufferSizes() (triangles, strokes, points int) {
	return len(s.buffers.Triangles), len(s.buffers.Strokes), len(s.buffers.Points)
}

// BufferBytes returns the byte sizes of the three buffers.
func (s *Simulation) BufferBytes() (triangles, strokes, points int) {
	t, st, p := s.BufferSizes()
	return t * 4, st * 4, p * 4
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
