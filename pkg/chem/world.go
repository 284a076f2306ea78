package chem

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"
)

//Source supplies uniform random numbers in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

//World keeps track of one running experiment: the particles in the arena and
//the knobs the classroom UI turns. A World is not safe for concurrent use; the
//frame loop that owns it calls Update once per frame.
type World struct {
	Log  *zap.SugaredLogger
	Rand Source

	Width  float64
	Height float64
	Base   Params
	Diag   Params

	particles   []Particle
	temperature int
	diagnostic  bool
	paused      bool

	//reset settings
	acid    int
	alcohol int
	stoich  int
	excess  int
	mode    StartMode
	regions Regions

	tick  int
	stats Stats
	hooks []reactionHook
}

//Stats are collected since the last reset.
type Stats struct {
	Ticks      int
	Reactions  int
	Collisions int
	Requested  Counts //asked for at reset
	Placed     Counts //actually placed at reset
}

//New creates an empty world from a profile. Call Reset to seed particles.
func New(p Profile) (*World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(p.LogConfig)
	if err != nil {
		return nil, err
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := &World{
		Log:         log,
		Rand:        rand.New(rand.NewSource(seed)),
		Width:       p.Arena.Width,
		Height:      p.Arena.Height,
		Base:        p.Base,
		Diag:        p.Diag,
		temperature: p.Temperature,
		diagnostic:  p.Diagnostic,
		stoich:      p.Stoich,
		excess:      p.Excess,
		mode:        p.StartMode,
		regions:     p.Regions,
	}
	w.acid, w.alcohol = p.Counts()
	w.Log.Debugw("world created", "label", p.Label, "seed", seed, "acid", w.acid, "alcohol", w.alcohol, "temperature", w.temperature)
	return w, nil
}

//SetCounts sets the reactant counts used by the next Reset.
func (w *World) SetCounts(acid, alcohol int) error {
	if acid < 0 || alcohol < 0 {
		return fmt.Errorf("%w: acid %v alcohol %v", ErrInvalidCount, acid, alcohol)
	}
	w.acid, w.alcohol = acid, alcohol
	return nil
}

//InitialCounts returns the reactant counts used by the next Reset.
func (w *World) InitialCounts() (acid, alcohol int) {
	return w.acid, w.alcohol
}

//SetStartMode picks the counts for a start mode. It does not reset the world.
func (w *World) SetStartMode(m StartMode) {
	w.mode = m
	w.acid, w.alcohol = StartCounts(m, w.stoich, w.excess)
}

func (w *World) StartMode() StartMode { return w.mode }

//SetRegions replaces the spawn rectangles used by the next Reset.
func (w *World) SetRegions(r Regions) error {
	if err := r.validate(); err != nil {
		return err
	}
	w.regions = r
	return nil
}

//SetTemperature sets the temperature factor, an integer between 1 and 5.
func (w *World) SetTemperature(t int) error {
	if t < MinTemperature || t > MaxTemperature {
		return fmt.Errorf("%w, got %v", ErrInvalidTemperature, t)
	}
	w.temperature = t
	return nil
}

func (w *World) Temperature() int { return w.temperature }

func (w *World) SetDiagnostic(on bool) { w.diagnostic = on }

func (w *World) ToggleDiagnostic() bool {
	w.diagnostic = !w.diagnostic
	return w.diagnostic
}

func (w *World) Diagnostic() bool { return w.diagnostic }

func (w *World) SetPaused(p bool) { w.paused = p }

func (w *World) TogglePause() bool {
	w.paused = !w.paused
	return w.paused
}

func (w *World) Paused() bool { return w.paused }

//Particles returns a copy of the current particle list.
func (w *World) Particles() []Particle {
	out := make([]Particle, len(w.particles))
	copy(out, w.particles)
	return out
}

//Counts returns the number of particles per species.
func (w *World) Counts() Counts {
	var c Counts
	for i := range w.particles {
		c[w.particles[i].Species]++
	}
	return c
}

func (w *World) Stats() Stats { return w.stats }

func (w *World) Tick() int { return w.tick }

//Frame formats the current tick for log lines, e.g. "1500ms|90".
func (w *World) Frame() string {
	return strconv.Itoa(int(1000*float64(w.tick)/60)) + "ms|" + strconv.Itoa(w.tick)
}

//Reset reseeds the arena from the current counts, clears the stats and
//resumes a paused world. The particle list is replaced wholesale.
func (w *World) Reset() {
	next := make([]Particle, 0, w.acid+w.alcohol)
	next = w.spawnMany(Acid, w.acid, w.regions.Acid, next)
	next = w.spawnMany(Alcohol, w.alcohol, w.regions.Alcohol, next)

	w.particles = next
	w.tick = 0
	w.stats = Stats{}
	w.stats.Requested[Acid] = w.acid
	w.stats.Requested[Alcohol] = w.alcohol
	w.stats.Placed = w.Counts()
	w.paused = false

	w.Log.Infow("world reset", "requested", w.stats.Requested.String(), "placed", w.stats.Placed.String(), "temperature", w.temperature, "diagnostic", w.diagnostic)
}
