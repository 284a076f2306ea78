//Package monte runs many independent worlds from one profile and summarises
//how long the reaction takes to use up the limiting reagent.
package monte

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/srliao/estersim/pkg/chem"
	"go.uber.org/zap"
)

type Simulator struct {
	Log *zap.SugaredLogger
	//Progress receives a dotted progress line when set
	Progress io.Writer

	p           chem.Profile
	maxTicks    int
	sampleEvery int
}

//Run is the outcome of a single world.
type Run struct {
	Seed      int64
	Ticks     int  //ticks until exhaustion, or maxTicks
	Completed bool //limiting reagent used up before maxTicks
	Reactions int
	Final     chem.Counts
	Curve     []int //ester count sampled every sampleEvery ticks
	Err       error
}

type SimResult struct {
	Runs      int
	Completed int
	Hist      []float64
	BinStart  int
	BinSize   int
	Min       float64
	Max       float64
	Mean      float64
	SD        float64
	//mean ester count at tick i*SampleEvery
	Curve       []float64
	SampleEvery int
}

//New checks the profile by building one world from it. Runs stop after
//maxTicks; the kinetics curve is sampled every sampleEvery ticks.
func New(p chem.Profile, maxTicks, sampleEvery int) (*Simulator, error) {
	if maxTicks <= 0 {
		return nil, fmt.Errorf("max ticks must be positive, got %v", maxTicks)
	}
	if sampleEvery <= 0 {
		return nil, fmt.Errorf("sample interval must be positive, got %v", sampleEvery)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log, err := chem.NewLogger(p.LogConfig)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		Log:         log,
		p:           p,
		maxTicks:    maxTicks,
		sampleEvery: sampleEvery,
	}, nil
}

//SimCompletion runs n worlds on w workers and bins the completion times into
//bins b ticks wide. Run i uses seed Seed+i, so results are repeatable
//whenever the profile has a fixed seed.
func (s *Simulator) SimCompletion(n, b, w int) (SimResult, error) {
	if n <= 0 || b <= 0 || w <= 0 {
		return SimResult{}, fmt.Errorf("runs, bin size and workers must be positive (n=%v b=%v w=%v)", n, b, w)
	}
	s.Log.Debugw("starting completion sim", "n", n, "b", b, "w", w, "max ticks", s.maxTicks)

	r := SimResult{
		Runs:        n,
		BinSize:     b,
		SampleEvery: s.sampleEvery,
		Min:         math.MaxFloat64,
		Max:         -1,
	}

	//a zero seed would make every world seed itself from the clock
	base := s.p.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	resp := make(chan Run, n)
	req := make(chan int64)
	done := make(chan bool)
	for i := 0; i < w; i++ {
		go s.worker(resp, req, done)
	}

	//hand out run indexes whenever a worker is free
	go func() {
		for wip := 0; wip < n; wip++ {
			select {
			case req <- base + int64(wip):
			case <-done:
				return
			}
		}
	}()

	s.progress("\tProgress: 0")

	var (
		progress, sum, ss float64
		data              []float64
		curve             []float64
		errs              []error
	)
	for count := n; count > 0; {
		run := <-resp
		count--

		if run.Err != nil {
			errs = append(errs, fmt.Errorf("seed %v: %w", run.Seed, run.Err))
			continue
		}

		val := float64(run.Ticks)
		data = append(data, val)
		sum += val
		if val < r.Min {
			r.Min = val
		}
		if val > r.Max {
			r.Max = val
		}
		if run.Completed {
			r.Completed++
		}
		if curve == nil {
			curve = make([]float64, len(run.Curve))
		}
		for i, v := range run.Curve {
			curve[i] += float64(v)
		}

		if (1 - float64(count)/float64(n)) > (progress + 0.01) {
			progress = (1 - float64(count)/float64(n))
			s.progress(fmt.Sprintf(".%.0f", 100*progress))
		}
	}
	s.progress("...100%\n")

	close(done)

	if len(errs) > 0 {
		return SimResult{}, errors.Join(errs...)
	}

	good := float64(len(data))
	r.Mean = sum / good
	r.BinStart = int(r.Min/float64(b)) * b
	binMax := (int(r.Max/float64(b)) + 1) * b
	numBin := ((binMax - r.BinStart) / b) + 1

	r.Hist = make([]float64, numBin)
	for _, v := range data {
		ss += (v - r.Mean) * (v - r.Mean)
		steps := int((v - float64(r.BinStart)) / float64(b))
		r.Hist[steps]++
	}
	r.SD = math.Sqrt(ss / good)

	for i := range curve {
		curve[i] /= good
	}
	r.Curve = curve

	s.Log.Infow("completion sim done", "runs", n, "completed", r.Completed, "mean", r.Mean, "sd", r.SD)
	return r, nil
}

func (s *Simulator) progress(msg string) {
	if s.Progress != nil {
		fmt.Fprint(s.Progress, msg)
	}
}

func (s *Simulator) worker(resp chan Run, req chan int64, done chan bool) {
	for {
		select {
		case seed := <-req:
			resp <- s.runOne(seed)
		case <-done:
			return
		}
	}
}

//runOne builds a fresh world for seed and runs it to exhaustion.
func (s *Simulator) runOne(seed int64) Run {
	prof := s.p
	prof.Seed = seed
	prof.LogConfig.LogFile = ""
	prof.LogConfig.LogLevel = "error"

	run := Run{Seed: seed}
	w, err := chem.New(prof)
	if err != nil {
		run.Err = err
		return run
	}

	//reaction ticks; the curve is rebuilt from them afterwards
	var ticks []int
	w.AddReactionHook(func(_ *chem.World, ev chem.ReactionEvent) bool {
		ticks = append(ticks, ev.Tick)
		return false
	}, "kinetics")

	w.Reset()
	run.Ticks = w.RunUntil(s.maxTicks, chem.Exhausted)
	run.Final = w.Counts()
	run.Completed = run.Final.Exhausted()
	run.Reactions = w.Stats().Reactions
	run.Curve = curve(ticks, s.maxTicks, s.sampleEvery)
	return run
}

//curve turns sorted reaction ticks into the number of esters present at
//ticks 0, every, 2*every ... up to max.
func curve(ticks []int, max, every int) []int {
	out := make([]int, max/every+1)
	var k int
	for i := range out {
		t := i * every
		for k < len(ticks) && ticks[k] <= t {
			k++
		}
		out[i] = k
	}
	return out
}
