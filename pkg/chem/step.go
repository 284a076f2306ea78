package chem

import "math"

const (
	framesPerSecond = 60
	jitter          = 0.015 //thermal noise per axis per frame
	diagSpeedBoost  = 1.25
)

//params resolves the tuning profile for the current mode.
func (w *World) params() Params {
	if !w.diagnostic {
		return w.Base
	}
	return Params{
		DT:                  w.Base.DT,
		SpeedMul:            w.Diag.SpeedMul,
		ReactionProbability: w.Diag.ReactionProbability,
		Kick:                w.Diag.Kick,
	}
}

//MaxSpeed is the effective speed cap of species s at the current temperature
//and mode.
func (w *World) MaxSpeed(s Species) float64 {
	v := s.Props().MaxSpeed * float64(w.temperature)
	if w.diagnostic {
		v *= diagSpeedBoost
	}
	return v
}

//Update is the per frame callback. It advances the world by one tick unless
//paused and reports whether a tick ran.
func (w *World) Update() bool {
	if w.paused {
		return false
	}
	w.Step()
	return true
}

//Step advances the world by exactly one tick, paused or not.
func (w *World) Step() {
	p := w.params()
	w.tick++
	w.stats.Ticks++

	for i := range w.particles {
		w.integrate(&w.particles[i], p)
		w.bounce(&w.particles[i])
	}

	w.interact(p)

	//collision corrections may push disks through a wall
	for i := range w.particles {
		w.bounce(&w.particles[i])
	}
}

//integrate moves one particle, adds thermal jitter and clamps its speed.
func (w *World) integrate(a *Particle, p Params) {
	a.Pos = a.Pos.Add(a.Vel.Scale(framesPerSecond * p.DT * p.SpeedMul))

	noise := jitter * p.SpeedMul * float64(w.temperature)
	a.Vel.X += w.uniform(-noise, noise)
	a.Vel.Y += w.uniform(-noise, noise)

	vmax := w.MaxSpeed(a.Species)
	if v := a.Vel.Len(); v > vmax {
		a.Vel = a.Vel.Scale(vmax / v)
	}

	a.Angle = math.Mod(a.Angle+a.Spin*p.SpeedMul, 2*math.Pi)
}

//bounce keeps the disk inside the arena and points the crossing velocity
//component back inward. This is not a plain sign flip: a disk that was pushed
//past a wall while already moving inward keeps its direction instead of being
//sent back out.
func (w *World) bounce(a *Particle) {
	if a.Pos.X-a.Radius < 0 {
		a.Pos.X = a.Radius
		a.Vel.X = math.Abs(a.Vel.X)
	}
	if a.Pos.X+a.Radius > w.Width {
		a.Pos.X = w.Width - a.Radius
		a.Vel.X = -math.Abs(a.Vel.X)
	}
	if a.Pos.Y-a.Radius < 0 {
		a.Pos.Y = a.Radius
		a.Vel.Y = math.Abs(a.Vel.Y)
	}
	if a.Pos.Y+a.Radius > w.Height {
		a.Pos.Y = w.Height - a.Radius
		a.Vel.Y = -math.Abs(a.Vel.Y)
	}
}

//interact scans every pair i < j in list order. Overlapping pairs either react
//or bounce. The scan ends at the first reaction so at most one reaction happens
//per tick.
func (w *World) interact(p Params) {
	ps := w.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			a, b := &ps[i], &ps[j]
			if !a.Overlaps(b) {
				continue
			}
			if w.tryReact(a, b) {
				ev := w.react(i, j, p)
				w.runReactionHooks(ev)
				return
			}
			w.stats.Collisions++
			resolveCollision(a, b)
		}
	}
}

//Run steps the world for the given number of seconds at 60 ticks per second.
func (w *World) Run(seconds int) Stats {
	for f := 0; f < framesPerSecond*seconds; f++ {
		w.Step()
	}
	return w.stats
}

//RunUntil steps until done returns true or maxTicks ticks have run, and
//returns the number of ticks run. done is checked before every tick.
func (w *World) RunUntil(maxTicks int, done func(w *World) bool) int {
	var n int
	for ; n < maxTicks; n++ {
		if done(w) {
			break
		}
		w.Step()
	}
	return n
}

//Exhausted is a RunUntil condition: one of the reactants is used up.
func Exhausted(w *World) bool {
	return w.Counts().Exhausted()
}
