package chem

import "math"

const (
	maxReactionProbability = 0.95 //cap for temperature scaled probabilities
	productOffset          = 10.0 //distance of each product from the contact midpoint
)

//ReactionEvent describes one acid + alcohol -> ester + water conversion.
type ReactionEvent struct {
	Tick    int
	Point   Vec //contact midpoint of the reactants
	Acid    Particle
	Alcohol Particle
	Ester   Particle
	Water   Particle
}

//ReactionProbability is the chance that one overlapping acid/alcohol pair
//reacts during a tick. Temperature scales the probability but never above
//0.95 unless the configured probability itself is higher.
func (w *World) ReactionProbability() float64 {
	p := w.params().ReactionProbability
	return math.Min(p*float64(w.temperature), math.Max(p, maxReactionProbability))
}

//tryReact rolls the Bernoulli trial for an overlapping pair. Non reactive
//pairs never consume a random draw.
func (w *World) tryReact(a, b *Particle) bool {
	if !Reactive(a.Species, b.Species) {
		return false
	}
	return w.Rand.Float64() < w.ReactionProbability()
}

//react replaces particles i and j with an ester and a water. The next list is
//built fresh: survivors in order, then the two products.
func (w *World) react(i, j int, p Params) ReactionEvent {
	a, b := w.particles[i], w.particles[j]
	if a.Species != Acid {
		a, b = b, a
	}
	mid := a.Pos.Add(b.Pos).Scale(0.5)

	kick := FromAngle(w.uniform(0, 2*math.Pi)).Scale(p.Kick)
	off := FromAngle(w.uniform(0, 2*math.Pi)).Scale(productOffset)
	v1 := w.randomVelocity(Ester)
	v2 := w.randomVelocity(Water)

	ester := NewParticle(Ester, mid.Sub(off), v1.Add(kick))
	water := NewParticle(Water, mid.Add(off), v2.Sub(kick))
	w.bounce(&ester)
	w.bounce(&water)

	next := make([]Particle, 0, len(w.particles))
	for k := range w.particles {
		if k == i || k == j {
			continue
		}
		next = append(next, w.particles[k])
	}
	next = append(next, ester, water)
	w.particles = next
	w.stats.Reactions++

	w.Log.Debugf("[%v] reaction #%v at (%.1f, %.1f)", w.Frame(), w.stats.Reactions, mid.X, mid.Y)

	return ReactionEvent{
		Tick:    w.tick,
		Point:   mid,
		Acid:    a,
		Alcohol: b,
		Ester:   ester,
		Water:   water,
	}
}
