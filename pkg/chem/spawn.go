package chem

import "math"

const (
	spawnAttempts = 6000 //per species batch
	spawnMargin   = 2.0  //extra gap between freshly placed disks
	minSpeedFrac  = 0.35 //slowest spawn speed as a fraction of the max
)

func (w *World) uniform(min, max float64) float64 {
	return min + w.Rand.Float64()*(max-min)
}

//randomVelocity draws a random direction and a speed between 35% and 100%
//of the species' temperature scaled max speed.
func (w *World) randomVelocity(s Species) Vec {
	vmax := s.Props().MaxSpeed * float64(w.temperature)
	a := w.uniform(0, 2*math.Pi)
	return FromAngle(a).Scale(w.uniform(minSpeedFrac*vmax, vmax))
}

//bounds converts a fractional region into pixel bounds for centers of disks
//with radius r, shrunk so the disk always fits in the arena.
func (w *World) bounds(region Rect, r float64) (x0, x1, y0, y1 float64) {
	x0, x1 = clampRange(region.X0*w.Width, region.X1*w.Width, r, w.Width-r)
	y0, y1 = clampRange(region.Y0*w.Height, region.Y1*w.Height, r, w.Height-r)
	return
}

func clampRange(lo, hi, min, max float64) (float64, float64) {
	if max < min {
		//arena narrower than the disk; pin to the middle
		mid := (min + max) / 2
		return mid, mid
	}
	lo = math.Min(math.Max(lo, min), max)
	hi = math.Min(math.Max(hi, min), max)
	return lo, hi
}

//spawnMany places up to n particles of species s inside region by rejection
//sampling against everything in placed. It gives up after spawnAttempts tries
//and returns placed extended with whatever fit.
func (w *World) spawnMany(s Species, n int, region Rect, placed []Particle) []Particle {
	r := s.Props().Radius
	x0, x1, y0, y1 := w.bounds(region, r)

	var count, tries int
	for count < n && tries < spawnAttempts {
		tries++
		pos := Vec{w.uniform(x0, x1), w.uniform(y0, y1)}
		c := NewParticle(s, pos, w.randomVelocity(s))

		ok := true
		for i := range placed {
			q := &placed[i]
			if c.Pos.Dist(q.Pos) < c.Radius+q.Radius+spawnMargin {
				ok = false
				break
			}
		}
		if ok {
			placed = append(placed, c)
			count++
		}
	}

	if count < n {
		w.Log.Warnf("only placed %v of %v %v particles after %v attempts", count, n, s, tries)
	}
	return placed
}
