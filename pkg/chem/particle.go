package chem

//Particle is a single molecule in the arena. Radius and Mass are copied from
//the species table at creation and never change. Angle and Spin only matter to
//renderers.
type Particle struct {
	Species Species
	Pos     Vec
	Vel     Vec
	Radius  float64
	Mass    float64
	Angle   float64
	Spin    float64
}

//NewParticle creates a particle of species s. The initial orientation follows
//the direction of travel.
func NewParticle(s Species, pos, vel Vec) Particle {
	p := s.Props()
	return Particle{
		Species: s,
		Pos:     pos,
		Vel:     vel,
		Radius:  p.Radius,
		Mass:    p.Mass,
		Angle:   vel.Angle(),
		Spin:    p.Spin,
	}
}

//Overlaps reports whether the two disks interpenetrate.
func (p *Particle) Overlaps(q *Particle) bool {
	return p.Pos.Dist(q.Pos) < p.Radius+q.Radius
}
