package chem

import "math"

const (
	restitution = 0.98
	minDist     = 1e-9
)

//resolveCollision separates two overlapping disks along the contact normal and
//applies the impulse of a near elastic collision. The heavier disk moves less.
//Pairs already moving apart keep their velocities.
func resolveCollision(a, b *Particle) {
	d := b.Pos.Sub(a.Pos)
	dist := math.Max(d.Len(), minDist)
	n := d.Scale(1 / dist)
	if d.Len() == 0 {
		//coincident centers, pick any axis
		n = Vec{1, 0}
	}

	if overlap := (a.Radius + b.Radius) - dist; overlap > 0 {
		total := a.Mass + b.Mass
		a.Pos = a.Pos.Sub(n.Scale(overlap * b.Mass / total))
		b.Pos = b.Pos.Add(n.Scale(overlap * a.Mass / total))
	}

	rel := b.Vel.Sub(a.Vel).Dot(n)
	if rel >= 0 {
		return
	}

	j := -(1 + restitution) * rel / (1/a.Mass + 1/b.Mass)
	a.Vel = a.Vel.Sub(n.Scale(j / a.Mass))
	b.Vel = b.Vel.Add(n.Scale(j / b.Mass))
}
