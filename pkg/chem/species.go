package chem

import "fmt"

//Species tags one of the four particle kinds in the reaction
//acid + alcohol -> ester + water
type Species int

const (
	Acid Species = iota
	Alcohol
	Ester
	Water
	NumSpecies
)

var speciesNames = [NumSpecies]string{
	Acid:    "Acid",
	Alcohol: "Alcohol",
	Ester:   "Ester",
	Water:   "Water",
}

func (s Species) String() string {
	if s < 0 || s >= NumSpecies {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

//Props are the fixed physical properties of a species. MaxSpeed is in
//pixels per frame before temperature scaling. Spin is the rendering-only
//angular velocity in radians per frame.
type Props struct {
	Radius   float64
	Mass     float64
	MaxSpeed float64
	Spin     float64
}

//acid is heavy and slow, alcohol small and fast
var props = [NumSpecies]Props{
	Acid:    {Radius: 15, Mass: 5.0, MaxSpeed: 0.55, Spin: 0.010},
	Alcohol: {Radius: 8, Mass: 1.0, MaxSpeed: 1.55, Spin: 0.030},
	Ester:   {Radius: 16, Mass: 4.6, MaxSpeed: 0.75, Spin: 0.008},
	Water:   {Radius: 7, Mass: 0.8, MaxSpeed: 1.70, Spin: 0.035},
}

//Props returns the species property row.
func (s Species) Props() Props {
	return props[s]
}

//Reactive reports whether two species form the reacting pair {Acid, Alcohol}.
func Reactive(a, b Species) bool {
	switch a {
	case Acid:
		return b == Alcohol
	case Alcohol:
		return b == Acid
	case Ester, Water:
		return false
	}
	return false
}

//Counts holds the number of particles per species.
type Counts [NumSpecies]int

//Exhausted is true once one of the two reactants is used up.
func (c Counts) Exhausted() bool {
	return c[Acid] == 0 || c[Alcohol] == 0
}

func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}
	return n
}

func (c Counts) String() string {
	return fmt.Sprintf("{Acid:%d Alcohol:%d Ester:%d Water:%d}", c[Acid], c[Alcohol], c[Ester], c[Water])
}
