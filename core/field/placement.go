package field

import (
	"math"
	"math/rand"
)

// Placement writes the initial position of n particles into positions.
type Placement interface {
	Place(positions []float64, n int)
}

// FibonacciSphere spreads particles quasi-uniformly over a sphere surface.
type FibonacciSphere struct {
	Radius float64
}

func (f FibonacciSphere) Place(positions []float64, n int) {
	if n == 0 {
		return
	}
	spiral := math.Sqrt(float64(n) * math.Pi)
	for i := 0; i < n; i++ {
		i3 := i * 3
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := spiral * phi
		positions[i3] = f.Radius * math.Cos(theta) * math.Sin(phi)
		positions[i3+1] = f.Radius * math.Sin(theta) * math.Sin(phi)
		positions[i3+2] = f.Radius * math.Cos(phi)
	}
}

// RandomCube scatters particles uniformly inside an axis-aligned cube of
// side Side centered on the origin.
type RandomCube struct {
	Side float64
	Rand *rand.Rand
}

func (c RandomCube) Place(positions []float64, n int) {
	rnd := c.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	for i := 0; i < n*3; i++ {
		positions[i] = (rnd.Float64() - 0.5) * c.Side
	}
}
