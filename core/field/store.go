package field

import "github.com/lucasb-eyer/go-colorful"

// Store holds per-particle state in flat buffers indexed i*3+axis.
// Origins are written once by NewStore's caller and never again.
type Store struct {
	N          int
	Positions  []float64
	Velocities []float64
	Origins    []float64
	Colors     []float64
}

func NewStore(n int) *Store {
	return &Store{
		N:          n,
		Positions:  make([]float64, n*3),
		Velocities: make([]float64, n*3),
		Origins:    make([]float64, n*3),
		Colors:     make([]float64, n*3),
	}
}

// Position returns particle i's current position.
func (s *Store) Position(i int) (x, y, z float64) {
	i3 := i * 3
	return s.Positions[i3], s.Positions[i3+1], s.Positions[i3+2]
}

// Velocity returns particle i's current velocity.
func (s *Store) Velocity(i int) (x, y, z float64) {
	i3 := i * 3
	return s.Velocities[i3], s.Velocities[i3+1], s.Velocities[i3+2]
}

// Origin returns particle i's rest position.
func (s *Store) Origin(i int) (x, y, z float64) {
	i3 := i * 3
	return s.Origins[i3], s.Origins[i3+1], s.Origins[i3+2]
}

// Color returns particle i's current color.
func (s *Store) Color(i int) colorful.Color {
	i3 := i * 3
	return colorful.Color{R: s.Colors[i3], G: s.Colors[i3+1], B: s.Colors[i3+2]}
}

func (s *Store) setColor(i int, c colorful.Color) {
	i3 := i * 3
	s.Colors[i3], s.Colors[i3+1], s.Colors[i3+2] = c.R, c.G, c.B
}

// settle copies positions into origins, zeroes velocities and paints every
// particle with c. Called once after placement.
func (s *Store) settle(c colorful.Color) {
	copy(s.Origins, s.Positions)
	for i := range s.Velocities {
		s.Velocities[i] = 0
	}
	for i := 0; i < s.N; i++ {
		s.setColor(i, c)
	}
}
