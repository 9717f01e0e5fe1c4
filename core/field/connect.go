package field

import "gonum.org/v1/gonum/spatial/r3"

// Connection is an index pair (i < j) drawn as one line segment.
type Connection [2]int

// Connector picks the fixed connection set from the initial positions.
type Connector interface {
	Connect(positions []float64, n int) []Connection
}

// ProximityConnector links every pair closer than Distance. O(n²), run once.
type ProximityConnector struct {
	Distance float64
}

func (p ProximityConnector) Connect(positions []float64, n int) []Connection {
	var conns []Connection
	for i := 0; i < n; i++ {
		a := vecAt(positions, i)
		for j := i + 1; j < n; j++ {
			if r3.Norm(r3.Sub(a, vecAt(positions, j))) < p.Distance {
				conns = append(conns, Connection{i, j})
			}
		}
	}
	return conns
}

// StrideConnector links i to i+1 for every i that is a multiple of Stride.
// Distance plays no part.
type StrideConnector struct {
	Stride int
}

func (s StrideConnector) Connect(_ []float64, n int) []Connection {
	if s.Stride <= 0 {
		return nil
	}
	var conns []Connection
	for i := 0; i+1 < n; i += s.Stride {
		conns = append(conns, Connection{i, i + 1})
	}
	return conns
}

func vecAt(buf []float64, i int) r3.Vec {
	i3 := i * 3
	return r3.Vec{X: buf[i3], Y: buf[i3+1], Z: buf[i3+2]}
}
