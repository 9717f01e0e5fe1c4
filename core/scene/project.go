package scene

import "gonum.org/v1/gonum/spatial/r3"

// Projector turns flat field buffers into surface coordinates for one frame.
type Projector struct {
	Camera   *Camera
	Rotation Rotation
}

// Project writes one ScreenPoint per xyz triple of buf into dst, reusing its
// capacity, and returns it. Line buffers project to two points per segment.
func (p *Projector) Project(dst []ScreenPoint, buf []float64, w, h int) []ScreenPoint {
	n := len(buf) / 3
	if cap(dst) < n {
		dst = make([]ScreenPoint, n)
	}
	dst = dst[:n]
	m := p.Camera.viewProj.Mul4(p.Rotation.Matrix())
	for i := 0; i < n; i++ {
		i3 := i * 3
		dst[i] = p.Camera.project(m, r3.Vec{X: buf[i3], Y: buf[i3+1], Z: buf[i3+2]}, w, h)
	}
	return dst
}
