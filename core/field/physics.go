package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Repulsion turns a planar distance into an impulse magnitude. A result of
// zero means the particle is not under interaction.
type Repulsion interface {
	Impulse(d, radius float64) float64
}

// FalloffRepulsion scales Strength by max(0, 1-d/radius).
type FalloffRepulsion struct {
	Strength float64
}

func (r FalloffRepulsion) Impulse(d, radius float64) float64 {
	if d >= radius {
		return 0
	}
	return math.Max(0, 1-d/radius) * r.Strength
}

// LinearRepulsion grows with penetration depth: (radius-d)*Strength.
type LinearRepulsion struct {
	Strength float64
}

func (r LinearRepulsion) Impulse(d, radius float64) float64 {
	if d >= radius {
		return 0
	}
	return (radius - d) * r.Strength
}

// Ambient bobs particles along z: vz += sin(elapsed*Frequency + originX)*Amplitude.
// A zero Amplitude disables it.
type Ambient struct {
	Amplitude float64
	Frequency float64
}

func (a Ambient) kick(elapsed, originX float64) float64 {
	if a.Amplitude == 0 {
		return 0
	}
	return math.Sin(elapsed*a.Frequency+originX) * a.Amplitude
}

// Step advances every particle by one frame against the 3D pointer target.
// Per particle: repulsion, color blend, return force, ambient motion,
// damping, then an explicit Euler step.
func (f *Field) Step(target r3.Vec, elapsed float64) {
	p := &f.Params
	s := f.Store
	blend := p.ColorBlend > 0

	for i := 0; i < s.N; i++ {
		i3 := i * 3
		pos := s.Positions[i3 : i3+3 : i3+3]
		vel := s.Velocities[i3 : i3+3 : i3+3]
		org := s.Origins[i3 : i3+3 : i3+3]

		dx, dy, d := planar(pos[0], pos[1], target)

		force := 0.0
		if d < p.InteractionRadius {
			force = p.Repulsion.Impulse(d, p.InteractionRadius)
			if force > 0 {
				angle := math.Atan2(dy, dx)
				vel[0] += math.Cos(angle) * force
				vel[1] += math.Sin(angle) * force
			}
		}

		if blend {
			to := p.BaseColor
			if force > 0 {
				to = p.InteractionColor
			}
			s.setColor(i, s.Color(i).BlendLinearRgb(to, p.ColorBlend))
		}

		vel[0] += (org[0] - pos[0]) * p.ReturnForce
		vel[1] += (org[1] - pos[1]) * p.ReturnForce
		vel[2] += (org[2]-pos[2])*p.ReturnForce + p.Ambient.kick(elapsed, org[0])

		vel[0] *= p.Damping
		vel[1] *= p.Damping
		vel[2] *= p.Damping

		pos[0] += vel[0]
		pos[1] += vel[1]
		pos[2] += vel[2]
	}
}

// Force reports the impulse particle i would receive from target this frame,
// without touching any state.
func (f *Field) Force(i int, target r3.Vec) float64 {
	x, y, _ := f.Store.Position(i)
	_, _, d := planar(x, y, target)
	if d >= f.Params.InteractionRadius {
		return 0
	}
	return f.Params.Repulsion.Impulse(d, f.Params.InteractionRadius)
}

func planar(x, y float64, target r3.Vec) (dx, dy, d float64) {
	dx = x - target.X
	dy = y - target.Y
	return dx, dy, math.Sqrt(dx*dx + dy*dy)
}
