package scene

import "github.com/go-gl/mathgl/mgl64"

// Rotation is the slow whole-scene spin. It only affects what is drawn;
// the simulation keeps working in field space.
type Rotation struct {
	X, Y         float64 // radians
	StepX, StepY float64 // per frame
}

func (r *Rotation) Advance() {
	r.X += r.StepX
	r.Y += r.StepY
}

// Matrix is the model matrix, X applied after Y.
func (r Rotation) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(r.X).Mul4(mgl64.HomogRotate3DY(r.Y))
}
