// Package scene holds the perspective camera, the ambient scene rotation and
// the clock shared by every renderer.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// CameraConfig is the fixed lens and placement of a profile's camera.
type CameraConfig struct {
	FOV      float64 // vertical, degrees
	Near     float64
	Far      float64
	Distance float64 // along +z, looking at the origin
}

// Camera is a perspective camera on the z axis looking down -z.
type Camera struct {
	CameraConfig
	Aspect   float64
	Position mgl64.Vec3

	proj     mgl64.Mat4
	view     mgl64.Mat4
	viewProj mgl64.Mat4
	inverse  mgl64.Mat4
}

func NewCamera(cfg CameraConfig, aspect float64) *Camera {
	c := &Camera{
		CameraConfig: cfg,
		Aspect:       1,
		Position:     mgl64.Vec3{0, 0, cfg.Distance},
	}
	c.view = mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
	c.SetAspect(aspect)
	return c
}

// SetAspect rebuilds the projection for a new width/height ratio. Non-finite
// or non-positive ratios are ignored.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsInf(aspect, 0) || math.IsNaN(aspect) {
		return
	}
	c.Aspect = aspect
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	c.viewProj = c.proj.Mul4(c.view)
	c.inverse = c.viewProj.Inv()
}

// Ray returns the camera position and the unit direction through ndc.
func (c *Camera) Ray(ndc r2.Vec) (origin, dir r3.Vec) {
	p := c.inverse.Mul4x1(mgl64.Vec4{ndc.X, ndc.Y, 0.5, 1})
	pt := p.Vec3().Mul(1 / p.W())
	d := pt.Sub(c.Position).Normalize()
	return toR3(c.Position), r3.Vec{X: d.X(), Y: d.Y(), Z: d.Z()}
}

// Target walks the ray through ndc as far as the camera sits from the
// origin, giving the pointer's interaction point at field depth.
func (c *Camera) Target(ndc r2.Vec) r3.Vec {
	origin, dir := c.Ray(ndc)
	return r3.Add(origin, r3.Scale(r3.Norm(origin), dir))
}

// ScreenPoint is a projected position in surface pixels. Depth is the view
// space distance in front of the camera.
type ScreenPoint struct {
	X, Y    float64
	Depth   float64
	Visible bool
}

// Project maps a world point onto a w×h surface.
func (c *Camera) Project(p r3.Vec, w, h int) ScreenPoint {
	return c.project(c.viewProj, p, w, h)
}

func (c *Camera) project(m mgl64.Mat4, p r3.Vec, w, h int) ScreenPoint {
	clip := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	cw := clip.W()
	if cw <= 0 {
		return ScreenPoint{}
	}
	nx, ny, nz := clip.X()/cw, clip.Y()/cw, clip.Z()/cw
	return ScreenPoint{
		X:       (nx + 1) / 2 * float64(w),
		Y:       (1 - ny) / 2 * float64(h),
		Depth:   cw,
		Visible: nz >= -1 && nz <= 1,
	}
}

// PointSize is the on-screen diameter of a size-attenuated point of world
// size s at depth on a surface h pixels tall.
func (c *Camera) PointSize(s, depth float64, h int) float64 {
	if depth <= 0 {
		return 0
	}
	return s * float64(h) / 2 / depth
}

func toR3(v mgl64.Vec3) r3.Vec { return r3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()} }
