package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ingyamilmolinar/nodefield/core/field"
	"github.com/ingyamilmolinar/nodefield/core/profile"
	"github.com/ingyamilmolinar/nodefield/core/scene"
	game_log "github.com/ingyamilmolinar/nodefield/internal/log"
)

var testLogger = game_log.Discard()

// fixed places particles at the given coordinates.
type fixed []float64

func (f fixed) Place(positions []float64, n int) { copy(positions, f[:n*3]) }

func profiles() []profile.Profile {
	return []profile.Profile{profile.Sphere(), profile.Cube(7)}
}

func TestInitialStateAtRest(t *testing.T) {
	for _, p := range profiles() {
		f := field.New(p.Field, testLogger)
		s := f.Store
		require.Equal(t, p.Field.Count, s.N, p.Name)
		for i := 0; i < s.N; i++ {
			px, py, pz := s.Position(i)
			ox, oy, oz := s.Origin(i)
			vx, vy, vz := s.Velocity(i)
			assert.Equal(t, [3]float64{ox, oy, oz}, [3]float64{px, py, pz}, "%s particle %d", p.Name, i)
			assert.Equal(t, [3]float64{}, [3]float64{vx, vy, vz}, "%s particle %d", p.Name, i)
			assert.Equal(t, p.Field.BaseColor, s.Color(i))
		}
	}
}

func TestFibonacciSphereOnSurface(t *testing.T) {
	p := profile.Sphere()
	f := field.New(p.Field, testLogger)
	for i := 0; i < f.Store.N; i++ {
		x, y, z := f.Store.Position(i)
		assert.InDelta(t, 35, math.Sqrt(x*x+y*y+z*z), 1e-9, "particle %d", i)
	}
	// i=0 sits on the -z pole.
	_, _, z0 := f.Store.Position(0)
	assert.InDelta(t, -35, z0, 1e-9)
}

func TestRandomCubeBoundsAndSeed(t *testing.T) {
	a := field.New(profile.Cube(42).Field, testLogger)
	b := field.New(profile.Cube(42).Field, testLogger)
	c := field.New(profile.Cube(43).Field, testLogger)

	for _, v := range a.Store.Positions {
		assert.GreaterOrEqual(t, v, -20.0)
		assert.Less(t, v, 20.0)
	}
	assert.Equal(t, a.Store.Positions, b.Store.Positions)
	assert.NotEqual(t, a.Store.Positions, c.Store.Positions)
}

func TestProximityConnectionsUnderThreshold(t *testing.T) {
	p := profile.Sphere()
	f := field.New(p.Field, testLogger)
	require.NotEmpty(t, f.Connections)

	pos := f.Store.Positions
	dist := func(i, j int) float64 {
		a := r3.Vec{X: pos[i*3], Y: pos[i*3+1], Z: pos[i*3+2]}
		b := r3.Vec{X: pos[j*3], Y: pos[j*3+1], Z: pos[j*3+2]}
		return r3.Norm(r3.Sub(a, b))
	}

	got := map[field.Connection]bool{}
	for _, c := range f.Connections {
		assert.Less(t, c[0], c[1])
		assert.Less(t, dist(c[0], c[1]), 12.0, "pair %v", c)
		got[c] = true
	}
	assert.Len(t, got, len(f.Connections), "duplicate connections")

	for i := 0; i < f.Store.N; i++ {
		for j := i + 1; j < f.Store.N; j++ {
			want := dist(i, j) < 12
			assert.Equal(t, want, got[field.Connection{i, j}], "pair (%d,%d) d=%f", i, j, dist(i, j))
		}
	}
}

func TestStrideConnections(t *testing.T) {
	f := field.New(profile.Cube(1).Field, testLogger)
	require.Len(t, f.Connections, 50)
	for k, c := range f.Connections {
		assert.Equal(t, field.Connection{k * 4, k*4 + 1}, c)
	}

	odd := field.StrideConnector{Stride: 4}.Connect(nil, 9)
	assert.Equal(t, []field.Connection{{0, 1}, {4, 5}}, odd)
	assert.Nil(t, field.StrideConnector{}.Connect(nil, 9))
}

func TestSentinelExertsNoForce(t *testing.T) {
	for _, p := range profiles() {
		for _, aspect := range []float64{0.5, 1, 16.0 / 9.0, 3} {
			f := field.New(p.Field, testLogger)
			cam := scene.NewCamera(p.Camera, aspect)
			target := cam.Target(p.Sentinel)
			for frame := 0; frame < 120; frame++ {
				for i := 0; i < f.Store.N; i++ {
					require.Zero(t, f.Force(i, target), "%s aspect=%v frame=%d particle=%d", p.Name, aspect, frame, i)
				}
				f.Step(target, float64(frame)/60)
			}
			for i := 0; i < f.Store.N; i++ {
				assert.Equal(t, p.Field.BaseColor, f.Store.Color(i))
			}
		}
	}
}

func TestDampingConvergesToOrigin(t *testing.T) {
	p := profile.Sphere()
	p.Field.Ambient = field.Ambient{}
	f := field.New(p.Field, testLogger)
	cam := scene.NewCamera(p.Camera, 1)

	// Stir the field with the pointer at the center for a while.
	center := cam.Target(r2.Vec{})
	for frame := 0; frame < 30; frame++ {
		f.Step(center, 0)
	}
	moved := 0.0
	for i := range f.Store.Positions {
		moved = math.Max(moved, math.Abs(f.Store.Positions[i]-f.Store.Origins[i]))
	}
	require.Greater(t, moved, 0.1)

	away := cam.Target(p.Sentinel)
	for frame := 0; frame < 1500; frame++ {
		f.Step(away, 0)
	}
	for i := range f.Store.Positions {
		assert.InDelta(t, f.Store.Origins[i], f.Store.Positions[i], 1e-6)
		assert.InDelta(t, 0, f.Store.Velocities[i], 1e-6)
	}
}

func TestVelocityDecaysWithoutForces(t *testing.T) {
	p := profile.Sphere()
	p.Field.Ambient = field.Ambient{}
	p.Field.ReturnForce = 0
	f := field.New(p.Field, testLogger)
	for i := range f.Store.Velocities {
		f.Store.Velocities[i] = 1
	}
	away := scene.NewCamera(p.Camera, 1).Target(p.Sentinel)
	prev := math.Inf(1)
	for frame := 0; frame < 50; frame++ {
		f.Step(away, 0)
		vx, vy, vz := f.Store.Velocity(0)
		speed := math.Sqrt(vx*vx + vy*vy + vz*vz)
		require.LessOrEqual(t, speed, prev)
		prev = speed
	}
}

func TestPointerAtCenterPushesAway(t *testing.T) {
	p := profile.Sphere()
	p.Field.Count = 3
	p.Field.Placement = fixed{
		0, 0, 0, // on the target
		3, 4, 10, // inside the radius
		30, 0, 0, // outside
	}
	f := field.New(p.Field, testLogger)
	target := scene.NewCamera(p.Camera, 16.0/9.0).Target(r2.Vec{})
	f.Step(target, 0)

	vx, vy, _ := f.Store.Velocity(0)
	assert.Greater(t, math.Hypot(vx, vy), 0.2)

	vx, vy, _ = f.Store.Velocity(1)
	assert.Greater(t, vx*3+vy*4, 0.0, "velocity should point away from target")
	assert.InDelta(t, 0.6, vx/math.Hypot(vx, vy), 1e-6)

	vx, vy, _ = f.Store.Velocity(2)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}

func TestColorBlendsTowardInteraction(t *testing.T) {
	p := profile.Sphere()
	p.Field.Count = 1
	p.Field.Placement = fixed{1, 1, 0}
	p.Field.ReturnForce = 0
	f := field.New(p.Field, testLogger)

	f.Step(r3.Vec{}, 0)
	want := p.Field.BaseColor.BlendLinearRgb(p.Field.InteractionColor, 0.08)
	got := f.Store.Color(0)
	assert.InDelta(t, want.R, got.R, 1e-12)
	assert.InDelta(t, want.G, got.G, 1e-12)
	assert.InDelta(t, want.B, got.B, 1e-12)

	// The mix happens in linear light, not on the sRGB components.
	gamma := p.Field.BaseColor.BlendRgb(p.Field.InteractionColor, 0.08)
	assert.Greater(t, math.Abs(got.R-gamma.R), 1e-3)

	far := r3.Vec{X: 1000, Y: 1000}
	for frame := 0; frame < 400; frame++ {
		f.Step(far, 0)
	}
	got = f.Store.Color(0)
	assert.InDelta(t, p.Field.BaseColor.R, got.R, 1e-9)
	assert.InDelta(t, p.Field.BaseColor.B, got.B, 1e-9)
}

func TestCubeKeepsUniformColor(t *testing.T) {
	p := profile.Cube(3)
	f := field.New(p.Field, testLogger)
	target := scene.NewCamera(p.Camera, 1).Target(r2.Vec{})
	for frame := 0; frame < 20; frame++ {
		f.Step(target, 0)
	}
	for i := 0; i < f.Store.N; i++ {
		assert.Equal(t, p.Field.BaseColor, f.Store.Color(i))
	}
}

func TestLineSyncFollowsParticles(t *testing.T) {
	for _, p := range profiles() {
		f := field.New(p.Field, testLogger)
		before := append([]field.Connection(nil), f.Connections...)
		lineLen := len(f.Lines)
		initial := append([]float64(nil), f.Lines...)

		target := scene.NewCamera(p.Camera, 1).Target(r2.Vec{X: 0.1, Y: 0.1})
		for frame := 0; frame < 10; frame++ {
			f.Step(target, float64(frame)/60)
			f.SyncLines()
		}

		require.Equal(t, before, f.Connections, p.Name)
		require.Len(t, f.Lines, lineLen)
		assert.NotEqual(t, initial, f.Lines, "%s lines never moved", p.Name)
		for k, c := range f.Connections {
			for axis := 0; axis < 3; axis++ {
				assert.Equal(t, f.Store.Positions[c[0]*3+axis], f.Lines[k*6+axis])
				assert.Equal(t, f.Store.Positions[c[1]*3+axis], f.Lines[k*6+3+axis])
			}
		}
	}
}

func TestRepulsionModels(t *testing.T) {
	falloff := field.FalloffRepulsion{Strength: 0.25}
	assert.Equal(t, 0.25, falloff.Impulse(0, 18))
	assert.InDelta(t, 0.125, falloff.Impulse(9, 18), 1e-12)
	assert.Zero(t, falloff.Impulse(18, 18))
	assert.Zero(t, falloff.Impulse(40, 18))

	linear := field.LinearRepulsion{Strength: 0.02}
	assert.InDelta(t, 0.2, linear.Impulse(0, 10), 1e-12)
	assert.InDelta(t, 0.1, linear.Impulse(5, 10), 1e-12)
	assert.Zero(t, linear.Impulse(10, 10))
	assert.Zero(t, linear.Impulse(11, 10))
}
