// Package profile holds the compiled-in constants of each field variant.
package profile

import (
	"math/rand"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ingyamilmolinar/nodefield/core/field"
	"github.com/ingyamilmolinar/nodefield/core/scene"
)

// ErrUnknownProfile is returned by ByName for names not in the registry.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile bundles everything one variant needs: simulation parameters,
// camera, pointer sentinel and draw settings.
type Profile struct {
	Name     string
	Field    field.Params
	Camera   scene.CameraConfig
	Rotation scene.Rotation
	Sentinel r2.Vec

	LineColor     colorful.Color
	LineOpacity   float64
	PointSize     float64 // world units, size-attenuated
	MaxPixelRatio float64
}

var (
	indigo  = colorful.MustParseHex("#818cf8")
	fuchsia = colorful.MustParseHex("#e879f9")
	slate   = colorful.MustParseHex("#94a3b8")
)

// Sphere is the Fibonacci-sphere variant: proximity links, falloff
// repulsion, color blending and ambient bobbing.
func Sphere() Profile {
	return Profile{
		Name: "sphere",
		Field: field.Params{
			Count:             250,
			Placement:         field.FibonacciSphere{Radius: 35},
			Connector:         field.ProximityConnector{Distance: 12},
			Repulsion:         field.FalloffRepulsion{Strength: 0.25},
			InteractionRadius: 18,
			ReturnForce:       0.01,
			Damping:           0.95,
			BaseColor:         indigo,
			InteractionColor:  fuchsia,
			ColorBlend:        0.08,
			Ambient:           field.Ambient{Amplitude: 0.0005, Frequency: 0.5},
		},
		Camera:        scene.CameraConfig{FOV: 75, Near: 0.1, Far: 1000, Distance: 60},
		Rotation:      scene.Rotation{StepX: 0.0001, StepY: 0.0002},
		Sentinel:      r2.Vec{X: -100, Y: -100},
		LineColor:     slate,
		LineOpacity:   0.15,
		PointSize:     0.5,
		MaxPixelRatio: 2,
	}
}

// Cube is the scattered variant: stride links, linear repulsion, one
// uniform color and no ambient motion.
func Cube(seed int64) Profile {
	return Profile{
		Name: "cube",
		Field: field.Params{
			Count:             200,
			Placement:         field.RandomCube{Side: 40, Rand: rand.New(rand.NewSource(seed))},
			Connector:         field.StrideConnector{Stride: 4},
			Repulsion:         field.LinearRepulsion{Strength: 0.02},
			InteractionRadius: 10,
			ReturnForce:       0.02,
			Damping:           0.92,
			BaseColor:         indigo,
			InteractionColor:  indigo,
		},
		Camera:        scene.CameraConfig{FOV: 75, Near: 0.1, Far: 1000, Distance: 50},
		Rotation:      scene.Rotation{StepX: 0.0001, StepY: 0.0002},
		Sentinel:      r2.Vec{X: -10, Y: -10},
		LineColor:     slate,
		LineOpacity:   0.2,
		PointSize:     0.4,
		MaxPixelRatio: 2,
	}
}

var registry = map[string]func(seed int64) Profile{
	"sphere": func(int64) Profile { return Sphere() },
	"cube":   Cube,
}

// ByName builds the named profile. seed only matters for randomized placement.
func ByName(name string, seed int64) (Profile, error) {
	build, ok := registry[name]
	if !ok {
		return Profile{}, errors.Wrapf(ErrUnknownProfile, "%q (have %v)", name, Names())
	}
	return build(seed), nil
}

// Names lists the registered profiles in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
