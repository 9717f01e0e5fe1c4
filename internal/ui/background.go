package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/nodefield/core/field"
	"github.com/ingyamilmolinar/nodefield/core/pointer"
	"github.com/ingyamilmolinar/nodefield/core/profile"
	"github.com/ingyamilmolinar/nodefield/core/scene"
	game_log "github.com/ingyamilmolinar/nodefield/internal/log"
)

// Background is the particle backdrop as an ebiten.Game. It owns every
// piece of simulation state between Mount and Unmount; nothing survives an
// unmount.
type Background struct {
	/* configuration */
	profile profile.Profile
	mountID string
	logger  *game_log.Logger

	/* mounted state */
	field    *field.Field
	pointer  *pointer.Tracker
	proj     *scene.Projector
	clock    *scene.Clock
	loop     *Loop
	events   *Dispatcher
	removers []func()
	poller   pointerPoller
	queue    eventQueue
	drained  []Event
	mounted  bool
	attached bool

	/* surface */
	width, height int
	points        []scene.ScreenPoint
	ends          []scene.ScreenPoint
}

func New(p profile.Profile, mountID string, logger *game_log.Logger) *Background {
	return &Background{
		profile: p,
		mountID: mountID,
		logger:  logger,
		events:  NewDispatcher(),
	}
}

/* ───────────────────── lifecycle ───────────────────── */

// Mount allocates the field, registers listeners and starts the loop. With
// no mount target it does nothing and reports false.
func (b *Background) Mount() bool {
	if b.mounted {
		return true
	}
	if !mountTarget(b.mountID) {
		b.logger.Warnf("[BG] mount target %q not found, background disabled", b.mountID)
		return false
	}

	aspect := 1.0
	if b.width > 0 && b.height > 0 {
		aspect = float64(b.width) / float64(b.height)
	}
	b.field = field.New(b.profile.Field, b.logger)
	b.pointer = pointer.New(b.profile.Sentinel)
	b.proj = &scene.Projector{
		Camera:   scene.NewCamera(b.profile.Camera, aspect),
		Rotation: b.profile.Rotation,
	}
	b.clock = scene.NewClock()
	b.poller = pointerPoller{}

	b.removers = append(b.removers,
		b.events.Listen(PointerMove, b.onPointerMove),
		b.events.Listen(PointerLeave, b.onPointerLeave),
		b.events.Listen(Resize, b.onResize),
	)
	b.removers = append(b.removers, hostHooks(b)...)
	b.loop = NewLoop(b.frame, b.logger)
	b.loop.Start()
	b.mounted = true
	b.logger.Infof("[BG] Mount: profile=%s particles=%d connections=%d surface=%dx%d",
		b.profile.Name, b.field.Store.N, len(b.field.Connections), b.width, b.height)
	return true
}

// Unmount removes every listener, stops the loop and drops the simulation.
func (b *Background) Unmount() {
	if !b.mounted {
		return
	}
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil
	b.queue.drain(nil)
	b.loop.Stop()
	b.mounted = false
	b.attached = false
	b.field, b.pointer, b.proj, b.clock = nil, nil, nil, nil
	b.points, b.ends = nil, nil
	b.logger.Infof("[BG] Unmount: frames=%d", b.loop.Frames())
}

func (b *Background) Mounted() bool { return b.mounted }

/* ───────────────────── listeners ───────────────────── */

func (b *Background) onPointerMove(ev Event) {
	b.pointer.Move(ev.X, ev.Y, float64(ev.Width), float64(ev.Height))
}

func (b *Background) onPointerLeave(Event) { b.pointer.Leave() }

func (b *Background) onResize(ev Event) {
	if ev.Height > 0 {
		b.proj.Camera.SetAspect(float64(ev.Width) / float64(ev.Height))
	}
	b.logger.Debugf("[BG] Resize: %dx%d aspect=%.4f", ev.Width, ev.Height, b.proj.Camera.Aspect)
}

/* ───────────────────── frame ───────────────────── */

// frame is one simulation tick: pointer projection, physics, line sync and
// the ambient scene spin.
func (b *Background) frame() {
	target := b.proj.Camera.Target(b.pointer.NDC())
	b.field.Step(target, b.clock.Elapsed())
	b.field.SyncLines()
	b.proj.Rotation.Advance()
}

/* ───────────────────── ebiten.Game ───────────────────── */

func (b *Background) Update() error {
	if !b.mounted {
		return nil
	}
	if !b.attached {
		attachSurface(b.mountID)
		b.attached = true
	}
	var unmount bool
	b.drained, unmount = b.queue.drain(b.drained[:0])
	if unmount {
		b.Unmount()
		return nil
	}
	if !hostTracksPointer {
		b.drained = append(b.drained, b.poller.poll(b.width, b.height)...)
	}
	for _, ev := range b.drained {
		b.events.Dispatch(ev)
	}
	b.loop.Tick()
	return nil
}

func (b *Background) Draw(screen *ebiten.Image) {
	if !b.mounted {
		return
	}
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	lineColor := withAlpha(b.profile.LineColor, b.profile.LineOpacity)
	b.ends = b.proj.Project(b.ends, b.field.Lines, w, h)
	for k := 0; k+1 < len(b.ends); k += 2 {
		a, c := b.ends[k], b.ends[k+1]
		if !a.Visible || !c.Visible {
			continue
		}
		drawSegment(screen, a.X, a.Y, c.X, c.Y, lineColor)
	}

	cam := b.proj.Camera
	b.points = b.proj.Project(b.points, b.field.Store.Positions, w, h)
	for i, p := range b.points {
		if !p.Visible {
			continue
		}
		r := cam.PointSize(b.profile.PointSize, p.Depth, h) / 2
		drawPoint(screen, p.X, p.Y, r, b.field.Store.Color(i).Clamped())
	}
}

// Layout sizes the drawable surface to the viewport times the device pixel
// ratio, capped by the profile, and reports a resize when it changes.
func (b *Background) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := deviceScaleFactor()
	if limit := b.profile.MaxPixelRatio; limit > 0 && scale > limit {
		scale = limit
	}
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(outsideWidth) * scale))
	h := int(math.Ceil(float64(outsideHeight) * scale))
	if w != b.width || h != b.height {
		b.width, b.height = w, h
		b.events.Dispatch(Event{Kind: Resize, Width: w, Height: h})
	}
	return w, h
}

// Stats is a snapshot for diagnostics and browser-side tests.
type Stats struct {
	Mounted     bool
	Particles   int
	Connections int
	PointerX    float64
	PointerY    float64
	Frames      int64
	Width       int
	Height      int
}

func (b *Background) Stats() Stats {
	s := Stats{Mounted: b.mounted, Width: b.width, Height: b.height}
	if b.loop != nil {
		s.Frames = b.loop.Frames()
	}
	if !b.mounted {
		return s
	}
	ndc := b.pointer.NDC()
	s.Particles = b.field.Store.N
	s.Connections = len(b.field.Connections)
	s.PointerX, s.PointerY = ndc.X, ndc.Y
	return s
}
