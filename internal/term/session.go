package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/ingyamilmolinar/nodefield/core/field"
	"github.com/ingyamilmolinar/nodefield/core/pointer"
	"github.com/ingyamilmolinar/nodefield/core/profile"
	"github.com/ingyamilmolinar/nodefield/core/scene"
	game_log "github.com/ingyamilmolinar/nodefield/internal/log"
)

var backdrop = colorful.Color{R: 0.04, G: 0.05, B: 0.09}

// Session runs one profile inside a tcell screen until the context ends or
// the user quits.
type Session struct {
	profile profile.Profile
	screen  tcell.Screen
	logger  *game_log.Logger
	tick    time.Duration

	field   *field.Field
	pointer *pointer.Tracker
	proj    *scene.Projector
	clock   *scene.Clock
	canvas  *Canvas
	frames  int64

	points []scene.ScreenPoint
	ends   []scene.ScreenPoint
}

// NewSession prepares the simulation for screen. The screen is initialised
// by Run, not here.
func NewSession(screen tcell.Screen, p profile.Profile, fps int, logger *game_log.Logger) *Session {
	if fps <= 0 {
		fps = 30
	}
	s := &Session{
		profile: p,
		screen:  screen,
		logger:  logger,
		tick:    time.Second / time.Duration(fps),
		field:   field.New(p.Field, logger),
		pointer: pointer.New(p.Sentinel),
		clock:   scene.NewClock(),
		canvas:  NewCanvas(0, 0, backdrop),
	}
	s.proj = &scene.Projector{
		Camera:   scene.NewCamera(p.Camera, 1),
		Rotation: p.Rotation,
	}
	return s
}

// Run owns the screen for the session's lifetime.
func (s *Session) Run(ctx context.Context) error {
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "initialising terminal")
	}
	defer s.screen.Fini()
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.EnableFocus()
	s.screen.HideCursor()
	s.resize(s.screen.Size())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	s.logger.Infof("[TERM] Run: profile=%s particles=%d tick=%s", s.profile.Name, s.field.Store.N, s.tick)
	for {
		select {
		case ev := <-events:
			if !s.handle(translate(ev)) {
				s.logger.Infof("[TERM] quit after %d frames", s.frames)
				return nil
			}
		case <-ticker.C:
			s.frame()
			s.render()
			s.canvas.Flush(s.screen)
			s.screen.Show()
		case <-ctx.Done():
			return nil
		}
	}
}

// handle applies one command and reports whether the session continues.
func (s *Session) handle(cmd command) bool {
	switch cmd.kind {
	case cmdMove:
		s.pointer.Move(cmd.x, cmd.y, float64(s.canvas.Width()), float64(s.canvas.Height()))
	case cmdLeave:
		s.pointer.Leave()
	case cmdResize:
		s.resize(cmd.cols, cmd.rows)
		s.screen.Sync()
	case cmdQuit:
		return false
	}
	return true
}

func (s *Session) resize(cols, rows int) {
	s.canvas.Resize(cols, rows)
	if s.canvas.Height() > 0 {
		s.proj.Camera.SetAspect(float64(s.canvas.Width()) / float64(s.canvas.Height()))
	}
	s.logger.Debugf("[TERM] Resize: %dx%d cells aspect=%.4f", cols, rows, s.proj.Camera.Aspect)
}

func (s *Session) frame() {
	target := s.proj.Camera.Target(s.pointer.NDC())
	s.field.Step(target, s.clock.Elapsed())
	s.field.SyncLines()
	s.proj.Rotation.Advance()
	s.frames++
}

// render rasterises the current frame onto the canvas.
func (s *Session) render() {
	c := s.canvas
	c.Clear()
	w, h := c.Width(), c.Height()

	s.ends = s.proj.Project(s.ends, s.field.Lines, w, h)
	for k := 0; k+1 < len(s.ends); k += 2 {
		a, b := s.ends[k], s.ends[k+1]
		if !a.Visible || !b.Visible {
			continue
		}
		c.Line(int(a.X), int(a.Y), int(b.X), int(b.Y), s.profile.LineColor, s.profile.LineOpacity)
	}

	s.points = s.proj.Project(s.points, s.field.Store.Positions, w, h)
	for i, p := range s.points {
		if !p.Visible {
			continue
		}
		r := s.proj.Camera.PointSize(s.profile.PointSize, p.Depth, h) / 2
		c.Dot(int(p.X), int(p.Y), r, s.field.Store.Color(i))
	}
}

// Frames counts simulated frames.
func (s *Session) Frames() int64 { return s.frames }
