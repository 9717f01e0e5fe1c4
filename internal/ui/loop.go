package ui

import (
	"runtime/debug"

	game_log "github.com/ingyamilmolinar/nodefield/internal/log"
)

// Loop is the per-frame callback with explicit start/stop state. The host
// (ebiten's Update, or a ticker) calls Tick once per display frame.
type Loop struct {
	frame   func()
	running bool
	frames  int64
	logger  *game_log.Logger
}

func NewLoop(frame func(), logger *game_log.Logger) *Loop {
	return &Loop{frame: frame, logger: logger}
}

func (l *Loop) Start() { l.running = true }
func (l *Loop) Stop()  { l.running = false }

func (l *Loop) Running() bool { return l.running }

// Frames counts completed frames since construction.
func (l *Loop) Frames() int64 { return l.frames }

// Tick runs one frame if the loop is running and reports whether it did.
// A panicking frame stops the loop; the panic never reaches the host.
func (l *Loop) Tick() (ran bool) {
	if !l.running {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			l.running = false
			ran = false
			l.logger.Errorf("[LOOP] frame %d panicked, loop stopped: %v\n%s", l.frames, r, debug.Stack())
		}
	}()
	l.frame()
	l.frames++
	return true
}
