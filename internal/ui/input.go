package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorPosition     = ebiten.CursorPosition
	appendTouchIDs     = ebiten.AppendTouchIDs
	touchPosition      = ebiten.TouchPosition
	appendPressedTouch = inpututil.AppendJustPressedTouchIDs
	isFocused          = ebiten.IsFocused
	deviceScaleFactor  = func() float64 {
		if m := ebiten.Monitor(); m != nil {
			return m.DeviceScaleFactor()
		}
		return 1
	}
)

// Input groups the ebiten input functions the background polls.
type Input struct {
	Cursor      func() (int, int)
	Touches     func([]ebiten.TouchID) []ebiten.TouchID
	TouchPos    func(ebiten.TouchID) (int, int)
	Pressed     func([]ebiten.TouchID) []ebiten.TouchID
	Focused     func() bool
	ScaleFactor func() float64
}

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals. Nil fields keep the current function.
func SetInputForTest(in Input) func() {
	oldCursor := cursorPosition
	oldTouches := appendTouchIDs
	oldTouchPos := touchPosition
	oldPressed := appendPressedTouch
	oldFocused := isFocused
	oldScale := deviceScaleFactor
	if in.Cursor != nil {
		cursorPosition = in.Cursor
	}
	if in.Touches != nil {
		appendTouchIDs = in.Touches
	}
	if in.TouchPos != nil {
		touchPosition = in.TouchPos
	}
	if in.Pressed != nil {
		appendPressedTouch = in.Pressed
	}
	if in.Focused != nil {
		isFocused = in.Focused
	}
	if in.ScaleFactor != nil {
		deviceScaleFactor = in.ScaleFactor
	}
	return func() {
		cursorPosition = oldCursor
		appendTouchIDs = oldTouches
		touchPosition = oldTouchPos
		appendPressedTouch = oldPressed
		isFocused = oldFocused
		deviceScaleFactor = oldScale
	}
}

/* ─── pointer polling ─── */

// pointerPoller turns ebiten's polled input into move/leave events. A
// touch is followed from press to release and wins over the mouse; lifting
// it or moving the cursor off the surface reads as a leave.
type pointerPoller struct {
	inside   bool
	touching bool
	touchID  ebiten.TouchID
	lastX    int
	lastY    int
	ids      []ebiten.TouchID

	// Browsers leave the cursor where the finger lifted; ignore it until
	// the mouse really moves.
	staleCursor bool
	cursorX     int
	cursorY     int
}

func (p *pointerPoller) poll(w, h int) []Event {
	if p.touching {
		p.ids = appendTouchIDs(p.ids[:0])
		if !hasTouch(p.ids, p.touchID) {
			p.touching = false
			p.staleCursor = true
			p.cursorX, p.cursorY = cursorPosition()
			return p.leave()
		}
	} else if p.ids = appendPressedTouch(p.ids[:0]); len(p.ids) > 0 {
		p.touchID = p.ids[0]
		p.touching = true
	}
	if p.touching {
		x, y := touchPosition(p.touchID)
		return p.moveTo(x, y, w, h)
	}

	x, y := cursorPosition()
	if p.staleCursor {
		if x == p.cursorX && y == p.cursorY {
			return nil
		}
		p.staleCursor = false
	}
	if !isFocused() || !pt(x, y, w, h) {
		return p.leave()
	}
	return p.moveTo(x, y, w, h)
}

func (p *pointerPoller) moveTo(x, y, w, h int) []Event {
	if p.inside && x == p.lastX && y == p.lastY {
		return nil
	}
	p.inside = true
	p.lastX, p.lastY = x, y
	return []Event{{Kind: PointerMove, X: float64(x), Y: float64(y), Width: w, Height: h}}
}

func (p *pointerPoller) leave() []Event {
	if !p.inside {
		return nil
	}
	p.inside = false
	return []Event{{Kind: PointerLeave}}
}

func hasTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
