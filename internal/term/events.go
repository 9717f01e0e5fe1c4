package term

import "github.com/gdamore/tcell/v2"

type commandKind int

const (
	cmdNone commandKind = iota
	cmdMove
	cmdLeave
	cmdResize
	cmdQuit
)

// command is a terminal event reduced to what the session acts on. Moves
// carry pixel coordinates on the half-block grid; resizes carry the new cell
// area.
type command struct {
	kind       commandKind
	x, y       float64
	cols, rows int
}

// translate maps a tcell event onto a command. Mouse cells map to the center
// of their top pixel pair.
func translate(ev tcell.Event) command {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		return command{kind: cmdMove, x: float64(x) + 0.5, y: float64(y*2) + 1}
	case *tcell.EventFocus:
		if !ev.Focused {
			return command{kind: cmdLeave}
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return command{kind: cmdResize, cols: cols, rows: rows}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return command{kind: cmdQuit}
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return command{kind: cmdQuit}
			}
		}
	}
	return command{kind: cmdNone}
}
