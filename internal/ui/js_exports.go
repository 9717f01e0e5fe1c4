//go:build js

package ui

import "syscall/js"

// exportJS exposes state and unmount hooks for browser-based tests and
// returns the function that withdraws them.
func (b *Background) exportJS() func() {
	state := js.FuncOf(func(js.Value, []js.Value) any {
		s := b.Stats()
		return js.ValueOf(map[string]any{
			"mounted":     s.Mounted,
			"particles":   s.Particles,
			"connections": s.Connections,
			"pointerX":    s.PointerX,
			"pointerY":    s.PointerY,
			"frames":      float64(s.Frames),
			"width":       s.Width,
			"height":      s.Height,
		})
	})
	// Unmount runs on the next Update, on the game goroutine.
	unmount := js.FuncOf(func(js.Value, []js.Value) any {
		b.queue.requestUnmount()
		return nil
	})
	global := js.Global()
	global.Set("nodefieldState", state)
	global.Set("nodefieldUnmount", unmount)
	return func() {
		global.Delete("nodefieldState")
		global.Delete("nodefieldUnmount")
		state.Release()
		unmount.Release()
	}
}
