//go:build js

package ui

import "syscall/js"

func document() js.Value { return js.Global().Get("document") }

// mountTarget reports whether the host page carries the element the
// backdrop attaches to.
var mountTarget = func(id string) bool {
	return document().Call("getElementById", id).Truthy()
}

// attachSurface moves ebiten's canvas into the mount element and stops
// touch moves on it from scrolling the page.
func attachSurface(id string) {
	host := document().Call("getElementById", id)
	canvas := document().Call("querySelector", "canvas")
	if !host.Truthy() || !canvas.Truthy() {
		return
	}
	style := canvas.Get("style")
	style.Set("touchAction", "none")
	style.Set("width", "100%")
	style.Set("height", "100%")
	host.Call("appendChild", canvas)
}

// The page tracks the pointer on document so moves over the form still
// count and leaving the page parks the pointer.
var hostHooks = func(b *Background) []func() {
	return []func(){listenDocument(&b.queue), b.exportJS()}
}

const hostTracksPointer = true

// listenDocument queues document pointer moves and leaves and returns the
// function that removes the listeners and releases their callbacks.
func listenDocument(q *eventQueue) func() {
	win := js.Global()
	move := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := args[0]
		src := ev
		if ev.Get("type").String() == "touchmove" {
			ev.Call("preventDefault")
			touches := ev.Get("touches")
			if touches.Length() == 0 {
				return nil
			}
			src = touches.Index(0)
		}
		q.push(Event{
			Kind:   PointerMove,
			X:      src.Get("clientX").Float(),
			Y:      src.Get("clientY").Float(),
			Width:  win.Get("innerWidth").Int(),
			Height: win.Get("innerHeight").Int(),
		})
		return nil
	})
	leave := js.FuncOf(func(js.Value, []js.Value) any {
		q.push(Event{Kind: PointerLeave})
		return nil
	})

	opts := js.ValueOf(map[string]any{"passive": false})
	bindings := []struct {
		name string
		fn   js.Func
	}{
		{"mousemove", move},
		{"touchmove", move},
		{"mouseleave", leave},
		{"touchend", leave},
	}
	doc := document()
	for _, bnd := range bindings {
		doc.Call("addEventListener", bnd.name, bnd.fn, opts)
	}
	return func() {
		for _, bnd := range bindings {
			doc.Call("removeEventListener", bnd.name, bnd.fn)
		}
		move.Release()
		leave.Release()
	}
}
