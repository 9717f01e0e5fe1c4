//go:build !js

package ui

// On desktop the window is the mount target and always exists.
var mountTarget = func(string) bool { return true }

func attachSurface(string) {}

// hostHooks installs host-side listeners and exports for b and returns the
// functions that remove them. The desktop window has none.
var hostHooks = func(*Background) []func() { return nil }

// hostTracksPointer reports whether pointer events arrive through hostHooks
// instead of ebiten input polling.
const hostTracksPointer = false
