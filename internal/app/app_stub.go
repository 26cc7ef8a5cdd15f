//go:build !ebiten

package app

import "gridcast/internal/core"

// WindowName is the registry key of the ebiten window back end.
const WindowName = "ebiten"

func init() {
	core.RegisterBackend(WindowName, func(any) (core.Backend, error) {
		return nil, ErrNoWindow
	})
}
