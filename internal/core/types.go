package core

import (
	"context"
	"sort"
)

// Size describes the dimensions of a grid or an output surface.
type Size struct {
	W int
	H int
}

// Point is an integer (col, row) grid coordinate.
type Point struct {
	X int
	Y int
}

// Backend presents frames and feeds input back into a running session.
type Backend interface {
	Name() string
	Run(ctx context.Context) error
}

// BackendFactory constructs a Backend. The argument is the back end specific
// runtime value prepared by the caller (usually a *game.Session).
type BackendFactory func(env any) (Backend, error)

var backends = map[string]BackendFactory{}

// RegisterBackend adds a back end factory under the provided name.
func RegisterBackend(name string, f BackendFactory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Backends exposes the registry of available back ends.
func Backends() map[string]BackendFactory {
	return backends
}

// BackendNames lists registered back ends in sorted order.
func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
