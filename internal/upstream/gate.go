package upstream

// Gate answers whether the view that owns a collection is currently the one
// on screen. Refreshes for an inactive view skip network I/O entirely;
// components that stay mounted off-screen must not burn upstream calls.
type Gate interface {
	Active() bool
}

type GateFunc func() bool

func (f GateFunc) Active() bool { return f() }

// AlwaysActive is used by tools and tests that have no view lifecycle.
var AlwaysActive = GateFunc(func() bool { return true })
