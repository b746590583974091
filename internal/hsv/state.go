package hsv

import "sync"

// State is the live color shared by the picker container and its widgets.
//
// The zero value is not useful; create one with NewState. All methods are
// safe for concurrent use.
type State struct {
	mu     sync.Mutex
	color  Color
	writes uint64
}

// NewState creates a State holding c.
func NewState(c Color) *State {
	return &State{color: c}
}

// Snapshot returns the current color.
func (s *State) Snapshot() Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// Set replaces all four components.
func (s *State) Set(c Color) Color {
	return s.update(func(cur *Color) { *cur = c })
}

// SetHue replaces the hue only. Values are clamped into [0,360].
func (s *State) SetHue(h float64) Color {
	return s.update(func(cur *Color) { cur.H = clamp(h, 0, 360) })
}

// SetSatVal replaces saturation and value only.
func (s *State) SetSatVal(sat, val float64) Color {
	return s.update(func(cur *Color) {
		cur.S = clamp(sat, 0, 1)
		cur.V = clamp(val, 0, 1)
	})
}

// SetAlpha replaces the alpha only.
func (s *State) SetAlpha(a uint8) Color {
	return s.update(func(cur *Color) { cur.A = a })
}

// Writes reports how many mutations have been applied since creation.
func (s *State) Writes() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *State) update(fn func(*Color)) Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.color)
	s.writes++
	return s.color
}
