package hsv

// Snapshot is the flat state a host saves before tearing the picker down
// and hands back when recreating it.
type Snapshot struct {
	Alpha             int     `json:"alpha" yaml:"alpha"`
	Hue               float64 `json:"hue" yaml:"hue"`
	Sat               float64 `json:"sat" yaml:"sat"`
	Val               float64 `json:"val" yaml:"val"`
	AlphaPanelVisible bool    `json:"alpha_panel_visible" yaml:"alpha_panel_visible"`
	AlphaCaptionText  *string `json:"alpha_caption_text" yaml:"alpha_caption_text"`
}

// Color rebuilds the color held by the snapshot. Out of range alpha is
// clamped into a byte.
func (s Snapshot) Color() Color {
	a := s.Alpha
	if a < 0 {
		a = 0
	} else if a > MaxAlpha {
		a = MaxAlpha
	}
	return New(s.Hue, s.Sat, s.Val, uint8(a))
}
