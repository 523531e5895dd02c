package slider

import (
	"github.com/vango-dev/multislider/pkg/progress"
	"github.com/vango-dev/multislider/pkg/style"
)

// Attrs are the per-entry values derived on every render pass.
type Attrs struct {
	ID    string
	Index int
	Value int

	// ZIndex is the entry's position in the descending render order.
	ZIndex int

	// Equal is set when every entry has the same progress.
	Equal bool

	// EqualColorActive is Equal with an equal color configured.
	EqualColorActive bool

	// TransitionSuppressed is set while a drag is in progress.
	TransitionSuppressed bool

	// Color is the fill color after equal-color substitution.
	Color string
}

// Attributes projects the current entries. It reads state only.
func (s *Slider) Attributes() []Attrs {
	equal := progress.AllEqual(s.entries)
	useEqualColor := equal && s.cfg.EqualColor != ""
	z := progress.ZIndices(s.entries)
	dragging := s.session.Active()

	out := make([]Attrs, len(s.entries))
	for i, e := range s.entries {
		color := e.Color
		if useEqualColor {
			color = s.cfg.EqualColor
		}
		out[i] = Attrs{
			ID:                   e.ID,
			Index:                i,
			Value:                e.Value,
			ZIndex:               z[i],
			Equal:                equal,
			EqualColorActive:     useEqualColor,
			TransitionSuppressed: dragging,
			Color:                style.NormalizeColor(color),
		}
	}
	return out
}
