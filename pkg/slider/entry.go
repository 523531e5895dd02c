package slider

import (
	"github.com/vango-dev/multislider/pkg/style"
)

// Entry is one progress bar of a slider as supplied by the host.
type Entry struct {
	// ID identifies the entry across renders. Empty IDs are replaced with
	// a generated one that stays stable for the entry's position.
	ID string

	Color string
	Value int

	// Dot is the optional handle. Nil renders no handle.
	Dot *Dot

	// Style overrides the fill's declarations.
	Style StyleOverride
}

// Progress implements progress.Valuer.
func (e Entry) Progress() int { return e.Value }

// Dot describes a handle drawn at the end of an entry's fill.
type Dot struct {
	// Color defaults to the entry color.
	Color string `mapstructure:"color"`

	// Icon is an image URL. A dot with an icon is drawn as the image only.
	Icon string `mapstructure:"icon"`

	// Width and Height default to 28px for plain dots and 50px for icons.
	Width  style.Dimension `mapstructure:"width"`
	Height style.Dimension `mapstructure:"height"`

	Style     StyleOverride `mapstructure:"style"`
	IconStyle StyleOverride `mapstructure:"iconStyle"`
}

// HasIcon reports whether the dot is drawn as an image.
func (d *Dot) HasIcon() bool { return d != nil && d.Icon != "" }

func (d *Dot) size() (w, h style.Dimension) {
	def := style.Px(28)
	if d.HasIcon() {
		def = style.Px(50)
	}
	return d.Width.Or(def), d.Height.Or(def)
}

// StyleOverride is either a static set of declarations or a function of
// the entry's render attributes. Dynamic wins when both are set.
type StyleOverride struct {
	Static  style.Declarations
	Dynamic func(Attrs) style.Declarations
}

// Static returns an override with fixed declarations.
func Static(d style.Declarations) StyleOverride { return StyleOverride{Static: d} }

// Dynamic returns an override computed on every render.
func Dynamic(fn func(Attrs) style.Declarations) StyleOverride {
	return StyleOverride{Dynamic: fn}
}

// IsZero reports whether the override adds nothing.
func (o StyleOverride) IsZero() bool { return o.Dynamic == nil && len(o.Static) == 0 }

func (o StyleOverride) resolve(a Attrs) style.Declarations {
	if o.Dynamic != nil {
		return o.Dynamic(a)
	}
	return o.Static
}
