package geometry

// Role tags a rendering layer of a slider.
type Role uint8

const (
	RoleNone   Role = iota // untagged element, treated as the track itself
	RoleTrack              // background bar spanning 0-100%
	RoleFill               // colored progress region
	RoleHandle             // draggable dot
	RoleIcon               // image inside a dot
	RoleZone               // invisible slidable zone around the track
)

var roleNames = [...]string{
	RoleNone:   "",
	RoleTrack:  "track",
	RoleFill:   "fill",
	RoleHandle: "handle",
	RoleIcon:   "icon",
	RoleZone:   "zone",
}

// String returns the name used for the role in data-role attributes.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// ParseRole is the inverse of Role.String. Unknown names map to RoleNone.
func ParseRole(name string) Role {
	for i, n := range roleNames {
		if n == name {
			return Role(i)
		}
	}
	return RoleNone
}

// Rect is the horizontal extent of an element in device pixels.
type Rect struct {
	Left  float64
	Width float64
}

// Element is the part of a rendered node the resolver needs.
// Bounds must report the element's current layout; it is called once per
// resolution and never cached.
type Element interface {
	Role() Role
	Parent() Element
	Bounds() (Rect, bool)
}

// Layout maps each role to the number of parent hops between an element
// with that role and the track.
type Layout map[Role]int

var (
	// FlatLayout is the legacy structure: fills and dots are direct
	// children of the track, icons sit inside dots.
	FlatLayout = Layout{RoleFill: 1, RoleHandle: 1, RoleIcon: 2, RoleZone: 1}

	// NestedLayout is the composable structure: dots live inside their
	// progress fill, so every layer below the fill is one hop deeper.
	NestedLayout = Layout{RoleFill: 1, RoleHandle: 2, RoleIcon: 3, RoleZone: 1}
)

// Track returns the track element for target. It walks exactly the number
// of hops the layout assigns to target's role and fails if that does not
// land on a track.
func (l Layout) Track(target Element) (Element, bool) {
	if target == nil {
		return nil, false
	}
	role := target.Role()
	if role == RoleNone || role == RoleTrack {
		return target, true
	}
	hops, ok := l[role]
	if !ok {
		return nil, false
	}
	el := target
	for i := 0; i < hops; i++ {
		el = el.Parent()
		if el == nil {
			return nil, false
		}
	}
	if r := el.Role(); r != RoleTrack && r != RoleNone {
		return nil, false
	}
	return el, true
}
