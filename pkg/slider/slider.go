package slider

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/pkg/drag"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/style"
)

// Mode selects how pointer events change progress.
type Mode uint8

const (
	// ModeDrag starts a drag session on press and reports every move.
	ModeDrag Mode = iota
	// ModeClick seeks to the pointer position on a click.
	ModeClick
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDrag:
		return "drag"
	case ModeClick:
		return "click"
	default:
		return "unknown"
	}
}

// DefaultClickThreshold is the horizontal travel in pixels after which a
// press no longer counts as a click.
const DefaultClickThreshold = 3.0

// Config is the host configuration of a slider.
type Config struct {
	// ID names the slider in rendered markup and logs.
	// Defaults to a random UUID.
	ID string

	Width            style.Dimension // default 100%
	Height           style.Dimension // default 14px
	SlidableZoneSize style.Dimension // default 7px; Px(0) renders no zone
	BackgroundColor  string          // default #EEEEEE

	// EqualColor replaces every fill color while all entries are equal.
	EqualColor string

	// Style overrides the track's declarations.
	Style style.Declarations

	Reversed       bool
	ReadOnly       bool
	RoundedCorners bool

	Mode           Mode
	ClickThreshold float64

	// ActiveEntry is the entry a click seeks (ModeClick only).
	ActiveEntry int

	// Layout maps rendering layers to track hops. Defaults to
	// geometry.NestedLayout.
	Layout geometry.Layout

	Logger     *slog.Logger
	Middleware []Middleware
	Callbacks  drag.Callbacks
}

// Slider binds one widget instance's drag state to its configuration and
// the host's current entries. It is not safe for concurrent use.
type Slider struct {
	cfg     Config
	logger  *slog.Logger
	session *drag.Session
	handler Handler

	entries []Entry
	ids     []string

	// click-to-seek press tracking
	pressed bool
	pressX  float64
}

// New creates a slider. A missing OnSlide callback on an interactive
// slider is reported once through the logger; the slider stays usable.
func New(cfg Config) *Slider {
	applyDefaults(&cfg)

	s := &Slider{
		cfg:     cfg,
		logger:  cfg.Logger.With("slider", cfg.ID),
		session: drag.NewSession(cfg.Callbacks),
	}
	s.handler = chain(s.handle, cfg.Middleware)

	if !cfg.ReadOnly && cfg.Callbacks.OnSlide == nil {
		s.logger.Warn("slider has no slide callback", "error", errors.New("E201"))
	}
	return s
}

func applyDefaults(cfg *Config) {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	cfg.Width = cfg.Width.Or(style.Raw("100%"))
	cfg.Height = cfg.Height.Or(style.Px(14))
	cfg.SlidableZoneSize = cfg.SlidableZoneSize.Or(style.Px(7))
	if cfg.BackgroundColor == "" {
		cfg.BackgroundColor = "#EEEEEE"
	}
	if cfg.ClickThreshold <= 0 {
		cfg.ClickThreshold = DefaultClickThreshold
	}
	if cfg.Layout == nil {
		cfg.Layout = geometry.NestedLayout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}

// ID returns the slider's identifier.
func (s *Slider) ID() string { return s.cfg.ID }

// Config returns the effective configuration, defaults applied.
func (s *Slider) Config() Config { return s.cfg }

// ReadOnly reports whether the slider ignores all pointer input.
func (s *Slider) ReadOnly() bool { return s.cfg.ReadOnly }

// Dragging reports whether a drag session is active.
func (s *Slider) Dragging() bool { return s.session.Active() }

// SetCallbacks replaces the host callbacks, keeping the drag state.
func (s *Slider) SetCallbacks(cb drag.Callbacks) {
	s.cfg.Callbacks = cb
	s.session.SetCallbacks(cb)
}

// SetActiveEntry selects the entry a click seeks.
func (s *Slider) SetActiveEntry(i int) { s.cfg.ActiveEntry = i }

// SetEntries replaces the entries shown by the next render. The slice is
// copied; values are taken as given, without clamping.
func (s *Slider) SetEntries(entries []Entry) {
	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)

	for len(s.ids) < len(entries) {
		s.ids = append(s.ids, uuid.NewString())
	}
	for i := range s.entries {
		if s.entries[i].ID == "" {
			s.entries[i].ID = s.ids[i]
		}
	}
}

// Entries returns a copy of the current entries.
func (s *Slider) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Dispatch delivers a pointer event through the middleware chain.
// A read-only slider ignores every event.
func (s *Slider) Dispatch(ctx context.Context, ev geometry.PointerEvent) Outcome {
	if s.cfg.ReadOnly {
		return OutcomeIgnored
	}
	return s.handler(withSlider(ctx, s), ev)
}

// PointerDown dispatches a press.
func (s *Slider) PointerDown(ctx context.Context, ev geometry.PointerEvent) Outcome {
	ev.Kind = geometry.PointerDown
	return s.Dispatch(ctx, ev)
}

// PointerMove dispatches a move.
func (s *Slider) PointerMove(ctx context.Context, ev geometry.PointerEvent) Outcome {
	ev.Kind = geometry.PointerMove
	return s.Dispatch(ctx, ev)
}

// PointerUp dispatches a release.
func (s *Slider) PointerUp(ctx context.Context, ev geometry.PointerEvent) Outcome {
	ev.Kind = geometry.PointerUp
	return s.Dispatch(ctx, ev)
}

// PointerLeave dispatches the pointer leaving the track.
func (s *Slider) PointerLeave(ctx context.Context, ev geometry.PointerEvent) Outcome {
	ev.Kind = geometry.PointerLeave
	return s.Dispatch(ctx, ev)
}

// Click dispatches a click.
func (s *Slider) Click(ctx context.Context, ev geometry.PointerEvent) Outcome {
	ev.Kind = geometry.Click
	return s.Dispatch(ctx, ev)
}

func (s *Slider) handle(_ context.Context, ev geometry.PointerEvent) Outcome {
	if s.cfg.Mode == ModeClick {
		return s.handleClick(ev)
	}
	return s.handleDrag(ev)
}

func (s *Slider) handleDrag(ev geometry.PointerEvent) Outcome {
	p := s.resolver(ev)

	var changed bool
	switch ev.Kind {
	case geometry.PointerDown:
		changed = s.session.Activate(ev.Button, p.progress)
	case geometry.PointerMove:
		changed = s.session.Move(p.progress)
	case geometry.PointerUp, geometry.PointerLeave:
		changed = s.session.Deactivate(p.progress)
	}
	return s.outcome(ev, changed, p)
}

func (s *Slider) handleClick(ev geometry.PointerEvent) Outcome {
	switch ev.Kind {
	case geometry.PointerDown:
		if ev.Button != geometry.LeftButton {
			return OutcomeIgnored
		}
		s.pressed, s.pressX = true, ev.PageX
		return OutcomeHandled
	case geometry.PointerMove:
		if !s.pressed || math.Abs(ev.PageX-s.pressX) <= s.cfg.ClickThreshold {
			return OutcomeIgnored
		}
		s.pressed = false
		return OutcomeHandled
	case geometry.PointerLeave:
		if !s.pressed {
			return OutcomeIgnored
		}
		s.pressed = false
		return OutcomeHandled
	case geometry.PointerUp:
		if !s.pressed {
			return OutcomeIgnored
		}
		s.pressed = false
		return s.seek(ev)
	case geometry.Click:
		return s.seek(ev)
	}
	return OutcomeIgnored
}

// seek reports the clicked position unless it equals the active entry's
// progress.
func (s *Slider) seek(ev geometry.PointerEvent) Outcome {
	p := s.resolver(ev)
	value, ok := p.progress()
	if !ok {
		return s.outcome(ev, true, p)
	}

	if i := s.cfg.ActiveEntry; i >= 0 && i < len(s.entries) {
		if s.entries[i].Value == value {
			return OutcomeIgnored
		}
	} else if len(s.entries) > 0 {
		s.logger.Warn("active entry out of range",
			"error", errors.New("E204"), "active", i, "entries", len(s.entries))
	}

	if s.cfg.Callbacks.OnSlide == nil {
		return OutcomeIgnored
	}
	s.cfg.Callbacks.OnSlide(value)
	return OutcomeHandled
}

func (s *Slider) outcome(ev geometry.PointerEvent, changed bool, p *resolution) Outcome {
	switch {
	case !changed:
		return OutcomeIgnored
	case p.failed:
		s.logger.Debug("pointer event not resolved",
			"event", ev.Kind.String(), "error", errors.New("E202"))
		return OutcomeUnresolved
	default:
		return OutcomeHandled
	}
}

// resolution resolves one event's progress at most once.
type resolution struct {
	s        *Slider
	ev       geometry.PointerEvent
	done     bool
	failed   bool
	value    int
	resolved bool
}

func (s *Slider) resolver(ev geometry.PointerEvent) *resolution {
	return &resolution{s: s, ev: ev}
}

func (r *resolution) progress() (int, bool) {
	if !r.done {
		r.done = true
		r.value, r.resolved = geometry.Resolve(r.ev, r.s.cfg.Layout, r.s.cfg.Reversed)
		r.failed = !r.resolved
	}
	return r.value, r.resolved
}
