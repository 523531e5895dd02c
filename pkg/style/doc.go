// Package style builds the inline CSS of slider elements.
//
// Host dimensions may be numbers (pixels) or CSS strings; Dimension keeps
// either form and renders it. Declarations is an ordered-on-output set of
// CSS properties that later overrides win over. Colors supplied by hosts
// are normalised through go-colorful so "#EEE" and "#eeeeee" compare and
// render alike.
package style

// Transition is applied to fills and dots while no drag is in progress.
const Transition = "all 450ms cubic-bezier(.23, 1, .32, 1) 0ms"

// NoTransition replaces Transition while dragging.
const NoTransition = "none"
