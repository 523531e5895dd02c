// Package geometry maps pointer positions over a slider track to progress
// percentages.
//
// The track is the background element that represents the 0-100% range.
// Pointer events usually target one of its children (a progress fill, a
// dot handle or the dot's icon), so the resolver first walks up to the
// track using a fixed hop table keyed by each element's Role, then reads
// the track's bounds and converts the pointer's page X coordinate:
//
//	fraction := (pageX - bounds.Left) / bounds.Width
//	progress := round(fraction * 100)       // left-anchored bar
//	progress := round((1 - fraction) * 100) // reversed, right-anchored bar
//
// The result is always clamped to [0, 100]. Resolve reports false instead
// of a value when the track or its bounds cannot be determined; callers
// treat that as "ignore this event".
package geometry
