// Package vdom is the virtual DOM the sliders render into.
//
// A slider never touches a real DOM. Each render pass produces a VNode tree
// describing the track, its progress fills, dots, icons and slidable zone;
// the host turns that tree into HTML (see package render) or any other
// surface. Layers carry a data-role attribute so pointer targets can be
// mapped back to the track.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("slider"), Data("role", "track"),
//	    Span(Class("dot")),
//	    OnPointerDown(handler),
//	)
//
// Arguments may be Attr, []Attr, *VNode, []*VNode, EventHandler, string
// (text shorthand) or nil (ignored, for conditional attributes).
package vdom
