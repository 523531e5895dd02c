package vtest

import (
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/vdom"
)

// Node is a fake element. Only nodes given a rect report bounds.
type Node struct {
	role    geometry.Role
	parent  *Node
	rect    geometry.Rect
	hasRect bool

	// Reads counts Bounds calls.
	Reads int
}

// NewTrack returns a track element at the given position.
func NewTrack(left, width float64) *Node {
	return &Node{role: geometry.RoleTrack, rect: geometry.Rect{Left: left, Width: width}, hasRect: true}
}

// NewNode returns a detached element with the given role and no bounds.
func NewNode(role geometry.Role) *Node { return &Node{role: role} }

// Child returns a new element with role under n.
func (n *Node) Child(role geometry.Role) *Node {
	return &Node{role: role, parent: n}
}

// Chain returns the innermost of a chain of children under n.
func (n *Node) Chain(roles ...geometry.Role) *Node {
	cur := n
	for _, r := range roles {
		cur = cur.Child(r)
	}
	return cur
}

// Resize moves the element, as a layout change would.
func (n *Node) Resize(left, width float64) {
	n.rect = geometry.Rect{Left: left, Width: width}
	n.hasRect = true
}

// Detach drops the element's bounds, as if it left the document.
func (n *Node) Detach() { n.hasRect = false }

// Role implements geometry.Element.
func (n *Node) Role() geometry.Role { return n.role }

// Parent implements geometry.Element.
func (n *Node) Parent() geometry.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Bounds implements geometry.Element.
func (n *Node) Bounds() (geometry.Rect, bool) {
	n.Reads++
	return n.rect, n.hasRect
}

// Mounted is a rendered slider tree as fake elements.
type Mounted struct {
	Track  *Node
	byRole map[geometry.Role][]*Node
	byNode map[*vdom.VNode]*Node
}

// Mount builds fake elements for every element of root carrying a
// data-role. The outermost track gets the given bounds.
func Mount(root *vdom.VNode, left, width float64) *Mounted {
	m := &Mounted{
		byRole: make(map[geometry.Role][]*Node),
		byNode: make(map[*vdom.VNode]*Node),
	}
	parents := vdom.Parents(root)

	vdom.Walk(root, func(v, _ *vdom.VNode) bool {
		if v.Kind != vdom.KindElement {
			return true
		}
		role := geometry.ParseRole(v.Attr("data-role"))
		n := &Node{role: role}
		m.byNode[v] = n
		m.byRole[role] = append(m.byRole[role], n)
		if role == geometry.RoleTrack && m.Track == nil {
			n.Resize(left, width)
			m.Track = n
		}
		return true
	})

	for v, n := range m.byNode {
		for p := parents[v]; p != nil; p = parents[p] {
			if pn, ok := m.byNode[p]; ok {
				n.parent = pn
				break
			}
		}
	}
	return m
}

// Find returns the i-th element with role in document order, or nil.
func (m *Mounted) Find(role geometry.Role, i int) *Node {
	nodes := m.byRole[role]
	if i < 0 || i >= len(nodes) {
		return nil
	}
	return nodes[i]
}

// Count returns the number of elements with role.
func (m *Mounted) Count(role geometry.Role) int { return len(m.byRole[role]) }

// Of returns the fake element of a rendered node.
func (m *Mounted) Of(v *vdom.VNode) *Node { return m.byNode[v] }
