package vdom

// Walk calls fn for every node in depth-first order, passing the node's
// parent (nil for the root). Returning false skips the node's children.
func Walk(root *VNode, fn func(node, parent *VNode) bool) {
	walk(root, nil, fn)
}

func walk(node, parent *VNode, fn func(node, parent *VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node, parent) {
		return
	}
	for _, child := range node.Children {
		walk(child, node, fn)
	}
}

// FindByData returns the first element whose data-<key> attribute equals value.
func FindByData(root *VNode, key, value string) *VNode {
	var found *VNode
	Walk(root, func(n, _ *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.Attr("data-"+key) == value {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByHID returns the element with the given hydration ID.
func FindByHID(root *VNode, hid string) *VNode {
	if hid == "" {
		return nil
	}
	var found *VNode
	Walk(root, func(n, _ *VNode) bool {
		if found != nil {
			return false
		}
		if n.HID == hid {
			found = n
			return false
		}
		return true
	})
	return found
}

// Parents maps every node under root to its parent element.
func Parents(root *VNode) map[*VNode]*VNode {
	parents := make(map[*VNode]*VNode)
	Walk(root, func(n, p *VNode) bool {
		if p != nil {
			parents[n] = p
		}
		return true
	})
	return parents
}
