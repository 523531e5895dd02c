package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/multislider/pkg/render"
	"github.com/vango-dev/multislider/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string, or "" when
// rendering fails.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains every expected
// substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected ...string) {
	t.Helper()
	html := RenderToString(node)
	for _, e := range expected {
		if !strings.Contains(html, e) {
			t.Errorf("expected rendered output to contain %q, got:\n%s", e, truncate(html, 800))
		}
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 800))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 800))
	}
}

// StyleOf returns the inline style of the i-th element with the given
// data-role, or "".
func StyleOf(root *vdom.VNode, role string, i int) string {
	n := 0
	var out string
	vdom.Walk(root, func(v, _ *vdom.VNode) bool {
		if out != "" {
			return false
		}
		if v.Kind == vdom.KindElement && v.Attr("data-role") == role {
			if n == i {
				out = v.Attr("style")
				return false
			}
			n++
		}
		return true
	})
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
