package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("role", "track") → data-role="track"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Draggable sets the draggable attribute.
func Draggable(draggable bool) Attr {
	if draggable {
		return attr("draggable", "true")
	}
	return attr("draggable", "false")
}

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }
