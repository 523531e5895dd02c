package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Declarations is a set of CSS property declarations keyed by property
// name ("background-color"). The zero value is not usable; use Decl.
type Declarations map[string]string

// Decl builds declarations from alternating property/value pairs.
// A trailing property without a value is ignored.
func Decl(pairs ...string) Declarations {
	d := make(Declarations, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

// Set adds or replaces a declaration. An empty value removes it.
func (d Declarations) Set(prop, value string) Declarations {
	prop = strings.TrimSpace(prop)
	if prop == "" {
		return d
	}
	if value == "" {
		delete(d, prop)
		return d
	}
	d[prop] = value
	return d
}

// Merge copies every declaration of other over d.
func (d Declarations) Merge(other Declarations) Declarations {
	for k, v := range other {
		d.Set(k, v)
	}
	return d
}

// String renders the declarations as an inline style attribute value,
// sorted by property name.
func (d Declarations) String() string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(d[k])
		b.WriteByte(';')
	}
	return b.String()
}

// ParseInline parses "a: b; c: d" into declarations. Malformed
// fragments are skipped.
func ParseInline(s string) Declarations {
	d := make(Declarations)
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		d.Set(prop, strings.TrimSpace(value))
	}
	return d
}

// FromMap converts a host style object ({"borderTopLeftRadius": 7}) into
// declarations. Property names are converted from camelCase to CSS
// kebab-case and numeric values become pixels, except for unitless
// properties such as z-index and opacity.
func FromMap(m map[string]any) (Declarations, error) {
	d := make(Declarations, len(m))
	for k, v := range m {
		prop := Property(k)
		switch t := v.(type) {
		case string:
			d.Set(prop, t)
		default:
			dim, err := Parse(v)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", k, err)
			}
			if px, ok := dim.Pixels(); ok && unitless[prop] {
				d.Set(prop, strconv.FormatFloat(px, 'f', -1, 64))
				continue
			}
			d.Set(prop, dim.String())
		}
	}
	return d, nil
}

var unitless = map[string]bool{
	"z-index":     true,
	"opacity":     true,
	"flex-grow":   true,
	"flex-shrink": true,
	"font-weight": true,
	"line-height": true,
}

// Property converts a camelCase property name to kebab-case.
// Names that already contain a dash are returned lowercased.
func Property(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
