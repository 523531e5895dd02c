package style

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const colorCacheSize = 256

var colorCache *lru.Cache[string, string]

func init() {
	c, err := lru.New[string, string](colorCacheSize)
	if err != nil {
		panic(err)
	}
	colorCache = c
}

// NormalizeColor returns hex colors in canonical "#rrggbb" form.
// Anything go-colorful cannot parse as hex (named colors, rgb(), var())
// is returned trimmed but otherwise untouched.
func NormalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return ""
	}
	if v, ok := colorCache.Get(c); ok {
		return v
	}
	out := c
	if strings.HasPrefix(c, "#") {
		if parsed, err := colorful.Hex(c); err == nil {
			out = parsed.Hex()
		}
	}
	colorCache.Add(c, out)
	return out
}

// IsHex reports whether c parses as a hex color.
func IsHex(c string) bool {
	_, err := colorful.Hex(strings.TrimSpace(c))
	return err == nil
}
