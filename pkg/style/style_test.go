package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 14, "14px"},
		{"float", 7.5, "7.5px"},
		{"percent", "100%", "100%"},
		{"numeric string", "14", "14px"},
		{"px string", "14px", "14px"},
		{"nil", nil, ""},
		{"zero", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	_, err := Parse(true)
	assert.Error(t, err)
	_, err = Parse(math.NaN())
	assert.Error(t, err)
}

func TestDimensionHalf(t *testing.T) {
	assert.Equal(t, "7px", Px(14).Half())
	assert.Equal(t, "7px", Raw("14px").Half())
	assert.Equal(t, "calc(2em / 2)", Raw("2em").Half())
	assert.Equal(t, "0", Dimension{}.Half())
}

func TestDimensionNegate(t *testing.T) {
	assert.Equal(t, "-7px", Px(7).Negate())
	assert.Equal(t, "calc(-1 * 1em)", Raw("1em").Negate())
}

func TestDimensionOr(t *testing.T) {
	assert.Equal(t, "14px", Dimension{}.Or(Px(14)).String())
	assert.Equal(t, "2px", Px(2).Or(Px(14)).String())

	px, ok := Px(3).Pixels()
	assert.True(t, ok)
	assert.Equal(t, 3.0, px)
	_, ok = Raw("50%").Pixels()
	assert.False(t, ok)
}

func TestDeclarations(t *testing.T) {
	d := Decl("width", "10%", "position", "absolute", "dangling")
	assert.Equal(t, "position: absolute; width: 10%;", d.String())

	d.Merge(Decl("width", "20%", "z-index", "1"))
	assert.Equal(t, "position: absolute; width: 20%; z-index: 1;", d.String())

	d.Set("position", "")
	assert.NotContains(t, d, "position")

	assert.Equal(t, "", Declarations{}.String())
}

func TestParseInline(t *testing.T) {
	d := ParseInline("top: 7px; bogus; bottom:-7px;")
	assert.Equal(t, Declarations{"top": "7px", "bottom": "-7px"}, d)
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "#eeeeee", NormalizeColor("#EEE"))
	assert.Equal(t, "#00bdaf", NormalizeColor(" #00BDAF "))
	assert.Equal(t, "transparent", NormalizeColor("transparent"))
	assert.Equal(t, "#zzz", NormalizeColor("#zzz"))
	assert.Equal(t, "", NormalizeColor(""))

	// cached path
	assert.Equal(t, "#eeeeee", NormalizeColor("#EEE"))

	assert.True(t, IsHex("#AB47BC"))
	assert.False(t, IsHex("red"))
}

func TestFromMap(t *testing.T) {
	d, err := FromMap(map[string]any{
		"borderTopLeftRadius": 7,
		"bottom":              -7,
		"zIndex":              3,
		"color":               "red",
		"margin-top":          "1em",
	})
	require.NoError(t, err)
	assert.Equal(t, Declarations{
		"border-top-left-radius": "7px",
		"bottom":                 "-7px",
		"z-index":                "3",
		"color":                  "red",
		"margin-top":             "1em",
	}, d)

	_, err = FromMap(map[string]any{"top": []int{1}})
	assert.Error(t, err)
}

func TestProperty(t *testing.T) {
	assert.Equal(t, "background-color", Property("backgroundColor"))
	assert.Equal(t, "top", Property("top"))
	assert.Equal(t, "user-select", Property("User-Select"))
}
