// Package code encodes the user-tunable crosshair settings as a short
// shareable string.
//
// A code is 12 semicolon-separated integers in this order:
//
//	enabled;r;g;b;length;gap;thickness;dotEnabled;dotSize;shadowEnabled;shadowBlurRadius;shadowAlpha
//
// Booleans are written as 0 or 1 and read as "non-zero is true".
package code

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gogpu/crosshair"
	"github.com/gogpu/crosshair/settings"
)

// Separator joins the fields of a code.
const Separator = ";"

// NumFields is the exact number of fields in a valid code.
const NumFields = 12

// ErrFieldCount is returned by Apply when the code does not have exactly
// NumFields fields. The configuration is left untouched.
var ErrFieldCount = errors.New("code: wrong number of fields")

// Generate returns the code for c.
func Generate(c settings.Config) string {
	fields := [NumFields]int{
		boolInt(c.Enabled),
		int(c.Color.R),
		int(c.Color.G),
		int(c.Color.B),
		c.Length,
		c.Gap,
		c.Thickness,
		boolInt(c.Dot),
		c.DotSize,
		boolInt(c.Shadow),
		c.ShadowBlurRadius,
		int(c.ShadowColor.A),
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, Separator)
}

// Apply decodes code into c.
//
// A code with the wrong number of fields is rejected as a whole with
// ErrFieldCount. Otherwise each field that parses as an integer is applied
// and each one that does not keeps its current value in c. The result is
// clamped.
func Apply(code string, c *settings.Config) error {
	parts := strings.Split(strings.TrimSpace(code), Separator)
	if len(parts) != NumFields {
		crosshair.Logger().Debug("code: rejected", "fields", len(parts))
		return ErrFieldCount
	}

	d := decoder{parts: parts}

	c.Enabled = d.flag(0, c.Enabled)

	c.Color.R = d.channel(1, c.Color.R)
	c.Color.G = d.channel(2, c.Color.G)
	c.Color.B = d.channel(3, c.Color.B)
	c.Color.A = 255

	c.Length = d.number(4, c.Length)
	c.Gap = d.number(5, c.Gap)
	c.Thickness = d.number(6, c.Thickness)

	c.Dot = d.flag(7, c.Dot)
	c.DotSize = d.number(8, c.DotSize)

	c.Shadow = d.flag(9, c.Shadow)
	c.ShadowBlurRadius = d.number(10, c.ShadowBlurRadius)
	c.ShadowColor.A = d.channel(11, c.ShadowColor.A)

	c.Clamp()

	if len(d.bad) > 0 {
		crosshair.Logger().Debug("code: fields kept previous value", "fields", d.bad)
	}
	return nil
}

// decoder parses fields, falling back to the previous value and recording
// which fields did not parse.
type decoder struct {
	parts []string
	bad   []int
}

func (d *decoder) number(i, prev int) int {
	v, err := strconv.Atoi(strings.TrimSpace(d.parts[i]))
	if err != nil {
		d.bad = append(d.bad, i)
		return prev
	}
	return v
}

func (d *decoder) flag(i int, prev bool) bool {
	return d.number(i, boolInt(prev)) != 0
}

func (d *decoder) channel(i int, prev uint8) uint8 {
	return uint8(crosshair.ClampInt(d.number(i, int(prev)), 0, 255))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
