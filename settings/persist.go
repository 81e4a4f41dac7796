package settings

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/crosshair"
)

// Namespace prefixes every persisted key.
const Namespace = "crosshair/"

// Persisted keys.
const (
	KeyFirstTime          = Namespace + "firstTime"
	KeyEnabled            = Namespace + "enabled"
	KeyColor              = Namespace + "color"
	KeyLength             = Namespace + "length"
	KeyGap                = Namespace + "gap"
	KeyThickness          = Namespace + "thickness"
	KeyDotEnabled         = Namespace + "dotEnabled"
	KeyDotSize            = Namespace + "dotSize"
	KeyShadowEnabled      = Namespace + "shadowEnabled"
	KeyShadowBlurRadius   = Namespace + "shadowBlurRadius"
	KeyShadowAlpha        = Namespace + "shadowAlpha"
	KeyShadowOffsetX      = Namespace + "shadowOffsetX"
	KeyShadowOffsetY      = Namespace + "shadowOffsetY"
	KeyPadding            = Namespace + "padding"
	KeySupersample        = Namespace + "supersample"
	KeyCurrentScreenIndex = Namespace + "currentScreenIndex"
)

// AllKeys lists every persisted key in the order Save writes them.
var AllKeys = []string{
	KeyFirstTime,
	KeyEnabled,
	KeyColor,
	KeyLength,
	KeyGap,
	KeyThickness,
	KeyDotEnabled,
	KeyDotSize,
	KeyShadowEnabled,
	KeyShadowBlurRadius,
	KeyShadowAlpha,
	KeyShadowOffsetX,
	KeyShadowOffsetY,
	KeyPadding,
	KeySupersample,
	KeyCurrentScreenIndex,
}

// Load reads c from s. Each key is read independently: a missing key keeps
// the value already in c, a malformed one is logged and also keeps it.
// The shadow color is rebuilt as black with the stored alpha.
func Load(s Store, c *Config) {
	loadBool(s, KeyFirstTime, &c.FirstTime)
	loadBool(s, KeyEnabled, &c.Enabled)
	loadColor(s, KeyColor, c)
	loadInt(s, KeyLength, &c.Length)
	loadInt(s, KeyGap, &c.Gap)
	loadInt(s, KeyThickness, &c.Thickness)
	loadBool(s, KeyDotEnabled, &c.Dot)
	loadInt(s, KeyDotSize, &c.DotSize)
	loadBool(s, KeyShadowEnabled, &c.Shadow)
	loadInt(s, KeyShadowBlurRadius, &c.ShadowBlurRadius)
	loadInt(s, KeyShadowOffsetX, &c.ShadowOffset.X)
	loadInt(s, KeyShadowOffsetY, &c.ShadowOffset.Y)
	loadInt(s, KeyPadding, &c.Padding)
	loadFloat(s, KeySupersample, &c.Supersample)
	loadInt(s, KeyCurrentScreenIndex, &c.CurrentScreenIndex)

	alpha := int(c.ShadowColor.A)
	loadInt(s, KeyShadowAlpha, &alpha)
	c.ShadowColor.R, c.ShadowColor.G, c.ShadowColor.B = 0, 0, 0
	c.ShadowColor.A = uint8(crosshair.ClampInt(alpha, 0, 255))
}

// Save clamps c and writes every key to s, then syncs the store.
func Save(s Store, c *Config) error {
	c.Clamp()

	s.SetValue(KeyFirstTime, c.FirstTime)
	s.SetValue(KeyEnabled, c.Enabled)
	s.SetValue(KeyColor, FormatColor(c.Color.R, c.Color.G, c.Color.B))
	s.SetValue(KeyLength, c.Length)
	s.SetValue(KeyGap, c.Gap)
	s.SetValue(KeyThickness, c.Thickness)
	s.SetValue(KeyDotEnabled, c.Dot)
	s.SetValue(KeyDotSize, c.DotSize)
	s.SetValue(KeyShadowEnabled, c.Shadow)
	s.SetValue(KeyShadowBlurRadius, c.ShadowBlurRadius)
	s.SetValue(KeyShadowAlpha, int(c.ShadowColor.A))
	s.SetValue(KeyShadowOffsetX, c.ShadowOffset.X)
	s.SetValue(KeyShadowOffsetY, c.ShadowOffset.Y)
	s.SetValue(KeyPadding, c.Padding)
	s.SetValue(KeySupersample, c.Supersample)
	s.SetValue(KeyCurrentScreenIndex, c.CurrentScreenIndex)

	if err := s.Sync(); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	crosshair.Logger().Info("settings: saved")
	return nil
}

// FormatColor returns the "#rrggbb" form of an RGB color.
func FormatColor(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (r, g, b uint8, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("settings: parse color %q: %w", s, err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

func loadBool(s Store, key string, dst *bool) {
	v, ok := s.Value(key)
	if !ok {
		return
	}
	b, ok := toBool(v)
	if !ok {
		warnMalformed(key, v)
		return
	}
	*dst = b
}

func loadInt(s Store, key string, dst *int) {
	v, ok := s.Value(key)
	if !ok {
		return
	}
	n, ok := toInt(v)
	if !ok {
		warnMalformed(key, v)
		return
	}
	*dst = n
}

func loadFloat(s Store, key string, dst *float64) {
	v, ok := s.Value(key)
	if !ok {
		return
	}
	f, ok := toFloat(v)
	if !ok {
		warnMalformed(key, v)
		return
	}
	*dst = f
}

func loadColor(s Store, key string, c *Config) {
	v, ok := s.Value(key)
	if !ok {
		return
	}
	str, ok := v.(string)
	if !ok {
		warnMalformed(key, v)
		return
	}
	r, g, b, err := ParseColor(str)
	if err != nil {
		warnMalformed(key, v)
		return
	}
	c.Color.R, c.Color.G, c.Color.B, c.Color.A = r, g, b, 255
}

func warnMalformed(key string, v any) {
	crosshair.Logger().Warn("settings: malformed value, keeping previous", "key", key, "value", v)
}

// toInt accepts the integer, float, bool and string encodings a store
// may hand back.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return 0, false
		}
		return int(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	}
	n, ok := toInt(v)
	return n != 0, ok
}

func toFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, !math.IsNaN(f)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		return parsed, err == nil && !math.IsNaN(parsed)
	}
	n, ok := toInt(v)
	return float64(n), ok
}
