package code

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/crosshair/settings"
)

func TestGenerateDefault(t *testing.T) {
	c := settings.Default()
	assert.Equal(t, "1;255;255;255;8;32;2;1;4;1;3;255", Generate(c))
}

func TestGenerateFieldCount(t *testing.T) {
	c := settings.Default()
	c.Enabled = false
	c.Dot = false
	c.Shadow = false
	c.Color = color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	got := Generate(c)

	assert.Len(t, strings.Split(got, Separator), NumFields)
	assert.False(t, strings.HasSuffix(got, Separator), "no trailing separator")
	assert.Equal(t, "0;1;2;3;8;32;2;0;4;0;3;255", got)
}

func TestRoundTrip(t *testing.T) {
	c := settings.Default()
	c.Enabled = false
	c.Color = color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	c.Length = 50
	c.Gap = 0
	c.Thickness = 7
	c.Dot = false
	c.DotSize = 100
	c.Shadow = true
	c.ShadowBlurRadius = 24
	c.ShadowColor = color.NRGBA{A: 0}
	c.Clamp()

	got := settings.Default()
	require.NoError(t, Apply(Generate(c), &got))

	assert.Equal(t, c, got)
}

func TestApplyWrongFieldCount(t *testing.T) {
	tests := []string{
		"1;2;3",
		"",
		"1;255;255;255;8;32;2;1;4;1;3;255;",
		"1;255;255;255;8;32;2;1;4;1;3",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			c := settings.Default()
			c.Length = 17
			before := c

			err := Apply(in, &c)

			assert.ErrorIs(t, err, ErrFieldCount)
			assert.Equal(t, before, c, "settings must be unchanged")
		})
	}
}

func TestApplyNonNumericField(t *testing.T) {
	c := settings.Default()
	c.Length = 13

	err := Apply("0;10;20;30;abc;5;3;0;6;0;7;99", &c)
	require.NoError(t, err)

	assert.Equal(t, 13, c.Length, "length keeps previous value")
	assert.False(t, c.Enabled)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, c.Color)
	assert.Equal(t, 5, c.Gap)
	assert.Equal(t, 3, c.Thickness)
	assert.False(t, c.Dot)
	assert.Equal(t, 6, c.DotSize)
	assert.False(t, c.Shadow)
	assert.Equal(t, 7, c.ShadowBlurRadius)
	assert.Equal(t, color.NRGBA{A: 99}, c.ShadowColor)
}

func TestApplyClamps(t *testing.T) {
	c := settings.Default()

	require.NoError(t, Apply(" 2;300;-5;128;0;500;99;7;-1;1;100;1000 ", &c))

	assert.True(t, c.Enabled)
	assert.True(t, c.Dot)
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 128, A: 255}, c.Color)
	assert.Equal(t, 1, c.Length)
	assert.Equal(t, 100, c.Gap)
	assert.Equal(t, 50, c.Thickness)
	assert.Equal(t, 0, c.DotSize)
	assert.Equal(t, 24, c.ShadowBlurRadius)
	assert.Equal(t, uint8(255), c.ShadowColor.A)
}

func TestApplyLeavesOtherFields(t *testing.T) {
	c := settings.Default()
	c.FirstTime = false
	c.CurrentScreenIndex = 2
	c.Padding = 11

	require.NoError(t, Apply(Generate(settings.Default()), &c))

	assert.False(t, c.FirstTime)
	assert.Equal(t, 2, c.CurrentScreenIndex)
	assert.Equal(t, 11, c.Padding)
}
