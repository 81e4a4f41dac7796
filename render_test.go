package crosshair

import (
	"bytes"
	"image"
	"image/color"
	"sync"
	"testing"
)

// exampleParams returns length 8, gap 32, thickness 2, white, no dot, no shadow.
func exampleParams() Params {
	p := DefaultParams()
	p.Length = 8
	p.Gap = 32
	p.Thickness = 2
	p.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	p.DotEnabled = false
	p.ShadowEnabled = false
	return p
}

func alphaAt(m *Image, x, y int) int {
	return int(m.Pix[m.PixOffset(x, y)+3])
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRenderCanvasSize(t *testing.T) {
	m := Render(exampleParams())

	if got := m.Bounds().Size(); got != image.Pt(164, 164) {
		t.Errorf("Bounds size = %v, want 164x164", got)
	}
	if m.LogicalSize != image.Pt(164, 164) {
		t.Errorf("LogicalSize = %v, want 164x164", m.LogicalSize)
	}
	if m.DevicePixelRatio != 1 {
		t.Errorf("DevicePixelRatio = %v, want 1", m.DevicePixelRatio)
	}
}

func TestRenderArms(t *testing.T) {
	m := Render(exampleParams())

	// Center is (82,82); a 2-wide arm covers columns/rows 81 and 82.
	opaque := []image.Point{
		{81, 42}, {82, 49}, // up
		{81, 114}, {82, 121}, // down
		{42, 81}, {49, 82}, // left
		{114, 81}, {121, 82}, // right
	}
	for _, pt := range opaque {
		off := m.PixOffset(pt.X, pt.Y)
		got := color.RGBA{R: m.Pix[off], G: m.Pix[off+1], B: m.Pix[off+2], A: m.Pix[off+3]}
		if got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
			t.Errorf("pixel %v = %v, want opaque white", pt, got)
		}
	}

	clear := []image.Point{
		{81, 41}, {82, 122}, {41, 81}, {122, 82}, // past the tips
		{80, 45}, {83, 45}, {118, 80}, {118, 83}, // beside the arms
	}
	for _, pt := range clear {
		if a := alphaAt(m, pt.X, pt.Y); a != 0 {
			t.Errorf("alpha at %v = %d, want 0", pt, a)
		}
	}
}

func TestRenderGapIsEmpty(t *testing.T) {
	for _, thickness := range []int{1, 2, 3, 8} {
		p := exampleParams()
		p.Thickness = thickness
		m := Render(p)

		c := m.Bounds().Dx() / 2
		inner := p.Gap - 1
		for y := c - inner; y < c+inner; y++ {
			for x := c - inner; x < c+inner; x++ {
				if a := alphaAt(m, x, y); a != 0 {
					t.Fatalf("thickness %d: pixel (%d,%d) inside the gap has alpha %d", thickness, x, y, a)
				}
			}
		}
	}
}

func TestRenderDot(t *testing.T) {
	p := exampleParams()
	p.DotEnabled = true
	p.DotSize = 4
	m := Render(p)

	for _, pt := range []image.Point{{81, 81}, {82, 81}, {81, 82}, {82, 82}} {
		if a := alphaAt(m, pt.X, pt.Y); a != 255 {
			t.Errorf("dot pixel %v alpha = %d, want 255", pt, a)
		}
	}
	// Dot is centered: the ring around it is symmetric.
	for d := 0; d < 4; d++ {
		l, r := alphaAt(m, 80-d, 81), alphaAt(m, 83+d, 81)
		if absDiff(l, r) > 1 {
			t.Errorf("dot not centered: alpha(%d,81)=%d, alpha(%d,81)=%d", 80-d, l, 83+d, r)
		}
	}
	// Disjoint from the arms.
	for y := 85; y < 114; y++ {
		if a := alphaAt(m, 82, y); a != 0 {
			t.Errorf("pixel (82,%d) between dot and arm has alpha %d", y, a)
		}
	}
}

func TestRenderPixelAlignmentSymmetry(t *testing.T) {
	tests := []struct {
		name      string
		thickness int
		// mirror maps a pixel index to its mirror image about the arm axis.
		mirror func(int) int
		rows   []int
		empty  []int
	}{
		{"odd", 3, func(v int) int { return 164 - v }, []int{81, 82, 83}, []int{80, 84}},
		{"even", 2, func(v int) int { return 163 - v }, []int{81, 82}, []int{80, 83}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := exampleParams()
			p.Thickness = tt.thickness
			m := Render(p)

			// Across the stroke: fully covered rows, nothing bleeding out.
			for _, row := range tt.rows {
				if a := alphaAt(m, 118, row); a != 255 {
					t.Errorf("alpha(118,%d) = %d, want 255", row, a)
				}
			}
			for _, row := range tt.empty {
				if a := alphaAt(m, 118, row); a != 0 {
					t.Errorf("alpha(118,%d) = %d, want 0", row, a)
				}
			}

			// Along the arms: left/right and up/down mirror each other.
			row, col := tt.rows[0], tt.rows[0]
			for x := 1; x < 164; x++ {
				a, b := alphaAt(m, x, row), alphaAt(m, tt.mirror(x), row)
				if absDiff(a, b) > 1 {
					t.Errorf("row %d: alpha(%d)=%d, mirrored alpha(%d)=%d", row, x, a, tt.mirror(x), b)
				}
			}
			for y := 1; y < 164; y++ {
				a, b := alphaAt(m, col, y), alphaAt(m, col, tt.mirror(y))
				if absDiff(a, b) > 1 {
					t.Errorf("col %d: alpha(%d)=%d, mirrored alpha(%d)=%d", col, y, a, tt.mirror(y), b)
				}
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := DefaultParams()
	p.SupersampleFactor = 1.5
	p.ShadowOffset = image.Pt(2, -3)

	a := Render(p)
	b := Render(p)

	if a.Bounds() != b.Bounds() || !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical parameters produced different pixels")
	}
}

func TestRenderConcurrent(t *testing.T) {
	p := DefaultParams()
	want := Render(p)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Render(p)
			if !bytes.Equal(got.Pix, want.Pix) {
				t.Error("concurrent render differs from sequential render")
			}
		}()
	}
	wg.Wait()
}

func TestRenderShadow(t *testing.T) {
	p := exampleParams()
	p.ShadowEnabled = true
	p.ShadowBlurRadius = 3
	p.ShadowColor = color.NRGBA{A: 255}
	m := Render(p)

	// pad = 3 + 0 + 2 on each side
	if got := m.Bounds().Dx(); got != 174 {
		t.Fatalf("width = %d, want 174", got)
	}
	if m.LogicalSize != image.Pt(174, 174) {
		t.Errorf("LogicalSize = %v, want 174x174", m.LogicalSize)
	}

	// The shape is unchanged where it is opaque.
	off := m.PixOffset(86, 50)
	if got := (color.RGBA{R: m.Pix[off], G: m.Pix[off+1], B: m.Pix[off+2], A: m.Pix[off+3]}); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("arm pixel under shadow = %v, want opaque white", got)
	}

	// Next to the arm there is black shadow.
	off = m.PixOffset(85, 50)
	if m.Pix[off+3] == 0 {
		t.Error("expected shadow next to the arm")
	}
	if m.Pix[off] != 0 || m.Pix[off+1] != 0 || m.Pix[off+2] != 0 {
		t.Errorf("shadow color = %v, want black", m.Pix[off:off+3])
	}
}

func TestRenderShadowNeverClipped(t *testing.T) {
	tests := []struct {
		name      string
		thickness int
		blur      int
		offset    image.Point
		ss        float64
	}{
		{"max blur", 6, 24, image.Point{}, 1},
		{"blur and offset", 6, 24, image.Pt(5, -5), 1},
		{"max offset", 6, 0, image.Pt(-24, 24), 1},
		{"supersampled", 6, 12, image.Pt(3, 7), 2},
		{"odd thickness", 3, 0, image.Point{}, 1},
		{"odd thickness offset", 3, 2, image.Pt(-4, 4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := exampleParams()
			p.Padding = 0 // arm tips touch the canvas edge
			p.Thickness = tt.thickness
			p.ShadowEnabled = true
			p.ShadowBlurRadius = tt.blur
			p.ShadowOffset = tt.offset
			p.ShadowColor = color.NRGBA{A: 255}
			p.SupersampleFactor = tt.ss
			p.DevicePixelRatio = tt.ss

			m := Render(p)

			wantLogical := p.BaseSize() + 2*p.ShadowPadding()
			if m.LogicalSize.X != wantLogical {
				t.Errorf("LogicalSize = %d, want %d", m.LogicalSize.X, wantLogical)
			}

			w := m.Bounds().Dx()
			for i := 0; i < w; i++ {
				for _, pt := range []image.Point{{i, 0}, {i, w - 1}, {0, i}, {w - 1, i}} {
					if a := alphaAt(m, pt.X, pt.Y); a != 0 {
						t.Fatalf("edge pixel %v has alpha %d, shadow was clipped", pt, a)
					}
				}
			}
		})
	}
}

func TestRenderNoShadowContainment(t *testing.T) {
	p := exampleParams()
	p.ShadowBlurRadius = 24
	p.ShadowOffset = image.Pt(10, 10)
	m := Render(p)

	if got := m.Bounds().Dx(); got != p.BaseSize() {
		t.Errorf("no-shadow width = %d, want base size %d", got, p.BaseSize())
	}
}

func TestRenderSupersampleKeepsLogicalSize(t *testing.T) {
	for _, shadow := range []bool{false, true} {
		p := exampleParams()
		p.ShadowEnabled = shadow
		ref := Render(p)

		for _, ss := range []float64{1.5, 2, 4} {
			p.SupersampleFactor = ss
			m := Render(p)
			if m.LogicalSize != ref.LogicalSize {
				t.Errorf("shadow=%v ss=%v: LogicalSize = %v, want %v", shadow, ss, m.LogicalSize, ref.LogicalSize)
			}
			if m.Bounds() != ref.Bounds() {
				t.Errorf("shadow=%v ss=%v: Bounds = %v, want %v", shadow, ss, m.Bounds(), ref.Bounds())
			}
		}
	}
}

func TestRenderDevicePixelRatio(t *testing.T) {
	p := exampleParams()
	p.SupersampleFactor = 2
	p.DevicePixelRatio = 2
	m := Render(p)

	if got := m.Bounds().Dx(); got != 328 {
		t.Errorf("physical width = %d, want 328", got)
	}
	if m.LogicalSize != image.Pt(164, 164) {
		t.Errorf("LogicalSize = %v, want 164x164", m.LogicalSize)
	}
	if m.Scale() != 2 {
		t.Errorf("Scale() = %v, want 2", m.Scale())
	}
	if m.DevicePixelRatio != 2 {
		t.Errorf("DevicePixelRatio = %v, want 2", m.DevicePixelRatio)
	}
}

func TestRenderDevicePixelRatioIsCrisp(t *testing.T) {
	p := exampleParams()
	p.DevicePixelRatio = 2
	m := Render(p)

	if got := m.Bounds().Dx(); got != 328 {
		t.Fatalf("physical width = %d, want 328", got)
	}

	// At 2x the 2-wide arm is 4 physical pixels centered on row 164,
	// with nothing spilling into the neighbouring rows.
	want := map[int]int{160: 0, 161: 0, 162: 255, 163: 255, 164: 255, 165: 255, 166: 0, 167: 0}
	for y, a := range want {
		if got := alphaAt(m, 236, y); got != a {
			t.Errorf("alpha(236,%d) = %d, want %d", y, got, a)
		}
	}

	// The same arm rendered with supersampling on top matches.
	p.SupersampleFactor = 2
	ref := Render(p)
	for y := 160; y < 168; y++ {
		if a, b := alphaAt(m, 236, y), alphaAt(ref, 236, y); absDiff(a, b) > 2 {
			t.Errorf("row %d: alpha = %d, supersampled alpha = %d", y, a, b)
		}
	}
}

func TestRenderOddThicknessZeroPadding(t *testing.T) {
	p := exampleParams()
	p.Thickness = 3
	p.Padding = 0
	m := Render(p)

	w := m.Bounds().Dx()
	// The shifted arms sit on row and column 40 of the 80 px base canvas.
	left, right := alphaAt(m, 0, 40), alphaAt(m, w-1, 40)
	if left == 0 || right == 0 {
		t.Fatalf("arm tips missing: left %d, right %d", left, right)
	}
	if absDiff(left, right) > 1 {
		t.Errorf("horizontal tips differ: left %d, right %d", left, right)
	}
	top, bottom := alphaAt(m, 40, 0), alphaAt(m, 40, w-1)
	if absDiff(top, bottom) > 1 || top == 0 {
		t.Errorf("vertical tips differ: top %d, bottom %d", top, bottom)
	}
	if m.LogicalSize.X != 80 {
		t.Errorf("LogicalSize = %d, want 80", m.LogicalSize.X)
	}
}

func TestRenderClampsInput(t *testing.T) {
	p := exampleParams()
	p.Length = -5
	p.Thickness = 0
	p.Gap = 1000
	p.SupersampleFactor = 0
	p.DevicePixelRatio = -1

	m := Render(p)

	want := p.Clamp().BaseSize()
	if m.LogicalSize.X != want || m.Bounds().Dx() != want {
		t.Errorf("size = %d (logical %d), want %d", m.Bounds().Dx(), m.LogicalSize.X, want)
	}
}

func TestWorkingSize(t *testing.T) {
	tests := []struct {
		base int
		ss   float64
		want int
	}{
		{164, 1, 164},
		{164, 2, 328},
		{164, 1.5, 246},
		{82, 1.5, 124},
		{10, 1.25, 14},
	}
	for _, tt := range tests {
		if got := workingSize(tt.base, tt.ss); got != tt.want {
			t.Errorf("workingSize(%d, %v) = %d, want %d", tt.base, tt.ss, got, tt.want)
		}
	}
}
