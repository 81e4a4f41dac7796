package filter

// BlurAlpha applies a separable Gaussian blur to a width×height
// single-channel buffer and returns a new buffer of the same size.
// Taps that fall outside the buffer read zero.
func BlurAlpha(src []float32, width, height int, radius float64) []float32 {
	dst := make([]float32, width*height)
	if radius <= 0 {
		copy(dst, src)
		return dst
	}

	kernel := GaussianKernel(radius)
	half := len(kernel) / 2
	temp := make([]float32, width*height)

	// Horizontal pass: src -> temp.
	for y := 0; y < height; y++ {
		row := src[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var sum float32
			for k, w := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= width {
					continue
				}
				sum += row[kx] * w
			}
			temp[y*width+x] = sum
		}
	}

	// Vertical pass: temp -> dst.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, w := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= height {
					continue
				}
				sum += temp[ky*width+x] * w
			}
			dst[y*width+x] = sum
		}
	}

	return dst
}
