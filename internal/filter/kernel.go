package filter

import "math"

// GaussianKernel generates a normalized 1D Gaussian kernel reaching exactly
// ceil(radius) pixels on each side of the center tap.
//
// The standard deviation is radius/3, so the truncated tails hold less than
// 0.3% of the distribution and the blur never spreads further than radius.
// For radius <= 0 it returns the identity kernel [1].
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}

	halfSize := int(math.Ceil(radius))
	size := halfSize*2 + 1
	sigma := radius / 3
	twoSigmaSq := 2 * sigma * sigma

	kernel := make([]float32, size)
	sum := 0.0
	for i := range kernel {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelExtent returns how many pixels a blur of the given radius reaches
// beyond its input on each side.
func KernelExtent(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius))
}
