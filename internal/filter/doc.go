// Package filter provides the image-processing primitives used for the
// crosshair drop shadow:
//   - Gaussian kernel generation
//   - separable single-channel blur with zero padding
//   - drop shadow (offset + blur + colorize, composited behind the source)
//
// Buffers are premultiplied *image.RGBA. Callers are expected to allocate
// the destination large enough for the shadow extent (see DropShadow.Extent);
// nothing outside the buffer is sampled, missing pixels count as transparent.
package filter
