// Package raster converts stroked line segments and filled circles into
// anti-aliased pixels.
//
// A stroke is expanded into a fill outline before rasterization: each
// segment becomes the rectangle swept by its width, cut flat at both
// endpoints. Coverage is computed with exact signed-area
// accumulation (golang.org/x/image/vector), so edges that fall on pixel
// boundaries produce fully opaque or fully transparent pixels.
//
// All output is written source-over into premultiplied *image.RGBA.
package raster
