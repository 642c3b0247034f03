// Package raster implements the bilinear-downscale / nearest-upscale
// round trip spec.md §4.4 uses to model the lossy image pipeline a
// codeword is expected to survive, and the robustness scorer (§4.5)
// built on top of it.
package raster

import "math"

// Raster is a row-major float64 image of fixed width and height.
type Raster struct {
	Width, Height int
	Data          []float64
}

// New allocates a zeroed Raster of the given size.
func New(width, height int) Raster {
	return Raster{Width: width, Height: height, Data: make([]float64, width*height)}
}

func (r Raster) at(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x > r.Width-1 {
		x = r.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y > r.Height-1 {
		y = r.Height - 1
	}
	return r.Data[y*r.Width+x]
}

// Bilinear downscales (or resamples) src to a dstWidth x dstHeight
// Raster using bilinear interpolation with edge-replicated bounds, per
// spec.md §4.4.
func Bilinear(src Raster, dstWidth, dstHeight int) Raster {
	dst := New(dstWidth, dstHeight)
	xRatio := float64(src.Width) / float64(dstWidth)
	yRatio := float64(src.Height) / float64(dstHeight)
	for dy := 0; dy < dstHeight; dy++ {
		sy := (float64(dy)+0.5)*yRatio - 0.5
		y0 := int(math.Floor(sy))
		y1 := y0 + 1
		fy := sy - float64(y0)
		for dx := 0; dx < dstWidth; dx++ {
			sx := (float64(dx)+0.5)*xRatio - 0.5
			x0 := int(math.Floor(sx))
			x1 := x0 + 1
			fx := sx - float64(x0)

			top := src.at(x0, y0)*(1-fx) + src.at(x1, y0)*fx
			bottom := src.at(x0, y1)*(1-fx) + src.at(x1, y1)*fx
			dst.Data[dy*dstWidth+dx] = top*(1-fy) + bottom*fy
		}
	}
	return dst
}

// NearestUpscale upscales (or resamples) src to a dstWidth x dstHeight
// Raster by nearest-neighbor sampling, per spec.md §4.4. Ties in
// round() are broken away from zero, fixed so that codeword scoring is
// reproducible (spec.md's open question on rounding rule).
func NearestUpscale(src Raster, dstWidth, dstHeight int) Raster {
	dst := New(dstWidth, dstHeight)
	xRatio := float64(src.Width) / float64(dstWidth)
	yRatio := float64(src.Height) / float64(dstHeight)
	for dy := 0; dy < dstHeight; dy++ {
		sy := roundHalfAwayFromZero((float64(dy) + 0.5) * yRatio - 0.5)
		for dx := 0; dx < dstWidth; dx++ {
			sx := roundHalfAwayFromZero((float64(dx) + 0.5) * xRatio - 0.5)
			dst.Data[dy*dstWidth+dx] = src.at(sx, sy)
		}
	}
	return dst
}

func roundHalfAwayFromZero(v float64) int {
	if v >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return int(math.Ceil(v - 0.5))
}
