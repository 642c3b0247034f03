package raster

import "fmt"

// CodewordWidth and CodewordHeight are the fixed dimensions of the
// conceptual codeword image: 256x256 pixels for 65,536 bits.
const (
	CodewordWidth  = 256
	CodewordHeight = 256
	downscaledSize = 128
)

// RobustnessScore implements spec.md §4.5: round bits (a
// CodewordWidth*CodewordHeight raster of 0.0/1.0 values) through
// bilinear-downscale to 128x128, threshold at > 0.5, nearest-upscale
// back to 256x256, and return the fraction of pixels that match the
// original. Higher is better; 1.0 means the round trip was lossless.
func RobustnessScore(bits []float64) (float64, error) {
	if len(bits) != CodewordWidth*CodewordHeight {
		return 0, fmt.Errorf("raster: RobustnessScore needs %d values, got %d", CodewordWidth*CodewordHeight, len(bits))
	}
	src := Raster{Width: CodewordWidth, Height: CodewordHeight, Data: bits}

	downscaled := Bilinear(src, downscaledSize, downscaledSize)
	thresholded := make([]float64, len(downscaled.Data))
	for i, v := range downscaled.Data {
		if v > 0.5 {
			thresholded[i] = 1
		}
	}
	thresholdedRaster := Raster{Width: downscaledSize, Height: downscaledSize, Data: thresholded}

	upscaled := NearestUpscale(thresholdedRaster, CodewordWidth, CodewordHeight)

	equal := 0
	for i, v := range bits {
		if int(v) == int(upscaled.Data[i]) {
			equal++
		}
	}
	return float64(equal) / float64(len(bits)), nil
}
