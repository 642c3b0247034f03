package raster_test

import (
	"fmt"

	"github.com/sergeymakinen/go-stegocodec/raster"
)

func ExampleRobustnessScore() {
	bits := make([]float64, raster.CodewordWidth*raster.CodewordHeight)
	score, err := raster.RobustnessScore(bits)
	fmt.Println(score, err)
	// Output:
	// 1 <nil>
}
