package downsample_test

import (
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/downsample"
)

func ExampleLTTB() {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	y := []float64{0, 0, 9, 0, 0, -3, 0}

	xr, yr, err := downsample.LTTB(x, y, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(xr, yr)

	// Output:
	// [0 2 3 6] [0 9 0 0]
}
