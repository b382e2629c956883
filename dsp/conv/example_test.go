package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/conv"
)

func ExampleConvolveMode() {
	out, err := conv.ConvolveMode([]float64{1, 2, 3, 4, 5}, []float64{1, 1, 1}, conv.ModeSame)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// [3 6 9 12 9]
}
