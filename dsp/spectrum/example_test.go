package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/spectrum"
)

func ExampleFrequencies() {
	f, err := spectrum.Frequencies(8, 8000)
	if err != nil {
		panic(err)
	}
	fmt.Println(f)

	// Output:
	// [0 1000 2000 3000 4000]
}

func ExampleMagnitude() {
	mag := spectrum.Magnitude([]complex128{1 + 0i, 0 + 1i, -1 + 0i})
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleCompute() {
	s, err := spectrum.Compute([]float64{1, 1, 1, 1}, 4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v %.1f\n", s.Frequencies, s.Magnitudes)

	// Output:
	// [0 1 2] [4.0 0.0 0.0]
}
