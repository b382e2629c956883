package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-wave/dsp/core"
)

func ExampleApplyPipelineOptions() {
	cfg := core.ApplyPipelineOptions(
		core.WithLimit(2048),
		core.WithSmoothing(true),
	)

	fmt.Printf("limit=%d smooth=%t window=%d scale=%s\n", cfg.Limit, cfg.Smooth, cfg.Window, cfg.Scale)

	// Output:
	// limit=2048 smooth=true window=16 scale=db
}

func ExampleLinearToDB() {
	fmt.Printf("%.1f %.1f\n", core.LinearToDB(1), core.LinearToDB(0.1))

	// Output:
	// 0.0 -20.0
}
