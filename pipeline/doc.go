// Package pipeline turns per-series records into renderable traces.
//
// A [Series] carries samples, their rate and optional plot metadata. For a
// given [Kind] of plot, [Prepare] derives the x/y data of a [Trace]: the
// waveform against a time axis, or the magnitude spectrum against
// frequency. Either way the result is downsampled with LTTB to the point
// budget of the [core.PipelineConfig]. [PrepareAll] runs the same work for
// several series concurrently.
package pipeline
