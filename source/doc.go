// Package source acquires the signals that feed the pipeline.
//
// A [Source] is either a bundled recording read from a [Location], an
// uploaded file held in memory, or one of the synthetic "linear" and "sine"
// test signals. Recordings are decoded by container format, mixed down to
// mono and normalized to a peak of 1 before they are handed out as a
// [pipeline.Series].
package source
