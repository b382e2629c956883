// Package downsample reduces plotted series to a point budget while keeping
// their visual shape.
//
// [LTTB] implements Largest-Triangle-Three-Buckets: the first and last points
// are always kept and the points in between are split into equally sized
// buckets, from each of which the point spanning the largest triangle with
// the previously kept point and the average of the next bucket survives.
package downsample
