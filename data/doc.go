// Package data provides the bounded containers that feed chart rendering:
// value-type points, capacity-checked series, a thread-safe ring buffer for
// streaming data, dataset bounds, and point aggregation for downsampling
// large inputs to a drawable size.
//
// All containers enforce their capacity explicitly. Exceeding a capacity is
// reported as [ErrBufferFull], never silently truncated, so callers on
// memory-constrained targets always know when data was rejected.
package data
