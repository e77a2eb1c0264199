// Package analyzer computes note density metrics over an ordered series
// of onset times. All functions are pure: the caller's slice is never
// mutated and no state survives a call.
package analyzer

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/soravia/notedense/util"
)

// ErrUndefined is returned when the inputs make the requested metric
// mathematically meaningless (no onsets, zero duration, degenerate
// windows). Callers decide whether to surface it or substitute a
// default.
var ErrUndefined = errors.New("undefined result")

// parallelWindows is the partition size at which window counting fans
// out over goroutines. Below it the goroutine overhead costs more than
// the counting.
const parallelWindows = 256

// prepare returns an ascending view of onsets. When the input is
// already sorted it is returned as-is; otherwise a private copy is
// sorted so the caller's slice stays untouched.
func prepare(onsets []float64) []float64 {
	if sort.Float64sAreSorted(onsets) {
		return onsets
	}
	sorted := make([]float64, len(onsets))
	copy(sorted, onsets)
	sort.Float64s(sorted)
	return sorted
}

// lowerBound returns the index of the first onset >= t.
func lowerBound(onsets []float64, t float64) int {
	return sort.Search(len(onsets), func(i int) bool { return onsets[i] >= t })
}

// CountWindow returns how many onsets fall inside the half-open window
// [start, end). onsets must be ascending. An empty series or empty
// interval yields 0.
func CountWindow(onsets []float64, start float64, end float64) int {
	if end <= start {
		return 0
	}
	return lowerBound(onsets, end) - lowerBound(onsets, start)
}

// AvgNPS returns the average notes per second over the map's duration.
func AvgNPS(onsets []float64, durationMS float64) (float64, error) {
	if len(onsets) == 0 {
		return 0, fmt.Errorf("average nps of a map with no notes: %w", ErrUndefined)
	}
	if !(durationMS > 0) {
		return 0, fmt.Errorf("average nps over %vms: %w", durationMS, ErrUndefined)
	}
	return float64(len(onsets)) / (durationMS / 1000.0), nil
}

// Distribution splits [0, durationMS) into blocks equal-width windows
// and returns the local NPS of each, in chronological order.
func Distribution(onsets []float64, durationMS float64, blocks int) ([]float64, error) {
	if blocks <= 0 {
		return nil, fmt.Errorf("distribution over %v blocks: %w", blocks, ErrUndefined)
	}
	if len(onsets) == 0 {
		return nil, fmt.Errorf("distribution of a map with no notes: %w", ErrUndefined)
	}
	if !(durationMS > 0) {
		return nil, fmt.Errorf("distribution over %vms: %w", durationMS, ErrUndefined)
	}
	width := durationMS / float64(blocks)
	return partition(prepare(onsets), durationMS, blocks, width)
}

// ByFrequency samples local NPS at the given rate: windows are
// 1000/frequencyHz milliseconds wide and the final window is truncated
// to the map's duration.
func ByFrequency(onsets []float64, durationMS float64, frequencyHz float64) ([]float64, error) {
	if !(frequencyHz > 0) || math.IsInf(frequencyHz, 1) {
		return nil, fmt.Errorf("sampling at %vHz: %w", frequencyHz, ErrUndefined)
	}
	if len(onsets) == 0 {
		return nil, fmt.Errorf("distribution of a map with no notes: %w", ErrUndefined)
	}
	if !(durationMS > 0) {
		return nil, fmt.Errorf("distribution over %vms: %w", durationMS, ErrUndefined)
	}
	width := 1000.0 / frequencyHz
	n := int(math.Ceil(durationMS / width))
	return partition(prepare(onsets), durationMS, n, width)
}

// partition counts onsets across n windows of the given width starting
// at 0 and converts each count to notes per second using the window's
// actual width. Every window is half-open except the last, which is
// clamped to durationMS and closed, so an onset sitting exactly on the
// map's end is still assigned; the per-window counts always sum to
// len(onsets).
func partition(onsets []float64, durationMS float64, n int, width float64) ([]float64, error) {
	if n <= 0 || !(width > 0) || math.IsInf(width, 1) {
		return nil, fmt.Errorf("partition into %v windows of %vms: %w", n, width, ErrUndefined)
	}
	lastStart := float64(n-1) * width
	if !(durationMS-lastStart > 0) {
		// rounding collapsed the final window
		return nil, fmt.Errorf("final window of a %v-window partition is empty: %w", n, ErrUndefined)
	}

	res := make([]float64, n)
	fill := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			start := float64(i) * width
			end := util.Min(start+width, durationMS)
			var count int
			if i == n-1 {
				end = durationMS
				count = len(onsets) - lowerBound(onsets, start)
			} else {
				count = CountWindow(onsets, start, end)
			}
			res[i] = float64(count) / ((end - start) / 1000.0)
		}
	}

	if n < parallelWindows {
		fill(0, n)
		return res, nil
	}

	// windows are independent and res indices disjoint, so output order
	// is fixed by index regardless of which worker runs first
	workers := runtime.NumCPU()
	step := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += step {
		hi := util.Min(lo+step, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fill(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return res, nil
}
