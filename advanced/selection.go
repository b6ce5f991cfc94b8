package advanced

// Linear time selection over float64 values. MedianOfMedians is the cheap
// approximate median that Kirkpatrick–Seidel splits on; Select is exact and
// worst case linear. Neither modifies its input.

const groupSize = 5

// Compute the median of medians: for up to five values, the lower middle
// value; otherwise, the median of medians of the lower middles of consecutive
// groups of five (the last group may be short).
//
// The result is always one of the input values, and lands near the middle in
// rank, but it is not the median in general.
//
// Since the lower middle of two or more values is never the largest one, the
// result is never a unique maximum of the input when there are at least two
// values. Kirkpatrick–Seidel depends on this: splitting at the maximum x would
// leave nothing to the right of the split line.
func MedianOfMedians(values []float64) float64 {
	if len(values) == 0 {
		fatalf(ErrPrecondition, "median of an empty sequence")
	}
	work := append([]float64(nil), values...)
	for len(work) > groupSize {
		// The median of group g is written to work[g], which always belongs to
		// a group that has already been read.
		groups := 0
		for i := 0; i < len(work); i += groupSize {
			end := min(i+groupSize, len(work))
			work[groups] = lowerMiddle(work[i:end])
			groups++
		}
		work = work[:groups]
	}
	return lowerMiddle(work)
}

// Select returns the k-th smallest value (counting from zero). This is the
// classic BFPRT algorithm: the pivot is the exact median of the group medians,
// which guarantees a constant fraction of the values is discarded each round.
func Select(values []float64, k int) float64 {
	if len(values) == 0 {
		fatalf(ErrPrecondition, "select rank %d from an empty sequence", k)
	}
	if k < 0 || k >= len(values) {
		fatalf(ErrPrecondition, "rank %d out of range for %d values", k, len(values))
	}
	return selectInPlace(append([]float64(nil), values...), k)
}

// Median returns the exact lower median.
func Median(values []float64) float64 {
	if len(values) == 0 {
		fatalf(ErrPrecondition, "median of an empty sequence")
	}
	return Select(values, (len(values)-1)/2)
}

func selectInPlace(work []float64, k int) float64 {
	for {
		if len(work) <= groupSize {
			insertionSort(work)
			return work[k]
		}

		pivot := medianOfGroupMedians(work)
		lt, gt := partition3(work, pivot)
		switch {
		case k < lt:
			work = work[:lt]
		case k < gt:
			return pivot
		default:
			k -= gt
			work = work[gt:]
		}
	}
}

// Sorts each group of work in place, which is harmless since the caller is
// about to partition it anyway.
func medianOfGroupMedians(work []float64) float64 {
	medians := make([]float64, 0, (len(work)+groupSize-1)/groupSize)
	for i := 0; i < len(work); i += groupSize {
		end := min(i+groupSize, len(work))
		medians = append(medians, lowerMiddle(work[i:end]))
	}
	return selectInPlace(medians, (len(medians)-1)/2)
}

// Three way partition around pivot. Afterwards, work[:lt] < pivot,
// work[lt:gt] == pivot and work[gt:] > pivot.
func partition3(work []float64, pivot float64) (lt, gt int) {
	gt = len(work)
	for i := 0; i < gt; {
		switch {
		case work[i] < pivot:
			work[lt], work[i] = work[i], work[lt]
			lt++
			i++
		case work[i] > pivot:
			gt--
			work[gt], work[i] = work[i], work[gt]
		default:
			i++
		}
	}
	return lt, gt
}

// Sorts a short slice in place and returns its lower middle value.
func lowerMiddle(values []float64) float64 {
	insertionSort(values)
	return values[(len(values)-1)/2]
}

func insertionSort(values []float64) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}
