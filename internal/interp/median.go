package interp

import (
	"sort"
	"strconv"
)

// median reads a count n, then n integer lines, and writes the median of
// the multiset: the middle element for odd n, the arithmetic mean of the
// two middle elements (invariant decimal, dot separator) for even n, and
// "0" for n == 0 (spec.md 4.4.2).
func (l *Loop) median() error {
	n, err := l.readNumber()
	if err != nil {
		return err
	}

	nums := make([]int64, 0, n)
	for i := int64(0); i < n; i++ {
		v, err := l.readNumber()
		if err != nil {
			return err
		}
		nums = append(nums, v)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	var out string
	switch {
	case n == 0:
		out = "0"
	case n%2 == 1:
		out = strconv.FormatInt(nums[n/2], 10)
	default:
		half := float64(nums[n/2-1]+nums[n/2]) / 2
		out = strconv.FormatFloat(half, 'f', -1, 64)
	}

	return l.console.WriteLine(out)
}
