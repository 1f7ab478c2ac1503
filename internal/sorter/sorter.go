// Package sorter implements in-place bubble sort over signed integers.
package sorter

import (
	"bsort/internal/utils"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrInvalidLength is returned when length is negative or exceeds the
// sequence.
var ErrInvalidLength = errors.New("invalid length")

// Stats counts the work done by one sort call.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Sort orders the first length elements of seq in non-decreasing order.
func Sort[T constraints.Signed](seq []T, length int) error {
	_, err := SortStats(seq, length)
	return err
}

// SortStats is Sort, also reporting how many passes, comparisons and swaps
// were made. Every pass runs to its bound: there is no early exit on a pass
// without swaps.
func SortStats[T constraints.Signed](seq []T, length int) (Stats, error) {
	var st Stats
	if length < 0 || length > len(seq) {
		return st, utils.MakeErrorTrace(ErrInvalidLength, "length %d, sequence holds %d", length, len(seq))
	}

	for i := 0; i < length-1; i++ {
		// seq[length-i:length] already holds the i largest values
		for j := 0; j < length-i-1; j++ {
			st.Comparisons++
			if seq[j] > seq[j+1] {
				seq[j], seq[j+1] = seq[j+1], seq[j]
				st.Swaps++
			}
		}
		st.Passes++
	}
	return st, nil
}
