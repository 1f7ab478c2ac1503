// Package driver sorts the sample sequence and prints it.
package driver

import (
	"bufio"
	"io"
	"iter"
	"slices"
	"strconv"

	"bsort/internal/sorter"
	"bsort/internal/utils"

	"github.com/go-logr/logr"
)

// Header is printed on its own line ahead of the sorted values.
const Header = "Sorted Array:"

// Sample is the sequence sorted by Run.
var Sample = []int{9, 6, 7, 8, 3, 10, 1}

type Driver struct {
	out io.Writer
	log logr.Logger
}

func New(out io.Writer, log logr.Logger) *Driver {
	return &Driver{out: out, log: log}
}

// Run sorts a copy of Sample and writes the report to the driver's writer.
func (d *Driver) Run() error {
	data := slices.Clone(Sample)
	st, err := sorter.SortStats(data, len(data))
	if err != nil {
		return utils.MakeErrorTrace(err, "sort sample")
	}
	d.log.V(1).Info("sorted sample", "length", len(data), "passes", st.Passes,
		"comparisons", st.Comparisons, "swaps", st.Swaps)

	w := bufio.NewWriter(d.out)
	if _, err := w.WriteString(Header + "\n"); err != nil {
		return utils.MakeErrorTrace(err, "write header")
	}
	for tok := range Tokens(data) {
		if _, err := w.WriteString(tok); err != nil {
			return utils.MakeErrorTrace(err, "write value")
		}
	}
	if err := w.Flush(); err != nil {
		return utils.MakeErrorTrace(err, "flush output")
	}
	return nil
}

// Tokens yields the decimal form of each value followed by a single space.
// Values are formatted only as they are pulled, and the sequence can be
// ranged over once; later ranges yield nothing.
func Tokens(values []int) iter.Seq[string] {
	used := false
	return func(yield func(string) bool) {
		if used {
			return
		}
		used = true
		for _, v := range values {
			if !yield(strconv.Itoa(v) + " ") {
				return
			}
		}
	}
}
