package mooio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/moocore/point"
)

// WriteTable renders ms in spec.md §6's output table format: one row per
// point, columns space-separated at 15-digit precision (original_source/c's
// point_printf_format "%-22.15g" field-width dropped since Go's writer does
// not need fixed-width columns), sets separated by a single blank line.
func WriteTable(w io.Writer, ms point.MultiSet, opts ...Option) error {
	_ = resolve(opts)

	if ms.N == 0 {
		return ErrWriteEmptySet
	}
	if err := ms.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for s := 0; s < ms.NumSets(); s++ {
		if s > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		set := ms.Set(s)
		for i := 0; i < set.N; i++ {
			row := set.Row(i)
			for k, v := range row {
				if k > 0 {
					if err := bw.WriteByte(' '); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(bw, "%.15g", v); err != nil {
					return err
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
