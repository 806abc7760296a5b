package mooio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/moocore/point"
)

// ReadTable parses spec.md §6's input table format: whitespace-separated
// numeric tokens in d columns, one row per line; blank lines (after
// trimming) separate sets; lines whose first non-blank character is '#' are
// comments; both "\r\n" and "\n" terminate a line.
//
// original_source/c/io_priv.h's read_objective_t_data is a single
// character-at-a-time scanner so it can report partial-token errors mid-row.
// This is a grounded simplification of that scanner: Go's bufio.Scanner
// already handles "\r\n" vs "\n" and buffers whole lines, so ReadTable
// tokenises line by line instead of byte by byte -- the accepted input
// language and the resulting (data, cumsizes, nobj, nsets) are the same;
// see DESIGN.md.
func ReadTable(r io.Reader, opts ...Option) (point.MultiSet, error) {
	_ = resolve(opts)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var data []float64
	var cumsizes []int
	nobjs := 0
	count := 0
	sawAnyRow := false

	flushSet := func() {
		if count == 0 {
			return
		}
		total := 0
		if len(cumsizes) > 0 {
			total = cumsizes[len(cumsizes)-1]
		}
		cumsizes = append(cumsizes, total+count)
		count = 0
	}

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" {
			flushSet()
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if nobjs == 0 {
			nobjs = len(fields)
		} else if len(fields) != nobjs {
			return point.MultiSet{}, fmt.Errorf("%w: row has %d columns, first row has %d", ErrRaggedRow, len(fields), nobjs)
		}

		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return point.MultiSet{}, fmt.Errorf("%w: %q", ErrConversion, tok)
			}
			data = append(data, v)
		}
		count++
		sawAnyRow = true
	}
	if err := scanner.Err(); err != nil {
		return point.MultiSet{}, fmt.Errorf("%w: %v", ErrUnexpectedEOF, err)
	}
	flushSet()

	if !sawAnyRow {
		return point.MultiSet{}, ErrEmptyInput
	}

	full := make([]int, len(cumsizes)+1)
	copy(full[1:], cumsizes)

	ms := point.MultiSet{
		Matrix:   point.Matrix{Data: data, N: full[len(full)-1], D: nobjs},
		CumSizes: full,
	}
	if err := ms.Validate(); err != nil {
		return point.MultiSet{}, err
	}
	return ms, nil
}
