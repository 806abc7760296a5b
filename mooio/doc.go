// Package mooio implements spec.md §6's input/output table formats: the
// whitespace-separated, blank-line-delimited, #-commented multi-set table
// ReadTable parses into a point.MultiSet, and the 15-digit row-per-point
// format WriteTable renders back out. Bounds computes per-column lo/hi pairs
// using gonum's floats, the bounds helper spec.md §2 lists alongside the
// loader.
//
// Grounded on original_source/c/io.c and io_priv.h's read_objective_t_data.
package mooio
