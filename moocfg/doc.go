// Package moocfg carries the ambient, cross-cutting configuration that every
// other moocore package depends on: the error-kind taxonomy of spec.md §7 and
// the host-configurable diagnostic sink.
//
// moocfg deliberately holds no package-level mutable state. The only
// process-wide object, the Sink, is constructed by the host and threaded
// through call sites (functional options, struct fields) rather than stored
// in a file-scope var — see spec.md §9 "Global mutable state".
package moocfg
