// Package moocore is a thin facade over the multi-objective-optimisation
// core: non-dominated filtering and ranking, exact and approximate
// hypervolume and its per-point contributions, weighted hypervolume, the
// empirical attainment function, and the GD/IGD/IGD+/epsilon/R2 quality
// indicators, plus the table I/O and bounds helpers that feed them.
//
// moocore itself re-exports nothing: every algorithm lives in its own leaf
// package (point, nondominated, hypervolume, whv, eaf, indicators, mooio,
// moocfg, avltree), the way lvlath splits core/matrix/algorithms rather than
// exposing one monolithic package. Import the leaf package(s) a given
// computation needs:
//
//	data, err := mooio.ReadTable(r)
//	front, err := nondominated.Filter(data.Matrix)
//	vol, err := hypervolume.Compute(front, ref)
//
// moocfg.Sink is the one piece of process-wide configuration: install it
// once, or pass moocfg.WithSink-style options into any package's functional
// options, before calling into the core.
package moocore
