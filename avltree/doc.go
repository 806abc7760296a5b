// Package avltree implements the order-statistic-free augmented AVL tree
// used as the sweep structure of the 3D non-dominated filter
// (spec.md §4.2).
//
// Nodes carry both tree links (left/right/parent) and prev/next
// doubly-linked-list links that maintain in-order sequence, so a caller can
// walk the sorted sequence in O(1) per step without an in-order traversal.
// Per spec.md §9 "Pointer graphs and arena discipline", the tree is backed
// by a growable slice arena; node handles are int32 indices into it rather
// than pointers, and index 0 is reserved as the nil sentinel.
//
// A Tree does not know what it orders: the caller supplies a Less function
// comparing two opaque payload values (ints, typically indices into the
// caller's own point slice). This keeps the tree independent of the
// projection it orders; the 3D non-dominated sweep orders the (x, y)
// projections of its points.
package avltree
