// Package cayley holds the multiplication table of the 2-D projective
// geometric algebra R(2,0,1).
//
// The eight basis blades are indexed in the fixed order
//
//	s, e0, e1, e2, e01, e02, e12, e012
//
// with e0·e0 = 0 and e1·e1 = e2·e2 = 1. Every other package in the module
// (the runtime-tagged multivector and the shape generator) derives its
// product from Table, so a change here changes both.
//
// Shapes are plain uint8 bitmasks: bit i set means blade i holds a real
// value, bit i clear means the blade is statically zero.
package cayley
