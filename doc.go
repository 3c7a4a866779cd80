// Package vecmat is a small homogeneous-coordinate linear algebra toolkit
// for 3D transforms: points as 4-component vectors, transforms as 4×4
// row-major matrices.
//
// 🚀 What is vecmat?
//
//	A pure-Go, value-typed library that brings together:
//		• Vector4: arithmetic, cross and component-wise products, length, normalization
//		• Matrix4: scale, translate, axis and arbitrary-axis rotations, lookAt
//		• Shaped products that skip the known zeros of elementary transforms
//		• Cofactor inverse, determinant, transpose
//		• A module/test-case harness with deep, type-coercing equality
//
// ✨ Why choose vecmat?
//
//   - Loose inputs at the edge: slices, arrays, maps and numeric strings
//     are coerced once, then everything is plain float64
//   - Chainable methods that mutate in place, pure functions that never do
//   - Sentinel errors, never panics on user input
//   - Pure Go: no cgo
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     tolerance, sentinel errors, scalar coercion
//	vector/   Vector4 and its methods and pure functions
//	matrix/   Matrix4, builders, kernels, inverse
//	harness/  module runner, IsEqual, Format
//
// Quick example:
//
//	m := matrix.Identity()
//	m.ZRotate(90).Translate(vector.XYZ(25, 0, 0))
//	p := m.Transform(vector.XYZ(5, 0, 0)) // (0, 30, 0, 1)
//
// Composition is right-multiplication: the builder called last is applied
// to the point first. See examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/vecmat
package vecmat
