// SPDX-License-Identifier: MIT

package matrix

// Test-bridge for the unexported kernels.
// Lives in a _test.go file, so it never widens the production API.
var (
	ExportedMul1  = mul1
	ExportedMul2  = mul2
	ExportedMul3  = mul3
	ExportedMul4  = mul4
	ExportedRMul1 = rmul1
	ExportedRMul2 = rmul2
	ExportedRMul3 = rmul3
)
