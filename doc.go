// Package bitarray implements a fixed-capacity packed bit container
// with bidirectional cursors.
//
// A BitArray stores boolean values as bits inside fixed-width unsigned
// integer blocks. The capacity is set at construction and never
// changes. Bits are numbered most-significant-first within a block:
// Set(0) sets the top bit of block 0, not the bottom bit.
//
// # Quick Start
//
//	a := bitarray.New[uint8](24) // 3 blocks, all bits cleared
//	a.Set(0)                     // top bit of block 0
//	ok, err := a.At(23)          // checked access
//	v := a.Test(5)               // unchecked access
//
// # Traversal
//
// Cursors move forward and backward and cross block boundaries in
// both directions:
//
//	for it, end := a.Begin(), a.End(); !it.Equal(end); it.Next() {
//	    fmt.Print(it.Value())
//	}
//
// Range-over-func iteration is available via All and Reversed:
//
//	for i, v := range a.Reversed() {
//	    fmt.Println(i, v)
//	}
//
// # Checked vs Unchecked Access
//
// At is the only accessor that validates its index and reports a
// recoverable error. Set, Clear and Test trust the caller, like
// indexing a slice: passing an index outside the allocated blocks
// panics.
//
// BitArray is not safe for concurrent use without external
// synchronization.
package bitarray
