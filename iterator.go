package bitarray

import "iter"

// Iterator is a bidirectional cursor over a BitArray's bits in index
// order.
//
// A cursor borrows the array's block storage: it is valid for the
// array's lifetime and must be obtained from Begin or End. The zero
// value is not a valid cursor.
type Iterator[T Block] struct {
	blocks []T
	block  int
	offset int
	bpb    int
}

// Next advances the cursor one bit. Crossing into the next block
// resets the in-block offset to 0, the new block's most significant
// bit.
func (it *Iterator[T]) Next() {
	if it.offset+1 < it.bpb {
		it.offset++
	} else {
		it.offset = 0
		it.block++
	}
}

// Prev moves the cursor one bit back, the exact inverse of Next.
func (it *Iterator[T]) Prev() {
	if it.offset == 0 {
		it.offset = it.bpb - 1
		it.block--
	} else {
		it.offset--
	}
}

// Value reports whether the bit under the cursor is set. It must not
// be called on the End sentinel.
func (it *Iterator[T]) Value() bool {
	return it.blocks[it.block]&(1<<(it.bpb-it.offset-1)) != 0
}

// Equal reports whether two cursors address the same position, i.e.
// both the block and the in-block offset match. Only cursors of the
// same BitArray compare meaningfully.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.block == other.block && it.offset == other.offset
}

// ReverseIterator is a bidirectional cursor over a BitArray's bits in
// reverse index order. Next moves toward bit 0, Prev toward the last
// bit.
//
// Same borrowing contract as Iterator; obtained from RBegin or REnd.
type ReverseIterator[T Block] struct {
	blocks []T
	block  int
	offset int
	bpb    int
}

// newReverseIterator normalizes a negative offset to the last bit
// position of the previous block. This lets RBegin express "the last
// logical bit" when Len is a multiple of the block width, and folds
// the REnd sentinel onto the position one step before bit 0.
func newReverseIterator[T Block](blocks []T, block, offset, bpb int) ReverseIterator[T] {
	if offset < 0 {
		block--
		offset = bpb - 1
	}
	return ReverseIterator[T]{blocks: blocks, block: block, offset: offset, bpb: bpb}
}

// Next moves the cursor one bit toward bit 0, crossing into the
// previous block when the in-block offset underflows.
func (it *ReverseIterator[T]) Next() {
	if it.offset == 0 {
		it.offset = it.bpb - 1
		it.block--
	} else {
		it.offset--
	}
}

// Prev moves the cursor one bit toward the last bit, the exact
// inverse of Next.
func (it *ReverseIterator[T]) Prev() {
	if it.offset+1 < it.bpb {
		it.offset++
	} else {
		it.offset = 0
		it.block++
	}
}

// Value reports whether the bit under the cursor is set. It must not
// be called on the REnd sentinel.
func (it *ReverseIterator[T]) Value() bool {
	return it.blocks[it.block]&(1<<(it.bpb-it.offset-1)) != 0
}

// Equal reports whether two cursors address the same position.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.block == other.block && it.offset == other.offset
}

// Begin returns a cursor at bit 0.
func (b *BitArray[T]) Begin() Iterator[T] {
	return Iterator[T]{blocks: b.blocks, bpb: b.bpb}
}

// End returns the one-past-the-last-bit sentinel. It lands mid-block
// when Len is not a multiple of the block width and is never
// dereferenced.
func (b *BitArray[T]) End() Iterator[T] {
	return Iterator[T]{blocks: b.blocks, block: b.bits / b.bpb, offset: b.bits % b.bpb, bpb: b.bpb}
}

// RBegin returns a reverse cursor at the last logical bit.
func (b *BitArray[T]) RBegin() ReverseIterator[T] {
	return newReverseIterator(b.blocks, b.bits/b.bpb, b.bits%b.bpb-1, b.bpb)
}

// REnd returns the one-before-the-first-bit sentinel, never
// dereferenced.
func (b *BitArray[T]) REnd() ReverseIterator[T] {
	return newReverseIterator(b.blocks, 0, -1, b.bpb)
}

// All returns an iterator over (index, bit) pairs in index order.
func (b *BitArray[T]) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		i := 0
		for it, end := b.Begin(), b.End(); !it.Equal(end); it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i++
		}
	}
}

// Reversed returns an iterator over (index, bit) pairs from the last
// bit down to bit 0.
func (b *BitArray[T]) Reversed() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		i := b.bits - 1
		for it, rend := b.RBegin(), b.REnd(); !it.Equal(rend); it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i--
		}
	}
}
