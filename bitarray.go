package bitarray

import (
	"math/bits"
	"strings"
)

// Block constrains the backing storage unit of a BitArray.
//
// The type set admits only unsigned integers whose bit width is a
// power of two; instantiating BitArray with any other type does not
// compile.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DefaultSize is the number of bits a BitArray holds when constructed
// with NewDefault.
const DefaultSize = 16

// blockBits returns the bit width of T.
func blockBits[T Block]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// BitArray is a fixed-capacity array of boolean values packed into
// blocks of type T. Bit offset 0 within a block is the block's most
// significant bit.
//
// All operations are O(1) except SetAll, ClearAll and full traversal,
// which are O(Len). A BitArray must not be mutated concurrently.
type BitArray[T Block] struct {
	blocks []T
	bits   int
	bpb    int
}

// New creates a BitArray holding numBits bits, all cleared. The
// backing allocation is rounded up to a whole number of blocks.
// numBits must be non-negative.
func New[T Block](numBits int) *BitArray[T] {
	bpb := blockBits[T]()
	return &BitArray[T]{
		// make zeroes the blocks, which is the all-cleared state.
		blocks: make([]T, (numBits+bpb-1)/bpb),
		bits:   numBits,
		bpb:    bpb,
	}
}

// NewDefault creates a BitArray of DefaultSize bits.
func NewDefault[T Block]() *BitArray[T] {
	return New[T](DefaultSize)
}

// mask returns a single-bit mask selecting index within its block,
// numbering bits most-significant-first.
func (b *BitArray[T]) mask(index int) T {
	return 1 << (b.bpb - (index & (b.bpb - 1)) - 1)
}

// Set sets the bit at index.
//
// Set performs no bounds check against Len; the caller must pass an
// index within the allocated blocks. Indices in [Len, block capacity)
// address the unaddressed tail of the final block.
func (b *BitArray[T]) Set(index int) {
	b.blocks[index/b.bpb] |= b.mask(index)
}

// Clear clears the bit at index. Same unchecked contract as Set.
func (b *BitArray[T]) Clear(index int) {
	b.blocks[index/b.bpb] &^= b.mask(index)
}

// Test reports whether the bit at index is set. Same unchecked
// contract as Set.
func (b *BitArray[T]) Test(index int) bool {
	return b.blocks[index/b.bpb]&b.mask(index) != 0
}

// At reports whether the bit at index is set, validating the index
// first. It is the container's only checked accessor. The returned
// error matches ErrOutOfRange via errors.Is.
func (b *BitArray[T]) At(index int) (bool, error) {
	if !b.Accessible(index) {
		return false, &ErrIndexOutOfRange{Index: index, Size: b.bits}
	}
	return b.Test(index), nil
}

// Accessible reports whether index addresses a logical bit, i.e. is
// in [0, Len).
func (b *BitArray[T]) Accessible(index int) bool {
	return index >= 0 && index < b.bits
}

// Len returns the logical number of bits.
func (b *BitArray[T]) Len() int {
	return b.bits
}

// BitsPerBlock returns the bit width of the block type T.
func (b *BitArray[T]) BitsPerBlock() int {
	return b.bpb
}

// SetAll sets every addressable bit. Blocks are filled whole; the
// unaddressed tail of a partial final block keeps its state, the same
// result a bit-by-bit sweep over [0, Len) would produce.
func (b *BitArray[T]) SetAll() {
	if b.bits == 0 {
		return
	}
	full := b.bits / b.bpb
	for i := 0; i < full; i++ {
		b.blocks[i] = ^T(0)
	}
	if rem := b.bits & (b.bpb - 1); rem != 0 {
		b.blocks[full] |= ^T(0) << (b.bpb - rem)
	}
}

// ClearAll clears every addressable bit, keeping the state of the
// unaddressed tail of a partial final block.
func (b *BitArray[T]) ClearAll() {
	if b.bits == 0 {
		return
	}
	full := b.bits / b.bpb
	for i := 0; i < full; i++ {
		b.blocks[i] = 0
	}
	if rem := b.bits & (b.bpb - 1); rem != 0 {
		b.blocks[full] &^= ^T(0) << (b.bpb - rem)
	}
}

// String renders the bits in index order, '1' for set and '0' for
// cleared.
func (b *BitArray[T]) String() string {
	var sb strings.Builder
	sb.Grow(b.bits)
	for i := 0; i < b.bits; i++ {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
