package pcoll

import "math/bits"

import "jsouthworth.net/go/hash"


//============================================= Pcoll Utilities


// defaultHashSeed seeds the default hasher. Fixed so independently built dictionaries hash alike.
const defaultHashSeed = uintptr(0x9e3779b9)

// calculateHammingWeight
//	Determines the total number of 1s in the binary representation of a number. 0s are ignored.
func calculateHammingWeight(bitmap uint32) int {
	return bits.OnesCount32(bitmap)
}

// defaultHashFn
//	Builds the default hash function for a key type, a seeded hash over the key truncated to the
//	HashBits width the trie routes on.
func defaultHashFn[K comparable]() DictHashFn[K] {
	return func(key K) uint32 {
		return uint32(hash.Any(key, defaultHashSeed))
	}
}

// extendTable
//	Utility function for expanding the compact child array of a bitmap indexed node when a new bit
//	is set and a child needs to be inserted at its position.
func extendTable[K comparable, V any](orig []dictNode[K, V], pos int, newNode dictNode[K, V]) []dictNode[K, V] {
	newTable := make([]dictNode[K, V], len(orig) + 1)

	copy(newTable[:pos], orig[:pos])
	newTable[pos] = newNode
	copy(newTable[pos + 1:], orig[pos:])

	return newTable
}

// getBitPosition
//	Calculates the single bit marking the digit slot for a hash at the given trie level.
func getBitPosition(hash uint32, shift int) uint32 {
	return 1 << getIndexForLevel(hash, shift)
}

// getIndexForLevel
//	Determines the digit for a hash at the given trie level.
func getIndexForLevel(hash uint32, shift int) int {
	return int((hash >> shift) & ChunkMask)
}

// getPosition
//	Calculates the position in the compact child array for a sparse digit slot.
//	A mask with all 1s right of the slot's bit is applied to the bitmap and the hamming weight of
//	the isolated bits is the number of populated children preceding the slot.
func getPosition(bitmap uint32, bit uint32) int {
	mask := bit - 1
	isolatedBits := bitmap & mask

	return calculateHammingWeight(isolatedBits)
}

// isBitSet
//	Determines whether or not a bit is set in a bitmap by applying a mask with a 1 at the position to check.
func isBitSet(bitmap uint32, bit uint32) bool {
	return (bitmap & bit) != 0
}

// setBit
//	Performs a logical xor operation on the bitmap and a mask with a single 1 at the incoming bit.
//	Flips the bit on when associating a new child and off when a child is removed.
func setBit(bitmap uint32, bit uint32) uint32 {
	return bitmap ^ bit
}

// shrinkTable
//	Inverse of the extendTable utility function.
//	It shrinks the compact child array by removing the child at a given position.
func shrinkTable[K comparable, V any](orig []dictNode[K, V], pos int) []dictNode[K, V] {
	newTable := make([]dictNode[K, V], len(orig) - 1)

	copy(newTable[:pos], orig[:pos])
	copy(newTable[pos:], orig[pos + 1:])

	return newTable
}
