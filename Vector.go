package pcoll

import "github.com/sirgallo/utils"


//============================================= Pcoll Vector


// EmptyVector
//	Creates an empty Vector. By convention the empty vector has depth 1 with a single empty leaf.
func EmptyVector[T any]() *Vector[T] {
	return &Vector[T]{ length: 0, depth: 1, root: newVectorLeaf[T]() }
}

// VectorFrom
//	Creates a Vector containing the elements of a slice, in order, built by repeated append.
func VectorFrom[T any](elems []T) *Vector[T] {
	vec := EmptyVector[T]()
	for _, elem := range elems {
		vec = vec.Append(elem)
	}

	return vec
}

// Length
//	The total number of elements in the vector.
func (vec *Vector[T]) Length() int {
	return vec.length
}

// IsEmpty
//	Determines whether or not the vector holds any elements.
func (vec *Vector[T]) IsEmpty() bool {
	return vec.length == 0
}

// Get
//	Retrieves the element at a logical index by descending one trie level per digit of the index.
//	Fails with ErrIndexOutOfBounds when the index is negative or at or beyond the length.
func (vec *Vector[T]) Get(index int) (T, error) {
	if index < 0 || index >= vec.length { return utils.GetZero[T](), ErrIndexOutOfBounds }
	return vec.leafSlotsFor(index)[index & ChunkMask], nil
}

// First
//	Retrieves the element at index 0.
func (vec *Vector[T]) First() (T, error) {
	return vec.Get(0)
}

// Last
//	Retrieves the element at the highest populated index.
func (vec *Vector[T]) Last() (T, error) {
	return vec.Get(vec.length - 1)
}

// Update
//	Produces a new Vector identical to the receiver except that the given index holds the new value.
//	Every node on the path from the root to the containing leaf is copied and all sibling subtrees
//	are shared by reference. Fails with ErrIndexOutOfBounds when the index is outside [0, length).
func (vec *Vector[T]) Update(index int, value T) (*Vector[T], error) {
	if index < 0 || index >= vec.length { return nil, ErrIndexOutOfBounds }

	newRoot := putRecursive[T](vec.root, vec.rootShift(), index, value)
	return &Vector[T]{ length: vec.length, depth: vec.depth, root: newRoot }, nil
}

// Append
//	Produces a new Vector with the value placed at index length.
//	When the current root is fully saturated, the root is wrapped in a new branch whose slot 0 is
//	the old root and whose slot 1 is a freshly built spine down to the leaf holding the new value,
//	growing the depth by one. Otherwise the path along the digits of the new index is copied,
//	allocating fresh nodes where the spine does not exist yet.
func (vec *Vector[T]) Append(value T) *Vector[T] {
	switch {
		case vec.length == 1 << (ChunkSize * vec.depth):
			newRoot := newVectorBranch[T]()
			newRoot.children[0] = vec.root
			newRoot.children[1] = putRecursive[T](nil, vec.rootShift(), vec.length, value)

			return &Vector[T]{ length: vec.length + 1, depth: vec.depth + 1, root: newRoot }
		default:
			newRoot := putRecursive[T](vec.root, vec.rootShift(), vec.length, value)
			return &Vector[T]{ length: vec.length + 1, depth: vec.depth, root: newRoot }
	}
}

// RemoveLast
//	Produces a new Vector with the last element removed.
//	The containing leaf is path copied and the vacated slot is reset to the zero value so the
//	discarded element does not stay reachable through the new handle. When the shrunken vector
//	fits entirely under the root's first child, the root unwraps and the depth drops by one.
//	Fails with ErrEmptyVector on a vector of length 0.
func (vec *Vector[T]) RemoveLast() (*Vector[T], error) {
	switch {
		case vec.length == 0:
			return nil, ErrEmptyVector
		case vec.length == 1:
			return EmptyVector[T](), nil
	}

	newLength := vec.length - 1
	newRoot := putRecursive[T](vec.root, vec.rootShift(), newLength, utils.GetZero[T]())

	if vec.depth > 1 && newLength == 1 << (ChunkSize * (vec.depth - 1)) {
		return &Vector[T]{ length: newLength, depth: vec.depth - 1, root: newRoot.children[0] }, nil
	}

	return &Vector[T]{ length: newLength, depth: vec.depth, root: newRoot }, nil
}

// Concat
//	Produces a new Vector with the elements of the slice appended in order, equivalent to
//	repeated append.
func (vec *Vector[T]) Concat(elems []T) *Vector[T] {
	newVec := vec
	for _, elem := range elems {
		newVec = newVec.Append(elem)
	}

	return newVec
}

// Equal
//	Determines structural equality against another vector using the supplied element comparator.
//	Reference identity of handles remains the cheap fast path.
func (vec *Vector[T]) Equal(other *Vector[T], elemsEqual func(a, b T) bool) bool {
	if vec == other { return true }
	if other == nil || vec.length != other.length { return false }

	iter := vec.Iterator()
	otherIter := other.Iterator()

	for iter.HasNext() {
		if ! elemsEqual(iter.Next(), otherIter.Next()) { return false }
	}

	return true
}

// rootShift
//	The bit offset of the digit consumed at the root level.
func (vec *Vector[T]) rootShift() int {
	return (vec.depth - 1) * ChunkSize
}
