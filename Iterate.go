package pcoll


//============================================= Pcoll Iterate


// VectorIterator is a restartable forward traversal over a vector's elements in index order.
// It captures the handle, not a snapshot; handles are immutable so a fresh iterator over the
// same handle always yields the identical sequence.
type VectorIterator[T any] struct {
	// vec: the handle being traversed
	vec *Vector[T]
	// index: the next logical index to yield
	index int
	// leaf: the slot array of the leaf containing the current index, cached per 32 elements
	leaf []T
}

// Iterator
//	Creates a forward iterator over the vector's elements in index order.
func (vec *Vector[T]) Iterator() *VectorIterator[T] {
	return &VectorIterator[T]{ vec: vec }
}

// HasNext
//	Determines whether or not elements remain. The iterator consults the handle's length, never
//	the contents of leaf slots, so stale values beyond the last index are never yielded.
func (iter *VectorIterator[T]) HasNext() bool {
	return iter.index < iter.vec.length
}

// Next
//	Yields the element at the current index and advances.
//	The containing leaf is re-located once per NodeSize elements. Callers check HasNext first.
func (iter *VectorIterator[T]) Next() T {
	if iter.leaf == nil || iter.index & ChunkMask == 0 {
		iter.leaf = iter.vec.leafSlotsFor(iter.index)
	}

	value := iter.leaf[iter.index & ChunkMask]
	iter.index++

	return value
}

// ForEach
//	Invokes the given function once per element, in index order.
func (vec *Vector[T]) ForEach(fn func(value T)) {
	iter := vec.Iterator()
	for iter.HasNext() {
		fn(iter.Next())
	}
}

// ToSlice
//	Collects the vector's elements into a slice in index order.
func (vec *Vector[T]) ToSlice() []T {
	elems := make([]T, 0, vec.length)
	vec.ForEach(func(value T) {
		elems = append(elems, value)
	})

	return elems
}

// DictIterator is a restartable forward traversal over a dictionary's bindings.
// The walk is a pre-order descent over non-nil children, so the order is unspecified but stable
// for a given handle.
type DictIterator[K comparable, V any] struct {
	// stack: the frames of the in-progress pre-order walk, the top frame positioned at the
	// next binding to yield
	stack []dictIteratorFrame[K, V]
}

// dictIteratorFrame tracks the traversal position within a single node.
type dictIteratorFrame[K comparable, V any] struct {
	node dictNode[K, V]
	position int
}

// Iterator
//	Creates a forward iterator over the dictionary's bindings.
func (dict *Dict[K, V]) Iterator() *DictIterator[K, V] {
	iter := &DictIterator[K, V]{}
	if dict.root != nil {
		iter.stack = append(iter.stack, dictIteratorFrame[K, V]{ node: dict.root })
		iter.settle()
	}

	return iter
}

// HasNext
//	Determines whether or not bindings remain.
func (iter *DictIterator[K, V]) HasNext() bool {
	return len(iter.stack) > 0
}

// Next
//	Yields the next binding and advances the walk. Callers check HasNext first.
func (iter *DictIterator[K, V]) Next() (K, V) {
	var key K
	var value V

	top := &iter.stack[len(iter.stack) - 1]
	switch currNode := top.node.(type) {
		case *leafNode[K, V]:
			key, value = currNode.key, currNode.value
			iter.stack = iter.stack[:len(iter.stack) - 1]
		case *collisionNode[K, V]:
			key, value = currNode.keys[top.position], currNode.values[top.position]
			top.position++
	}

	iter.settle()
	return key, value
}

// settle
//	Advances the walk until the top frame sits on a binding or the stack is exhausted.
//	Bitmap indexed nodes descend through their compact child array in bit order, array nodes
//	through their slots in digit order skipping nil entries, and exhausted frames pop.
func (iter *DictIterator[K, V]) settle() {
	for len(iter.stack) > 0 {
		top := &iter.stack[len(iter.stack) - 1]

		switch currNode := top.node.(type) {
			case *leafNode[K, V]:
				return
			case *collisionNode[K, V]:
				if top.position < len(currNode.keys) { return }
				iter.stack = iter.stack[:len(iter.stack) - 1]
			case *bitmapNode[K, V]:
				if top.position < len(currNode.children) {
					child := currNode.children[top.position]
					top.position++
					iter.stack = append(iter.stack, dictIteratorFrame[K, V]{ node: child })
				} else { iter.stack = iter.stack[:len(iter.stack) - 1] }
			case *arrayNode[K, V]:
				for top.position < NodeSize && currNode.children[top.position] == nil { top.position++ }

				if top.position < NodeSize {
					child := currNode.children[top.position]
					top.position++
					iter.stack = append(iter.stack, dictIteratorFrame[K, V]{ node: child })
				} else { iter.stack = iter.stack[:len(iter.stack) - 1] }
		}
	}
}

// Keys
//	Collects the dictionary's keys into a slice in traversal order.
func (dict *Dict[K, V]) Keys() []K {
	keys := make([]K, 0, dict.size)
	dict.ForEach(func(key K, value V) {
		keys = append(keys, key)
	})

	return keys
}

// Values
//	Collects the dictionary's values into a slice in traversal order.
func (dict *Dict[K, V]) Values() []V {
	values := make([]V, 0, dict.size)
	dict.ForEach(func(key K, value V) {
		values = append(values, value)
	})

	return values
}

// Entries
//	Collects the dictionary's bindings into a slice of key-value pairs in traversal order.
func (dict *Dict[K, V]) Entries() []KeyValuePair[K, V] {
	entries := make([]KeyValuePair[K, V], 0, dict.size)
	dict.ForEach(func(key K, value V) {
		entries = append(entries, KeyValuePair[K, V]{ Key: key, Value: value })
	})

	return entries
}
