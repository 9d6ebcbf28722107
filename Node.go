package pcoll


//============================================= Dict Node Operations


// copyArrayNode
//	Creates a copy of an existing array node.
//	This is used for path copying, so operations that modify the trie modify a copy instead of
//	the node itself. Nodes reachable from a published handle are never written again.
func copyArrayNode[K comparable, V any](node *arrayNode[K, V]) *arrayNode[K, V] {
	nodeCopy := &arrayNode[K, V]{ size: node.size }
	nodeCopy.children = node.children

	return nodeCopy
}

// copyBitmapNode
//	Creates a copy of an existing bitmap indexed node, including its compact child array.
func copyBitmapNode[K comparable, V any](node *bitmapNode[K, V]) *bitmapNode[K, V] {
	nodeCopy := &bitmapNode[K, V]{ bitmap: node.bitmap }
	nodeCopy.children = make([]dictNode[K, V], len(node.children))
	copy(nodeCopy.children, node.children)

	return nodeCopy
}

// copyCollisionNode
//	Creates a copy of an existing collision node, including both parallel entry lists.
func copyCollisionNode[K comparable, V any](node *collisionNode[K, V]) *collisionNode[K, V] {
	nodeCopy := &collisionNode[K, V]{ hash: node.hash }
	nodeCopy.keys = make([]K, len(node.keys))
	nodeCopy.values = make([]V, len(node.values))

	copy(nodeCopy.keys, node.keys)
	copy(nodeCopy.values, node.values)

	return nodeCopy
}

// demoteToBitmapNode
//	Packs the remaining children of an array node back into a bitmap indexed node, omitting the
//	child at the skipped digit. Children are appended in ascending digit order so the compact
//	array matches the bitmap.
func demoteToBitmapNode[K comparable, V any](node *arrayNode[K, V], skipIdx int) *bitmapNode[K, V] {
	demoted := &bitmapNode[K, V]{}
	demoted.children = make([]dictNode[K, V], 0, node.size - 1)

	for idx := 0; idx < NodeSize; idx++ {
		if idx == skipIdx || node.children[idx] == nil { continue }

		demoted.bitmap = setBit(demoted.bitmap, 1 << idx)
		demoted.children = append(demoted.children, node.children[idx])
	}

	return demoted
}

// findCollisionIndex
//	Linear scan of a collision node's key list for a key. Returns -1 when the key is absent.
func findCollisionIndex[K comparable, V any](node *collisionNode[K, V], key K) int {
	for idx := range node.keys {
		if node.keys[idx] == key { return idx }
	}

	return -1
}

// newCollisionNode
//	Creates a new collision node bucketing an existing binding with an incoming one whose key
//	shares the same full hash.
func newCollisionNode[K comparable, V any](hash uint32, existingKey K, existingValue V, key K, value V) *collisionNode[K, V] {
	return &collisionNode[K, V]{
		hash: hash,
		keys: []K{ existingKey, key },
		values: []V{ existingValue, value },
	}
}

// newLeafNode
//	Creates a new leaf node holding a single binding along with the cached hash of its key.
func newLeafNode[K comparable, V any](hash uint32, key K, value V) *leafNode[K, V] {
	return &leafNode[K, V]{ hash: hash, key: key, value: value }
}

// newRootNode
//	Creates the initial root produced by the first associate on an empty dictionary, a bitmap
//	indexed node at shift 0 holding a single leaf.
func newRootNode[K comparable, V any](hash uint32, key K, value V) *bitmapNode[K, V] {
	return &bitmapNode[K, V]{
		bitmap: getBitPosition(hash, 0),
		children: []dictNode[K, V]{ newLeafNode[K, V](hash, key, value) },
	}
}

// promoteToArrayNode
//	Promotes a bitmap indexed node at max population to a dense array node.
//	Each populated child moves from its compact position to the slot matching its digit, so the
//	level's routing switches from popcount addressing to direct indexing.
func promoteToArrayNode[K comparable, V any](node *bitmapNode[K, V]) *arrayNode[K, V] {
	promoted := &arrayNode[K, V]{ size: len(node.children) }

	pos := 0
	for idx := 0; idx < NodeSize; idx++ {
		if ! isBitSet(node.bitmap, 1 << idx) { continue }

		promoted.children[idx] = node.children[pos]
		pos++
	}

	return promoted
}

// wrapInBitmapNode
//	Wraps a node in a new bitmap indexed node at the current shift, placing it at the digit slot
//	for its hash. Used when a leaf or collision node needs a deeper level to distinguish an
//	incoming hash-distinct key.
func wrapInBitmapNode[K comparable, V any](node dictNode[K, V], nodeHash uint32, shift int) *bitmapNode[K, V] {
	return &bitmapNode[K, V]{
		bitmap: getBitPosition(nodeHash, shift),
		children: []dictNode[K, V]{ node },
	}
}
