package pcoll

import "github.com/sirgallo/utils"


//============================================= Dict Operations


// assocRecursive
//	Attempts to traverse through the trie, locating the node at a given level to rebuild for the binding.
//	The digit in the hash for the current shift selects the slot, and every node on the path from the
//	root to the binding is replaced by a modified copy while all sibling subtrees are shared by reference.
//	On a leaf, an equal key replaces the value in place. A hash-distinct key pushes the existing leaf
//	down into a fresh bitmap indexed node at the current shift and the new binding is associated into it,
//	while a hash-identical key buckets both bindings in a collision node.
//	On a bitmap indexed node, a set bit recurses into the child at the popcount position. A clear bit
//	inserts a new leaf into the compact array, or, when the node is already at max population, promotes
//	the node to a dense array node before placing the new leaf at its digit slot.
//	On an array node, an empty slot takes a new leaf directly and an occupied slot recurses.
//	On a collision node, a hash match replaces or appends within the parallel lists; otherwise the bucket
//	is pushed down behind a fresh bitmap indexed node and the binding is associated into that.
//	The second return value reports whether a new binding was added rather than an existing one replaced.
func assocRecursive[K comparable, V any](node dictNode[K, V], shift int, hash uint32, key K, value V) (dictNode[K, V], bool) {
	switch currNode := node.(type) {
		case *leafNode[K, V]:
			switch {
				case currNode.key == key:
					return newLeafNode[K, V](hash, key, value), false
				case currNode.hash == hash || shift >= HashBits:
					return newCollisionNode[K, V](hash, currNode.key, currNode.value, key, value), true
				default:
					split := wrapInBitmapNode[K, V](currNode, currNode.hash, shift)
					return assocRecursive[K, V](split, shift, hash, key, value)
			}
		case *bitmapNode[K, V]:
			bit := getBitPosition(hash, shift)

			switch {
				case isBitSet(currNode.bitmap, bit):
					pos := getPosition(currNode.bitmap, bit)
					newChild, added := assocRecursive[K, V](currNode.children[pos], shift + ChunkSize, hash, key, value)

					nodeCopy := copyBitmapNode[K, V](currNode)
					nodeCopy.children[pos] = newChild

					return nodeCopy, added
				case len(currNode.children) >= BitmapCapacity:
					promoted := promoteToArrayNode[K, V](currNode)
					promoted.children[getIndexForLevel(hash, shift)] = newLeafNode[K, V](hash, key, value)
					promoted.size = promoted.size + 1

					return promoted, true
				default:
					pos := getPosition(currNode.bitmap, bit)

					nodeCopy := &bitmapNode[K, V]{ bitmap: setBit(currNode.bitmap, bit) }
					nodeCopy.children = extendTable[K, V](currNode.children, pos, newLeafNode[K, V](hash, key, value))

					return nodeCopy, true
			}
		case *arrayNode[K, V]:
			idx := getIndexForLevel(hash, shift)
			nodeCopy := copyArrayNode[K, V](currNode)

			if currNode.children[idx] == nil {
				nodeCopy.children[idx] = newLeafNode[K, V](hash, key, value)
				nodeCopy.size = currNode.size + 1

				return nodeCopy, true
			}

			newChild, added := assocRecursive[K, V](currNode.children[idx], shift + ChunkSize, hash, key, value)
			nodeCopy.children[idx] = newChild

			return nodeCopy, added
		case *collisionNode[K, V]:
			if hash == currNode.hash {
				idx := findCollisionIndex[K, V](currNode, key)
				nodeCopy := copyCollisionNode[K, V](currNode)

				if idx != -1 {
					nodeCopy.values[idx] = value
					return nodeCopy, false
				}

				nodeCopy.keys = append(nodeCopy.keys, key)
				nodeCopy.values = append(nodeCopy.values, value)

				return nodeCopy, true
			}

			wrapped := wrapInBitmapNode[K, V](currNode, currNode.hash, shift)
			return assocRecursive[K, V](wrapped, shift, hash, key, value)
		default:
			return newLeafNode[K, V](hash, key, value), true
	}
}

// findRecursive
//	Attempts to recursively retrieve the value for a key within the hash array mapped trie.
//	For each level traversed, the digit of the hash selects the slot to descend into.
//	On a bitmap indexed node, a clear bit means the key was never associated and the zero value is
//	returned. On an array node a nil slot means the same. On a leaf or collision node the stored keys
//	are compared against the queried key directly.
//	Since the trie path copies on write, a lookup always observes the state of its own handle.
func findRecursive[K comparable, V any](node dictNode[K, V], shift int, hash uint32, key K) (V, bool) {
	switch currNode := node.(type) {
		case *leafNode[K, V]:
			if currNode.key == key { return currNode.value, true }
			return utils.GetZero[V](), false
		case *bitmapNode[K, V]:
			bit := getBitPosition(hash, shift)
			if ! isBitSet(currNode.bitmap, bit) { return utils.GetZero[V](), false }

			pos := getPosition(currNode.bitmap, bit)
			return findRecursive[K, V](currNode.children[pos], shift + ChunkSize, hash, key)
		case *arrayNode[K, V]:
			idx := getIndexForLevel(hash, shift)
			if currNode.children[idx] == nil { return utils.GetZero[V](), false }

			return findRecursive[K, V](currNode.children[idx], shift + ChunkSize, hash, key)
		case *collisionNode[K, V]:
			if hash != currNode.hash { return utils.GetZero[V](), false }

			idx := findCollisionIndex[K, V](currNode, key)
			if idx == -1 { return utils.GetZero[V](), false }

			return currNode.values[idx], true
		default:
			return utils.GetZero[V](), false
	}
}

// removeRecursive
//	Attempts to recursively move down the path of the trie to the binding to be removed.
//	A nil result from a level means the entire subtree below it was deleted, so the parent omits the
//	child, clearing its bit or slot. A node left untouched is returned as is, which lets every level
//	above it, and ultimately the handle, preserve identity when the key was absent.
//	On a bitmap indexed node whose last child was deleted, nil propagates upward.
//	On an array node, deleting a child decrements the population and, at or below the demotion
//	threshold, packs the node back into a bitmap indexed node.
//	On a collision node the matching entry is dropped from the parallel lists; a bucket left with a
//	single entry demotes to a plain leaf.
//	The second return value reports whether a binding was actually removed.
func removeRecursive[K comparable, V any](node dictNode[K, V], shift int, hash uint32, key K, demoteAt int) (dictNode[K, V], bool) {
	switch currNode := node.(type) {
		case *leafNode[K, V]:
			if currNode.key == key { return nil, true }
			return currNode, false
		case *bitmapNode[K, V]:
			bit := getBitPosition(hash, shift)
			if ! isBitSet(currNode.bitmap, bit) { return currNode, false }

			pos := getPosition(currNode.bitmap, bit)
			newChild, removed := removeRecursive[K, V](currNode.children[pos], shift + ChunkSize, hash, key, demoteAt)
			if ! removed { return currNode, false }

			if newChild == nil {
				if currNode.bitmap == bit { return nil, true }

				nodeCopy := &bitmapNode[K, V]{ bitmap: setBit(currNode.bitmap, bit) }
				nodeCopy.children = shrinkTable[K, V](currNode.children, pos)

				return nodeCopy, true
			}

			nodeCopy := copyBitmapNode[K, V](currNode)
			nodeCopy.children[pos] = newChild

			return nodeCopy, true
		case *arrayNode[K, V]:
			idx := getIndexForLevel(hash, shift)
			if currNode.children[idx] == nil { return currNode, false }

			newChild, removed := removeRecursive[K, V](currNode.children[idx], shift + ChunkSize, hash, key, demoteAt)
			if ! removed { return currNode, false }

			if newChild == nil {
				newSize := currNode.size - 1

				switch {
					case newSize == 0:
						return nil, true
					case newSize <= demoteAt:
						return demoteToBitmapNode[K, V](currNode, idx), true
					default:
						nodeCopy := copyArrayNode[K, V](currNode)
						nodeCopy.children[idx] = nil
						nodeCopy.size = newSize

						return nodeCopy, true
				}
			}

			nodeCopy := copyArrayNode[K, V](currNode)
			nodeCopy.children[idx] = newChild

			return nodeCopy, true
		case *collisionNode[K, V]:
			if hash != currNode.hash { return currNode, false }

			idx := findCollisionIndex[K, V](currNode, key)
			if idx == -1 { return currNode, false }

			if len(currNode.keys) == 2 {
				remaining := 1 - idx
				return newLeafNode[K, V](currNode.hash, currNode.keys[remaining], currNode.values[remaining]), true
			}

			nodeCopy := &collisionNode[K, V]{ hash: currNode.hash }
			nodeCopy.keys = make([]K, 0, len(currNode.keys) - 1)
			nodeCopy.values = make([]V, 0, len(currNode.values) - 1)

			nodeCopy.keys = append(append(nodeCopy.keys, currNode.keys[:idx]...), currNode.keys[idx + 1:]...)
			nodeCopy.values = append(append(nodeCopy.values, currNode.values[:idx]...), currNode.values[idx + 1:]...)

			return nodeCopy, true
		default:
			return node, false
	}
}
