package pcoll


//============================================= Pcoll Dict


// NewDict initializes a Dict.
//	The options may carry a custom hash function, which must be consistent with == on the key type,
//	and a custom array node demotion threshold. Omitted options fall back to the seeded default
//	hasher and DefaultDemoteThreshold.
func NewDict[K comparable, V any](opts DictOpts[K]) *Dict[K, V] {
	hashFn := opts.HashFn
	if hashFn == nil { hashFn = defaultHashFn[K]() }

	demoteAt := DefaultDemoteThreshold
	if opts.DemoteThreshold != nil {
		demoteAt = *opts.DemoteThreshold

		if demoteAt > MaxDemoteThreshold { demoteAt = MaxDemoteThreshold }
		if demoteAt < 0 { demoteAt = 0 }
	}

	return &Dict[K, V]{ size: 0, root: nil, hashFn: hashFn, demoteAt: demoteAt }
}

// EmptyDict
//	Creates an empty Dict with default options.
func EmptyDict[K comparable, V any]() *Dict[K, V] {
	return NewDict[K, V](DictOpts[K]{})
}

// DictFromMap
//	Creates a Dict containing the bindings of a built-in map, built by repeated associate.
func DictFromMap[K comparable, V any](m map[K]V) *Dict[K, V] {
	dict := EmptyDict[K, V]()
	for key, value := range m {
		dict = dict.Assoc(key, value)
	}

	return dict
}

// DictFromPairs
//	Creates a Dict from parallel key and value lists, built by repeated associate.
//	Construction stops when either input is exhausted.
func DictFromPairs[K comparable, V any](keys []K, values []V) *Dict[K, V] {
	total := len(keys)
	if len(values) < total { total = len(values) }

	dict := EmptyDict[K, V]()
	for idx := 0; idx < total; idx++ {
		dict = dict.Assoc(keys[idx], values[idx])
	}

	return dict
}

// Size
//	The total number of bindings in the dictionary.
func (dict *Dict[K, V]) Size() int {
	return dict.size
}

// Get
//	Attempts to retrieve the value for a key.
//	Returns the zero value and false when the key is absent. Lookups never fail.
func (dict *Dict[K, V]) Get(key K) (V, bool) {
	return findRecursive[K, V](dict.root, 0, dict.hashFn(key), key)
}

// ContainsKey
//	Determines whether or not a key has a binding in the dictionary.
func (dict *Dict[K, V]) ContainsKey(key K) bool {
	_, found := dict.Get(key)
	return found
}

// Assoc
//	Produces a new Dict containing the binding of key to value.
//	An existing equal key has its value replaced and the size is unchanged, otherwise the size
//	grows by one. All subtrees off the rebuilt path are shared with the receiver.
func (dict *Dict[K, V]) Assoc(key K, value V) *Dict[K, V] {
	hash := dict.hashFn(key)

	if dict.root == nil {
		return dict.withRoot(newRootNode[K, V](hash, key, value), 1)
	}

	newRoot, added := assocRecursive[K, V](dict.root, 0, hash, key, value)

	newSize := dict.size
	if added { newSize++ }

	return dict.withRoot(newRoot, newSize)
}

// Remove
//	Produces a new Dict without the binding for a key.
//	If the key is absent the receiver itself is returned, so callers can detect no-ops by
//	reference comparison.
func (dict *Dict[K, V]) Remove(key K) *Dict[K, V] {
	if dict.root == nil { return dict }

	newRoot, removed := removeRecursive[K, V](dict.root, 0, dict.hashFn(key), key, dict.demoteAt)
	if ! removed { return dict }

	return dict.withRoot(newRoot, dict.size - 1)
}

// Merge
//	Produces a new Dict holding the bindings of both dictionaries.
//	The other dictionary's bindings are folded in through associate, so its values win for keys
//	present in both. Merging an empty dictionary returns the receiver unchanged.
func (dict *Dict[K, V]) Merge(other *Dict[K, V]) *Dict[K, V] {
	if other == nil || other.size == 0 { return dict }

	merged := dict
	other.ForEach(func(key K, value V) {
		merged = merged.Assoc(key, value)
	})

	return merged
}

// ForEach
//	Invokes the given function once per binding, in the traversal order of the handle.
func (dict *Dict[K, V]) ForEach(fn func(key K, value V)) {
	iter := dict.Iterator()
	for iter.HasNext() {
		key, value := iter.Next()
		fn(key, value)
	}
}

// Equal
//	Determines structural equality against another dictionary using the supplied value comparator.
//	Two dictionaries are equal when they have the same size and every binding in one retrieves an
//	equal value from the other. Reference identity of handles remains the cheap fast path.
func (dict *Dict[K, V]) Equal(other *Dict[K, V], valuesEqual func(a, b V) bool) bool {
	if dict == other { return true }
	if other == nil || dict.size != other.size { return false }

	equal := true
	dict.ForEach(func(key K, value V) {
		otherValue, found := other.Get(key)
		if ! found || ! valuesEqual(value, otherValue) { equal = false }
	})

	return equal
}

// withRoot
//	Builds the successor handle for a new root, carrying over the hash function and demotion
//	threshold so derived dictionaries stay compatible with their ancestors.
func (dict *Dict[K, V]) withRoot(root dictNode[K, V], size int) *Dict[K, V] {
	return &Dict[K, V]{ size: size, root: root, hashFn: dict.hashFn, demoteAt: dict.demoteAt }
}
