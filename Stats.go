package pcoll

import "os"

import "github.com/rs/zerolog"


//============================================= Pcoll Stats


// VectorStats describes the shape of a vector trie.
type VectorStats struct {
	// Length: the element count of the handle
	Length int
	// Depth: the number of trie levels
	Depth int
	// Branches: the total number of branch nodes
	Branches int
	// Leaves: the total number of leaf nodes
	Leaves int
}

// DictStats describes the shape of a dictionary trie.
type DictStats struct {
	// Size: the binding count of the handle
	Size int
	// BitmapNodes: the total number of bitmap indexed nodes
	BitmapNodes int
	// ArrayNodes: the total number of dense array nodes
	ArrayNodes int
	// CollisionNodes: the total number of collision buckets
	CollisionNodes int
	// Leaves: the total number of leaf nodes
	Leaves int
	// MaxDepth: the deepest level holding a node, with the root at level 1
	MaxDepth int
}

// pcollLogger is the scoped logger for structure dumps.
var pcollLogger = zerolog.New(os.Stderr).With().Timestamp().Str("module", "pcoll").Logger()

// Stats
//	Walks the vector trie and counts its nodes per variant.
func (vec *Vector[T]) Stats() VectorStats {
	stats := VectorStats{ Length: vec.length, Depth: vec.depth }
	countVectorNodes[T](vec.root, &stats)

	return stats
}

// LogStructure
//	Emits the vector's structure counters through the package logger.
//	Diagnostics only, the data structure operations themselves never log.
func (vec *Vector[T]) LogStructure() {
	stats := vec.Stats()

	pcollLogger.Info().
		Int("length", stats.Length).
		Int("depth", stats.Depth).
		Int("branches", stats.Branches).
		Int("leaves", stats.Leaves).
		Msg("vector structure")
}

// Stats
//	Walks the dictionary trie and counts its nodes per variant along with the deepest level.
func (dict *Dict[K, V]) Stats() DictStats {
	stats := DictStats{ Size: dict.size }
	if dict.root != nil { countDictNodes[K, V](dict.root, 1, &stats) }

	return stats
}

// LogStructure
//	Emits the dictionary's structure counters through the package logger.
func (dict *Dict[K, V]) LogStructure() {
	stats := dict.Stats()

	pcollLogger.Info().
		Int("size", stats.Size).
		Int("bitmapNodes", stats.BitmapNodes).
		Int("arrayNodes", stats.ArrayNodes).
		Int("collisionNodes", stats.CollisionNodes).
		Int("leaves", stats.Leaves).
		Int("maxDepth", stats.MaxDepth).
		Msg("dict structure")
}

// countVectorNodes
//	Recursively tallies branch and leaf nodes under a vector node.
func countVectorNodes[T any](node *vectorNode[T], stats *VectorStats) {
	if node == nil { return }

	if node.slots != nil {
		stats.Leaves++
		return
	}

	stats.Branches++
	for idx := range node.children {
		countVectorNodes[T](node.children[idx], stats)
	}
}

// countDictNodes
//	Recursively tallies dictionary nodes per variant as the walk descends levels.
func countDictNodes[K comparable, V any](node dictNode[K, V], level int, stats *DictStats) {
	if level > stats.MaxDepth { stats.MaxDepth = level }

	switch currNode := node.(type) {
		case *leafNode[K, V]:
			stats.Leaves++
		case *collisionNode[K, V]:
			stats.CollisionNodes++
		case *bitmapNode[K, V]:
			stats.BitmapNodes++
			for idx := range currNode.children {
				countDictNodes[K, V](currNode.children[idx], level + 1, stats)
			}
		case *arrayNode[K, V]:
			stats.ArrayNodes++
			for idx := range currNode.children {
				if currNode.children[idx] != nil { countDictNodes[K, V](currNode.children[idx], level + 1, stats) }
			}
	}
}
