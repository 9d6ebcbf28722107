package pcoll

import "fmt"
import "strings"


//============================================= Pcoll Serialize


// String
//	Renders the vector as [e0, e1, ...] in index order. The empty vector renders as [].
func (vec *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")

	iter := vec.Iterator()
	for iter.HasNext() {
		if iter.index > 0 { sb.WriteString(", ") }
		fmt.Fprintf(&sb, "%v", iter.Next())
	}

	sb.WriteString("]")
	return sb.String()
}

// String
//	Renders the dictionary as {k0: v0, k1: v1, ...} following the handle's traversal order.
//	The empty dictionary renders as ().
func (dict *Dict[K, V]) String() string {
	if dict.size == 0 { return "()" }

	var sb strings.Builder
	sb.WriteString("{")

	first := true
	dict.ForEach(func(key K, value V) {
		if ! first { sb.WriteString(", ") }
		first = false

		fmt.Fprintf(&sb, "%v: %v", key, value)
	})

	sb.WriteString("}")
	return sb.String()
}
