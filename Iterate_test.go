package pcoll_test

import "fmt"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/sirgallo/pcoll"


func TestVectorIteration(t *testing.T) {
	t.Run("Test Yields In Index Order", func(t *testing.T) {
		vec := pcoll.VectorFrom[int](seqInts(1031))

		iter := vec.Iterator()
		for expected := 0; expected < 1031; expected++ {
			require.True(t, iter.HasNext())
			require.Equal(t, expected, iter.Next())
		}

		assert.False(t, iter.HasNext())
	})

	t.Run("Test Restart Yields Identical Sequence", func(t *testing.T) {
		vec := pcoll.VectorFrom[int](seqInts(100))

		first := make([]int, 0, 100)
		vec.ForEach(func(value int) { first = append(first, value) })

		second := make([]int, 0, 100)
		vec.ForEach(func(value int) { second = append(second, value) })

		assert.Equal(t, first, second)
	})

	t.Run("Test Empty Iterator", func(t *testing.T) {
		assert.False(t, pcoll.EmptyVector[int]().Iterator().HasNext())
	})

	t.Run("Test Stale Slots Not Yielded", func(t *testing.T) {
		vec := pcoll.VectorFrom[int](seqInts(40))

		shrunk, removeErr := vec.RemoveLast()
		require.NoError(t, removeErr)

		assert.Equal(t, 39, len(shrunk.ToSlice()))
		assert.Equal(t, seqInts(39), shrunk.ToSlice())
	})
}

func TestDictIteration(t *testing.T) {
	dict := pcoll.EmptyDict[string, int]()
	for idx := 0; idx < 1000; idx++ {
		dict = dict.Assoc(fmt.Sprintf("key-%d", idx), idx)
	}

	t.Run("Test Visits Every Binding Once", func(t *testing.T) {
		visited := make(map[string]int)

		iter := dict.Iterator()
		for iter.HasNext() {
			key, value := iter.Next()

			_, seen := visited[key]
			require.False(t, seen)
			visited[key] = value
		}

		require.Equal(t, 1000, len(visited))
		for idx := 0; idx < 1000; idx++ {
			require.Equal(t, idx, visited[fmt.Sprintf("key-%d", idx)])
		}
	})

	t.Run("Test Stable Order For A Handle", func(t *testing.T) {
		first := dict.Keys()
		second := dict.Keys()

		assert.Equal(t, first, second)
	})

	t.Run("Test Collectors Agree", func(t *testing.T) {
		keys := dict.Keys()
		values := dict.Values()
		entries := dict.Entries()

		require.Equal(t, dict.Size(), len(keys))
		require.Equal(t, dict.Size(), len(values))
		require.Equal(t, dict.Size(), len(entries))

		for idx, entry := range entries {
			require.Equal(t, keys[idx], entry.Key)
			require.Equal(t, values[idx], entry.Value)
		}
	})

	t.Run("Test Empty Iterator", func(t *testing.T) {
		assert.False(t, pcoll.EmptyDict[string, int]().Iterator().HasNext())
	})

	t.Run("Test Traverses Buckets And Array Nodes", func(t *testing.T) {
		lowDigitHash := func(key int) uint32 { return uint32(key % 20) }

		collider := pcoll.NewDict[int, int](pcoll.DictOpts[int]{ HashFn: lowDigitHash })
		for key := 0; key < 60; key++ {
			collider = collider.Assoc(key, key)
		}

		visited := make(map[int]int)
		collider.ForEach(func(key int, value int) {
			visited[key] = value
		})

		require.Equal(t, 60, len(visited))
		for key := 0; key < 60; key++ {
			require.Equal(t, key, visited[key])
		}
	})
}
