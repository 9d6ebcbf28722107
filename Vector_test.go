package pcoll_test

import "fmt"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/sirgallo/pcoll"


// seqInts builds the slice 0..total-1 used as a readable element corpus.
func seqInts(total int) []int {
	elems := make([]int, total)
	for idx := range elems { elems[idx] = idx }

	return elems
}


func TestVectorAppendGrowth(t *testing.T) {
	boundaries := []int{ 0, 31, 1023, 32767 }

	for _, boundary := range boundaries {
		t.Run(fmt.Sprintf("Test Append At %d", boundary), func(t *testing.T) {
			orig := pcoll.VectorFrom[int](seqInts(boundary))
			appended := orig.Append(-1)

			require.Equal(t, boundary + 1, appended.Length())

			val, getErr := appended.Get(boundary)
			require.NoError(t, getErr)
			assert.Equal(t, -1, val)

			require.Equal(t, boundary, orig.Length())
			for idx := 0; idx < boundary; idx++ {
				origVal, origGetErr := orig.Get(idx)
				require.NoError(t, origGetErr)
				require.Equal(t, idx, origVal)

				keptVal, keptGetErr := appended.Get(idx)
				require.NoError(t, keptGetErr)
				require.Equal(t, idx, keptVal)
			}
		})
	}
}

func TestVectorRoundtrip(t *testing.T) {
	sizes := []int{ 31, 1031, 32767 }

	for _, size := range sizes {
		t.Run(fmt.Sprintf("Test Roundtrip At %d", size), func(t *testing.T) {
			elems := seqInts(size)
			vec := pcoll.VectorFrom[int](elems)

			require.Equal(t, size, vec.Length())

			for idx := 0; idx < size; idx++ {
				val, getErr := vec.Get(idx)
				require.NoError(t, getErr)
				require.Equal(t, elems[idx], val)
			}

			assert.Equal(t, elems, vec.ToSlice())
		})
	}
}

func TestVectorUpdate(t *testing.T) {
	t.Run("Test Update At Depth", func(t *testing.T) {
		orig := pcoll.VectorFrom[int](seqInts(1031))

		updated, updateErr := orig.Update(899, -1)
		require.NoError(t, updateErr)

		updatedVal, _ := updated.Get(899)
		assert.Equal(t, -1, updatedVal)

		origVal, _ := orig.Get(899)
		assert.Equal(t, 899, origVal)

		for idx := 0; idx < 1031; idx++ {
			if idx == 899 { continue }

			val, getErr := updated.Get(idx)
			require.NoError(t, getErr)
			require.Equal(t, idx, val)
		}
	})

	t.Run("Test Update First And Last", func(t *testing.T) {
		vec := pcoll.VectorFrom[int](seqInts(64))

		updated, updateErr := vec.Update(0, -1)
		require.NoError(t, updateErr)

		updated, updateErr = updated.Update(63, -2)
		require.NoError(t, updateErr)

		first, _ := updated.First()
		last, _ := updated.Last()
		assert.Equal(t, -1, first)
		assert.Equal(t, -2, last)
	})
}

func TestVectorOutOfBounds(t *testing.T) {
	vec := pcoll.VectorFrom[int](seqInts(10))

	t.Run("Test Get Out Of Bounds", func(t *testing.T) {
		_, negErr := vec.Get(-1)
		require.ErrorIs(t, negErr, pcoll.ErrIndexOutOfBounds)

		_, beyondErr := vec.Get(10)
		require.ErrorIs(t, beyondErr, pcoll.ErrIndexOutOfBounds)
	})

	t.Run("Test Update Out Of Bounds", func(t *testing.T) {
		_, negErr := vec.Update(-1, 0)
		require.ErrorIs(t, negErr, pcoll.ErrIndexOutOfBounds)

		_, beyondErr := vec.Update(10, 0)
		require.ErrorIs(t, beyondErr, pcoll.ErrIndexOutOfBounds)
	})

	t.Run("Test First And Last On Empty", func(t *testing.T) {
		empty := pcoll.EmptyVector[int]()

		_, firstErr := empty.First()
		require.ErrorIs(t, firstErr, pcoll.ErrIndexOutOfBounds)

		_, lastErr := empty.Last()
		require.ErrorIs(t, lastErr, pcoll.ErrIndexOutOfBounds)
	})

	t.Run("Test RemoveLast On Empty", func(t *testing.T) {
		_, removeErr := pcoll.EmptyVector[int]().RemoveLast()
		require.ErrorIs(t, removeErr, pcoll.ErrEmptyVector)
	})
}

func TestVectorAppendRemoveLastInverse(t *testing.T) {
	sizes := []int{ 0, 1, 31, 32, 1023, 1024 }

	for _, size := range sizes {
		t.Run(fmt.Sprintf("Test Inverse At %d", size), func(t *testing.T) {
			orig := pcoll.VectorFrom[int](seqInts(size))

			restored, removeErr := orig.Append(-1).RemoveLast()
			require.NoError(t, removeErr)

			require.Equal(t, size, restored.Length())
			for idx := 0; idx < size; idx++ {
				val, getErr := restored.Get(idx)
				require.NoError(t, getErr)
				require.Equal(t, idx, val)
			}
		})
	}
}

func TestVectorRemoveLast(t *testing.T) {
	t.Run("Test Depth Compaction", func(t *testing.T) {
		vec := pcoll.VectorFrom[int](seqInts(33))
		require.Equal(t, 2, vec.Stats().Depth)

		shrunk, removeErr := vec.RemoveLast()
		require.NoError(t, removeErr)

		require.Equal(t, 32, shrunk.Length())
		assert.Equal(t, 1, shrunk.Stats().Depth)

		for idx := 0; idx < 32; idx++ {
			val, getErr := shrunk.Get(idx)
			require.NoError(t, getErr)
			require.Equal(t, idx, val)
		}
	})

	t.Run("Test Remove Down To Empty", func(t *testing.T) {
		vec := pcoll.VectorFrom[int](seqInts(3))

		for expected := 2; expected >= 0; expected-- {
			var removeErr error
			vec, removeErr = vec.RemoveLast()
			require.NoError(t, removeErr)
			require.Equal(t, expected, vec.Length())
		}

		assert.True(t, vec.IsEmpty())

		reused := vec.Append(7)
		val, _ := reused.Get(0)
		assert.Equal(t, 7, val)
	})
}

func TestVectorConcat(t *testing.T) {
	t.Run("Test Concat Appends In Order", func(t *testing.T) {
		head := pcoll.VectorFrom[int](seqInts(10))
		combined := head.Concat([]int{ 10, 11, 12 })

		require.Equal(t, 13, combined.Length())
		assert.Equal(t, seqInts(13), combined.ToSlice())

		require.Equal(t, 10, head.Length())
	})

	t.Run("Test Concat Empty", func(t *testing.T) {
		head := pcoll.VectorFrom[int](seqInts(4))
		combined := head.Concat(nil)

		assert.Equal(t, head.ToSlice(), combined.ToSlice())
	})
}

func TestVectorPersistence(t *testing.T) {
	handles := make([]*pcoll.Vector[int], 0, 101)

	vec := pcoll.EmptyVector[int]()
	handles = append(handles, vec)

	for idx := 0; idx < 100; idx++ {
		vec = vec.Append(idx)
		handles = append(handles, vec)
	}

	for length, handle := range handles {
		require.Equal(t, length, handle.Length())

		for idx := 0; idx < length; idx++ {
			val, getErr := handle.Get(idx)
			require.NoError(t, getErr)
			require.Equal(t, idx, val)
		}
	}
}

func TestVectorEqual(t *testing.T) {
	intsEqual := func(a, b int) bool { return a == b }

	vec := pcoll.VectorFrom[int](seqInts(50))
	same := pcoll.VectorFrom[int](seqInts(50))
	shorter := pcoll.VectorFrom[int](seqInts(49))

	assert.True(t, vec.Equal(vec, intsEqual))
	assert.True(t, vec.Equal(same, intsEqual))
	assert.False(t, vec.Equal(shorter, intsEqual))

	updated, _ := same.Update(25, -1)
	assert.False(t, vec.Equal(updated, intsEqual))
}

func TestVectorStats(t *testing.T) {
	vec := pcoll.VectorFrom[int](seqInts(1031))
	stats := vec.Stats()

	require.Equal(t, 1031, stats.Length)
	require.Equal(t, 3, stats.Depth)
	assert.Greater(t, stats.Branches, 0)
	assert.Greater(t, stats.Leaves, 0)

	vec.LogStructure()
}
