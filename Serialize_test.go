package pcoll_test

import "testing"

import "github.com/stretchr/testify/assert"

import "github.com/sirgallo/pcoll"


func TestVectorString(t *testing.T) {
	assert.Equal(t, "[]", pcoll.EmptyVector[int]().String())
	assert.Equal(t, "[7]", pcoll.VectorFrom[int]([]int{ 7 }).String())
	assert.Equal(t, "[1, 2, 3]", pcoll.VectorFrom[int]([]int{ 1, 2, 3 }).String())
	assert.Equal(t, "[a, b, c]", pcoll.VectorFrom[string]([]string{ "a", "b", "c" }).String())
}

func TestDictString(t *testing.T) {
	assert.Equal(t, "()", pcoll.EmptyDict[int, int]().String())

	// an identity hasher makes traversal order follow ascending key digits, here also the insertion order
	dict := pcoll.NewDict[int, int](pcoll.DictOpts[int]{ HashFn: identityHash }).
		Assoc(1, 1).
		Assoc(2, 2).
		Assoc(3, 3)

	assert.Equal(t, "{1: 1, 2: 2, 3: 3}", dict.String())

	solo := pcoll.EmptyDict[string, int]().Assoc("one", 1)
	assert.Equal(t, "{one: 1}", solo.String())
}
