package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ringarray/enum"
)

func TestToList(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, enum.ToList[int](countdown(3)))
	assert.Equal(t, []int{}, enum.ToList[int](countdown(0)))
	assert.Equal(t, []string{"a", "b"}, enum.ToList(enum.FromSlice([]string{"a", "b"})))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 5, enum.Count[int](countdown(5)))
	assert.Equal(t, 0, enum.Count[int](countdown(0)))
	assert.Equal(t, 3, enum.Count(enum.FromSlice([]int{7, 8, 9})))
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		length int
		want   []int
	}{
		{"Prefix", 0, 2, []int{6, 5}},
		{"Middle", 2, 3, []int{4, 3, 2}},
		{"Clamped", 4, 10, []int{2, 1}},
		{"Past end", 9, 1, []int{}},
		{"Zero length", 1, 0, []int{}},
		{"Negative offset", -2, 1, []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// traversal fallback
			assert.Equal(t, tt.want, enum.Slice[int](countdown(6), tt.offset, tt.length))
			// Slicer fast path
			assert.Equal(t, tt.want, enum.Slice(enum.FromSlice([]int{6, 5, 4, 3, 2, 1}), tt.offset, tt.length))
		})
	}
}

func TestSlice_MaterializerCopies(t *testing.T) {
	src := []int{1, 2, 3}
	got := enum.Slice(enum.FromSlice(src), 0, 2)
	got[0] = 100
	assert.Equal(t, []int{1, 2, 3}, src)
}

func TestMember(t *testing.T) {
	assert.True(t, enum.Member[int](countdown(10), 4))
	assert.False(t, enum.Member[int](countdown(10), 11))
	assert.False(t, enum.Member[int](countdown(0), 0))

	visited := 0
	found := enum.MemberFunc[int](countdown(10), func(v int) bool {
		visited++
		return v == 8
	})
	assert.True(t, found)
	assert.Equal(t, 3, visited, "member stops at the first match")
}

func TestFirst_Fold(t *testing.T) {
	v, ok := enum.First[int](countdown(3))
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = enum.First[int](countdown(0))
	assert.False(t, ok)

	product := enum.Fold[int](countdown(4), 1, func(acc, v int) int { return acc * v })
	assert.Equal(t, 24, product)
}
