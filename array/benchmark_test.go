package array_test

import (
	"fmt"
	"testing"

	"ringarray/array"
	"ringarray/enum"
)

// ==========================================
// Payloads
// ==========================================

// Tiny: 8 Bytes
type PayloadTiny int64

// Medium: 128 Bytes
type PayloadMedium struct {
	Data [128]byte
}

func benchPush[T any](b *testing.B, n int) {
	var zero T
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := array.New[T]()
		for j := 0; j < n; j++ {
			a = a.Push(zero)
		}
	}
}

func BenchmarkPush(b *testing.B) {
	for _, n := range []int{8, 1_000, 100_000} {
		b.Run(fmt.Sprintf("Tiny/%d", n), func(b *testing.B) { benchPush[PayloadTiny](b, n) })
		b.Run(fmt.Sprintf("Medium/%d", n), func(b *testing.B) { benchPush[PayloadMedium](b, n) })
	}
}

// BenchmarkPushShift keeps a fixed number of elements live, the way a FIFO queue would.
func BenchmarkPushShift(b *testing.B) {
	for _, live := range []int{4, 64, 1024} {
		b.Run(fmt.Sprintf("Live/%d", live), func(b *testing.B) {
			a := array.New[int]()
			for i := 0; i < live; i++ {
				a = a.Push(i)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a = a.Push(i)
				_, a, _ = a.Shift()
			}
		})
	}
}

// BenchmarkTraversal compares the generic traversal with direct indexed access.
func BenchmarkTraversal(b *testing.B) {
	a := array.New[int]()
	for i := 0; i < 10_000; i++ {
		a = a.Push(i)
	}

	b.Run("enum.ToList", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = enum.ToList[int](a)
		}
	})
	b.Run("All", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			out := make([]int, 0, a.Size())
			for _, v := range a.All() {
				out = append(out, v)
			}
			_ = out
		}
	})
	b.Run("enum.Count", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = enum.Count[int](a)
		}
	})
	b.Run("enum.Slice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = enum.Slice[int](a, 5_000, 100)
		}
	})
}
