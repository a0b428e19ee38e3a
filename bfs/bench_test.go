package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridmap/bfs"
	"github.com/katalvlaran/gridmap/taxicab"
)

// BenchmarkWalk_Rectangle floods a 256×256 block from one corner.
func BenchmarkWalk_Rectangle(b *testing.B) {
	m, err := taxicab.Rectangle(256, 256, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk[taxicab.Point, int](m, taxicab.New(0, 0))
	}
}
