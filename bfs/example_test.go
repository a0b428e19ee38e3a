package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridmap/bfs"
	"github.com/katalvlaran/gridmap/hexgrid"
)

// ExampleWalk floods a small hex disk and prints how many cells sit at each step count.
func ExampleWalk() {
	m, _ := hexgrid.Circle(2, 0)
	res, err := bfs.Walk[hexgrid.Axial, int](m, hexgrid.Axial{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for d, layer := range res.Layers() {
		fmt.Println(d, len(layer))
	}
	// Output:
	// 0 1
	// 1 6
	// 2 12
}
