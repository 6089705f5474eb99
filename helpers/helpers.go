// Package helpers contains small generic utilities shared across the
// generation and pathfinding packages.
package helpers

import (
	"math"
	"sync"

	"github.com/Flokey82/go_gens/vectors"
)

// MinMaxComponentwise returns the componentwise minimum and maximum of
// the given points. The second return value is false if vs is empty.
func MinMaxComponentwise(vs []vectors.Vec2) (vectors.Vec2, vectors.Vec2, bool) {
	if len(vs) == 0 {
		return vectors.Vec2{}, vectors.Vec2{}, false
	}
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max, true
}

// ChunkWorkers splits totalItems into chunks and runs fn on each chunk
// in its own goroutine, blocking until all chunks are done.
func ChunkWorkers(totalItems int, fn func(start, end int)) {
	numWorkers := 8

	var wg sync.WaitGroup
	var chunkStart int
	chunkSize := (totalItems / numWorkers) + 1
	for i := 0; i < numWorkers; i++ {
		curChunk := chunkSize
		if rem := totalItems - chunkStart; rem < curChunk {
			curChunk = rem
		}
		if curChunk <= 0 {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			fn(start, end)
			wg.Done()
		}(chunkStart, chunkStart+curChunk)
		chunkStart += curChunk
	}
	wg.Wait()
}

// Dist2 returns the euclidean distance between two points.
func Dist2(a, b vectors.Vec2) float64 {
	xDiff := a.X - b.X
	yDiff := a.Y - b.Y
	return math.Sqrt(xDiff*xDiff + yDiff*yDiff)
}

// Dot2 returns the dot product of two vectors.
func Dot2(a, b vectors.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}
