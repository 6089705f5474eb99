package pathfinding

import (
	"container/heap"

	"github.com/cosiestdevil/ink-and-iron/helpers"
	"github.com/cosiestdevil/ink-and-iron/worldgen"
)

// searchNode is one visited state in the A* arena. Parents are arena
// indices, so path reconstruction is a simple index walk.
type searchNode struct {
	cell   worldgen.CellID
	g      float64 // cost from start
	h      float64 // straight-line estimate to goal
	parent int     // arena index, -1 for the start node
}

func (n *searchNode) f() float64 {
	return n.g + n.h
}

// queueEntry is a single entry in the open-set priority queue.
type queueEntry struct {
	index int     // index of the item in the heap
	score float64 // priority of the item in the queue
	node  int     // arena index of the search node
}

// ascPriorityQueue implements heap.Interface, lowest score first.
type ascPriorityQueue []*queueEntry

func (pq ascPriorityQueue) Len() int { return len(pq) }

func (pq ascPriorityQueue) Less(i, j int) bool {
	return pq[i].score < pq[j].score
}

func (pq ascPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}

func (pq *ascPriorityQueue) Push(x any) {
	n := len(*pq)
	item := x.(*queueEntry)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *ascPriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// FindPath answers a single-pair shortest-path query over the
// navigation graph. The returned path is goal-first: the first element
// is the goal and the last is the start; callers that need start-first
// order must reverse it. Returns nil when no path exists, which is a
// normal outcome for disconnected regions, not an error.
//
// Queries are independent and share no mutable state, so any number of
// them may run concurrently against the same graph.
func FindPath(g *Graph, start, goal worldgen.CellID) []worldgen.CellID {
	goalPos := g.positions[goal]

	nodes := []searchNode{{
		cell:   start,
		g:      0,
		h:      helpers.Dist2(g.positions[start], goalPos),
		parent: -1,
	}}
	best := map[worldgen.CellID]int{start: 0}
	closed := make(map[worldgen.CellID]bool)

	open := ascPriorityQueue{{score: nodes[0].f(), node: 0}}
	heap.Init(&open)

	for open.Len() > 0 {
		entry := heap.Pop(&open).(*queueEntry)
		current := entry.node
		cell := nodes[current].cell
		if closed[cell] || best[cell] != current {
			continue // stale entry, a better route was queued later
		}
		if cell == goal {
			return reconstructPath(nodes, current)
		}
		closed[cell] = true

		for _, e := range g.edges[cell] {
			if closed[e.to] {
				continue
			}
			tentG := nodes[current].g + e.weight
			if idx, seen := best[e.to]; seen && tentG >= nodes[idx].g {
				continue
			}
			nodes = append(nodes, searchNode{
				cell:   e.to,
				g:      tentG,
				h:      helpers.Dist2(g.positions[e.to], goalPos),
				parent: current,
			})
			idx := len(nodes) - 1
			best[e.to] = idx
			heap.Push(&open, &queueEntry{score: nodes[idx].f(), node: idx})
		}
	}
	return nil
}

// reconstructPath walks the parent indices from the goal node back to
// the start. The result deliberately stays goal-first.
func reconstructPath(nodes []searchNode, current int) []worldgen.CellID {
	var path []worldgen.CellID
	for current >= 0 {
		path = append(path, nodes[current].cell)
		current = nodes[current].parent
	}
	return path
}

// NextStep returns the cell a unit standing at the start of the path
// should move to next. The second return value is false when the path
// has no further step (the unit is already at the goal).
func NextStep(path []worldgen.CellID) (worldgen.CellID, bool) {
	if len(path) < 2 {
		return 0, false
	}
	return path[len(path)-2], true
}
