package planner

import (
	"github.com/zyedidia/generic/heap"

	"snake-autopilot/game/types"
)

type frontierItem struct {
	pos      types.Point
	priority int
	seq      int // insertion order, breaks priority ties
}

// frontier is a min-priority queue. Equal priorities pop in insertion order,
// so routes are reproducible between runs.
type frontier struct {
	h   *heap.Heap[frontierItem]
	seq int
}

func newFrontier() *frontier {
	return &frontier{
		h: heap.New(func(a, b frontierItem) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			return a.seq < b.seq
		}),
	}
}

func (f *frontier) push(p types.Point, priority int) {
	f.h.Push(frontierItem{pos: p, priority: priority, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() (frontierItem, bool) {
	return f.h.Pop()
}

func (f *frontier) len() int {
	return f.h.Size()
}
