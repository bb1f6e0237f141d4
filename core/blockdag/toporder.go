package blockdag

import (
	"container/heap"
	"container/list"
	"fmt"
)

// An id min-heap used by the topological sorting.
type idHeap []uint

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(uint)) }
func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Recompute the total order of the whole DAG with Kahn's algorithm. The
// blocks which are ready at the same moment are sequenced by the smallest
// sequential id first, so that the result does not depend on map iteration
// and every node of the network converges on one sequence.
//
// The function returns the list of blocks whose order has changed. Since
// every parent owns a smaller sequential id than its children, a re-run
// reproduces the order of the settled blocks exactly and only the fresh
// block gains a position.
func (ph *Phantom) updateOrder(pb *Block) *list.List {
	refNodes := list.New()
	total := ph.bd.blockTotal

	inDegree := make([]int, total)
	for id := uint(0); id < total; id++ {
		ib := ph.bd.getBlockById(id)
		if ib == nil {
			panic(AssertError(fmt.Sprintf("the block:%d is missing in the DAG", id)))
		}
		if ib.HasParents() {
			inDegree[id] = ib.GetParents().Size()
		}
	}

	ready := &idHeap{}
	heap.Init(ready)
	for id := uint(0); id < total; id++ {
		if inDegree[id] == 0 {
			heap.Push(ready, id)
		}
	}

	var order uint
	for ready.Len() > 0 {
		cur := heap.Pop(ready).(uint)
		ib := ph.bd.getBlockById(cur)
		if ib.GetOrder() != order {
			ib.SetOrder(order)
			refNodes.PushBack(ib)
		}
		ph.bd.order[order] = cur
		order++

		if ib.HasChildren() {
			for k := range ib.GetChildren().GetMap() {
				inDegree[k]--
				if inDegree[k] == 0 {
					heap.Push(ready, k)
				}
			}
		}
	}

	if order != total {
		panic(AssertError(fmt.Sprintf(
			"cycle detected in the DAG:only %d of %d blocks can be ordered", order, total)))
	}
	return refNodes
}
