package inputmap

import (
	"container/heap"
	"strconv"
)

// ActorID identifies a tracked actor. IDs are issued by the Registry that
// tracks the actor and are only meaningful to that Registry.
type ActorID uint32

func (id ActorID) String() string {
	return "actor#" + strconv.FormatUint(uint64(id), 10)
}

// idAllocator hands out sequential IDs and reuses released ones, lowest first,
// so a long-running process never runs out of identifiers.
type idAllocator struct {
	next ActorID
	free idHeap
	live map[ActorID]struct{}
}

func newIDAllocator() *idAllocator {
	return &idAllocator{live: make(map[ActorID]struct{})}
}

// acquire returns the lowest released ID, or the next unused one.
func (a *idAllocator) acquire() ActorID {
	var id ActorID
	if a.free.Len() > 0 {
		id = heap.Pop(&a.free).(ActorID)
	} else {
		id = a.next
		a.next++
	}
	a.live[id] = struct{}{}
	return id
}

// release returns id to the pool. Releasing an ID that is not live is a no-op.
func (a *idAllocator) release(id ActorID) bool {
	if _, ok := a.live[id]; !ok {
		return false
	}
	delete(a.live, id)
	heap.Push(&a.free, id)
	return true
}

// idHeap is a min-heap of released IDs.
type idHeap []ActorID

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(ActorID)) }
func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
