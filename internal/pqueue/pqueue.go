// Package pqueue implements a min-priority queue keyed by integer weights.
//
// Items with equal weights leave the queue in the order they entered it.
// This makes the extraction order fully determined by the sequence of
// pushes, which callers building trees rely on for reproducible output.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned when an item is requested from an empty queue.
var ErrEmpty = errors.New("pqueue: queue is empty")

// Queue is a min-priority queue of values of type T.
//
// The zero value is an empty queue ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	items itemHeap[T]

	// Sequence number for the next pushed item.
	seq uint64
}

// Len reports the number of items in the queue.
func (q *Queue[T]) Len() int { return len(q.items) }

// Push adds v to the queue with the given weight.
func (q *Queue[T]) Push(v T, weight uint64) {
	heap.Push(&q.items, item[T]{
		Value:  v,
		Weight: weight,
		Seq:    q.seq,
	})
	q.seq++
}

// Pop removes and returns the item with the lowest weight.
// Among items with the same weight, the one pushed first is returned.
func (q *Queue[T]) Pop() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return heap.Pop(&q.items).(item[T]).Value, nil
}

// Peek returns the item Pop would return without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[0].Value, nil
}

type item[T any] struct {
	Value  T
	Weight uint64
	Seq    uint64
}

type itemHeap[T any] []item[T]

var _ heap.Interface = (*itemHeap[int])(nil)

func (is itemHeap[T]) Len() int { return len(is) }

func (is itemHeap[T]) Less(i, j int) bool {
	if is[i].Weight != is[j].Weight {
		return is[i].Weight < is[j].Weight
	}
	return is[i].Seq < is[j].Seq
}

func (is itemHeap[T]) Swap(i, j int) {
	is[i], is[j] = is[j], is[i]
}

func (is *itemHeap[T]) Push(e any) {
	*is = append(*is, e.(item[T]))
}

func (is *itemHeap[T]) Pop() any {
	n := len(*is) - 1
	v := (*is)[n]
	(*is)[n] = item[T]{} // release the value
	*is = (*is)[:n]
	return v
}
