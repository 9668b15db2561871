package huffman

import (
	"fmt"
	"math"

	"github.com/abhinav/huffcode/internal/pqueue"
)

// Tree is a Huffman tree.
// Leaves hold symbols; every other node has exactly two children.
//
// Trees are built with Build and are not modified afterwards.
type Tree[S comparable] struct {
	root *node[S]
	size int
}

type node[S comparable] struct {
	// Symbol held by a leaf node. Unset for branches.
	Symbol S

	// Frequency of the leaf, or the combined frequency
	// of all leaves under a branch.
	Freq uint64

	// Children of a branch node. Both are nil for leaves.
	Left, Right *node[S]
}

func (n *node[S]) isLeaf() bool {
	return n.Left == nil
}

// Build builds a Huffman tree from the given weights.
//
// Symbols must be unique. Zero frequencies are allowed;
// such symbols still get a codeword.
//
// Leaves enter the priority queue in the order of weights,
// and ties are broken by insertion order,
// so the same weights in the same order always produce the same tree.
func Build[S comparable](weights []Weight[S]) (*Tree[S], error) {
	if len(weights) == 0 {
		return nil, ErrEmptyAlphabet
	}

	seen := make(map[S]struct{}, len(weights))
	var queue pqueue.Queue[*node[S]]
	for _, w := range weights {
		if _, ok := seen[w.Symbol]; ok {
			return nil, &DuplicateSymbolError[S]{Symbol: w.Symbol}
		}
		seen[w.Symbol] = struct{}{}

		queue.Push(&node[S]{Symbol: w.Symbol, Freq: w.Freq}, w.Freq)
	}

	// Merge the two least frequent nodes into a new branch
	// until only the root is left.
	// With a single symbol, the loop doesn't run and the leaf is the root.
	for queue.Len() > 1 {
		left, err := queue.Pop()
		if err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}
		right, err := queue.Pop()
		if err != nil {
			return nil, fmt.Errorf("merge: %w", err)
		}

		branch := &node[S]{
			Freq:  addSaturating(left.Freq, right.Freq),
			Left:  left,
			Right: right,
		}
		queue.Push(branch, branch.Freq)
	}

	root, err := queue.Pop()
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}

	return &Tree[S]{root: root, size: len(weights)}, nil
}

// Len reports the number of symbols in the tree.
func (t *Tree[S]) Len() int { return t.size }

// Freq reports the total frequency of all symbols in the tree.
// This saturates at the maximum uint64.
func (t *Tree[S]) Freq() uint64 { return t.root.Freq }

func addSaturating(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}
