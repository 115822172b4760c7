package dataset

import "fmt"

// nilNode marks an absent child, handle 0 is never allocated.
const nilNode uint32 = 0

type node struct {
	value float64
	left  uint32
	right uint32
}

// Tree is an unbalanced binary search tree of samples. Nodes live in
// an arena and reference each other by index. A value strictly less
// than a node goes left, everything else goes right, so duplicates
// are kept and traverse after the equal values already present.
//
// Tree is not safe for concurrent use.
type Tree struct {
	nodes []node
	root  uint32
}

func New() *Tree {
	return &Tree{nodes: []node{{}}}
}

// FromValues builds a tree by inserting values in order.
func FromValues(values []float64) *Tree {
	t := New()
	for _, v := range values {
		t.Add(v)
	}
	return t
}

func (t *Tree) Add(value float64) {
	idx := t.alloc(value)
	if t.root == nilNode {
		t.root = idx
		return
	}

	curr := t.root
	for {
		n := &t.nodes[curr]
		if value < n.value {
			if n.left == nilNode {
				n.left = idx
				return
			}
			curr = n.left
		} else {
			if n.right == nilNode {
				n.right = idx
				return
			}
			curr = n.right
		}
	}
}

func (t *Tree) Clear() {
	t.nodes = t.nodes[:1]
	t.root = nilNode
}

func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Snapshot returns every sample in non-decreasing order.
func (t *Tree) Snapshot() []float64 {
	out := make([]float64, 0, t.Len())

	// iterative in-order walk, sorted input degenerates into a list
	// and would otherwise recurse once per sample
	stack := make([]uint32, 0, 32)
	curr := t.root
	for curr != nilNode || len(stack) > 0 {
		for curr != nilNode {
			stack = append(stack, curr)
			curr = t.nodes[curr].left
		}

		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, t.nodes[curr].value)
		curr = t.nodes[curr].right
	}

	return out
}

func (t *Tree) String() string {
	return fmt.Sprintf("Dataset(len=%d)", t.Len())
}

func (t *Tree) alloc(value float64) uint32 {
	t.nodes = append(t.nodes, node{value: value})
	return uint32(len(t.nodes) - 1)
}
