// Package milp: the best-bound frontier.
package milp

import "container/heap"

// frontier is a min-heap of open nodes keyed by (bound, seq). The secondary
// key pins heap behavior to insertion order, which is what makes the whole
// search reproducible.
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound < f[j].bound
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}

// push and pop keep heap plumbing out of the driver loop.
func (f *frontier) push(n *node) { heap.Push(f, n) }

func (f *frontier) pop() *node { return heap.Pop(f).(*node) }
