package bintree

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type mapFunc func(*Node[int], func(int) int) *Node[int]

var orders = []struct {
	name string
	fn   mapFunc
	want []int // visiting order on the reference tree
}{
	{"pre", PreOrderMap[int, int], []int{1, 2, 4, 5, 8, 3, 6, 9, 7}},
	{"in", InOrderMap[int, int], []int{4, 2, 8, 5, 1, 6, 9, 3, 7}},
	{"post", PostOrderMap[int, int], []int{4, 8, 5, 2, 9, 6, 7, 3, 1}},
}

func TestMapVisitingOrder(t *testing.T) {
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			var visited []int
			tt.fn(referenceTree(t), func(v int) int {
				visited = append(visited, v)
				return v
			})
			require.Equal(t, tt.want, visited)
		})
	}
}

func TestMapIdentityRoundTrip(t *testing.T) {
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			want := referenceTree(t)
			got := tt.fn(referenceTree(t), func(v int) int { return v })

			require.Equal(t, shape(want), shape(got))
			require.Equal(t, preOrder(want), preOrder(got))
		})
	}
}

func TestPreOrderMapIdentityValues(t *testing.T) {
	got := PreOrderMap(referenceTree(t), func(v int) int { return v })
	require.Equal(t, []int{1, 2, 4, 5, 8, 3, 6, 9, 7}, preOrder(got))
}

func TestMapComposition(t *testing.T) {
	f := func(v int) int { return v*3 + 1 }
	g := func(v int) int { return v * v }

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			twice := tt.fn(tt.fn(referenceTree(t), f), g)
			once := tt.fn(referenceTree(t), func(v int) int { return g(f(v)) })

			require.Equal(t, shape(once), shape(twice))
			require.Equal(t, preOrder(once), preOrder(twice))
		})
	}
}

func TestMapChangesElementType(t *testing.T) {
	got := PostOrderMap(referenceTree(t), strconv.Itoa)

	require.Equal(t, "*(*(*,*(*,_)),*(*(_,*),*))", shape(got))
	require.Equal(t, []string{"1", "2", "4", "5", "8", "3", "6", "9", "7"}, preOrder(got))
}

func TestMapStatefulTransform(t *testing.T) {
	// The counter records the position of each node in the visiting order.
	n := 0
	got := InOrderMap(referenceTree(t), func(v int) string {
		n++
		return fmt.Sprintf("%d@%d", v, n)
	})

	require.Equal(t, 9, n)
	require.Equal(t, "1@5", got.Data())
	require.Equal(t, "2@2", got.Left().Data())
	require.Equal(t, "7@9", got.Right().Right().Data())
}

func TestMapConsumesSource(t *testing.T) {
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			src := referenceTree(t)
			left := src.Left()
			tt.fn(src, func(v int) int { return v })

			require.True(t, src.IsLeaf(), "source root should be detached")
			require.Zero(t, src.Data())
			require.True(t, left.IsLeaf(), "source subtrees should be detached")
			require.Zero(t, left.Data())
		})
	}
}

func TestMapProducesDisjointTree(t *testing.T) {
	src := referenceTree(t)
	seen := map[*Node[int]]bool{}
	var walk func(n *Node[int])
	walk = func(n *Node[int]) {
		if n == nil {
			return
		}
		seen[n] = true
		walk(n.left)
		walk(n.right)
	}
	walk(src)

	got := PreOrderMap(src, func(v int) int { return v })
	for level, n := 0, []*Node[int]{got}; len(n) > 0; level++ {
		var next []*Node[int]
		for _, c := range n {
			require.False(t, seen[c], "mapped node at depth %d aliases a source node", level)
			if c.left != nil {
				next = append(next, c.left)
			}
			if c.right != nil {
				next = append(next, c.right)
			}
		}
		n = next
	}
}

func TestMapEmptyTree(t *testing.T) {
	var n *Node[int]
	calls := 0
	count := func(v int) int { calls++; return v }

	require.Nil(t, PreOrderMap(n, count))
	require.Nil(t, InOrderMap(n, count))
	require.Nil(t, PostOrderMap(n, count))
	require.Zero(t, calls)
}

func TestMapCallsOncePerNode(t *testing.T) {
	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			tt.fn(completeTree(5), func(v int) int { calls++; return v })
			require.Equal(t, 63, calls)
		})
	}
}
