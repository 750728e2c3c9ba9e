package climate

import (
	"math"
	"sort"
)

// node is either a leaf carrying one biome id, or an interior node carrying
// child nodes. Every node's space is the axis-wise union of its
// descendants' boxes; a leaf's space equals its ParamPoint's intervals.
type node struct {
	space    [spaceAxes]Param
	children []*node
	biome    *int32
}

func newLeaf(point ParamPoint, biome int32) *node {
	b := biome
	return &node{space: point.space(), biome: &b}
}

func newSubtree(children []*node) *node {
	return &node{space: buildSpace(children), children: children}
}

func buildSpace(children []*node) [spaceAxes]Param {
	space := children[0].space
	for _, n := range children[1:] {
		for i := 0; i < spaceAxes; i++ {
			space[i] = space[i].union(n.space[i])
		}
	}
	return space
}

// distanceTo is the squared L2 distance from the query point to this
// node's box, zero when the point is inside.
func (n *node) distanceTo(target [spaceAxes]int64) int64 {
	var dist int64
	for i := 0; i < spaceAxes; i++ {
		d := n.space[i].distance(target[i])
		dist += d * d
	}
	return dist
}

// search finds the leaf nearest to values, walking down via best-first
// pruning: a child whose box distance is not smaller than the current best
// is skipped without recursing into it, so the earlier child wins ties.
func (n *node) search(values [spaceAxes]int64) *node {
	if n.biome != nil {
		return n
	}

	dist := int64(math.MaxInt64)
	result := n
	for _, child := range n.children {
		d1 := child.distanceTo(values)
		if dist <= d1 {
			continue
		}
		candidate := child.search(values)
		d2 := d1
		if candidate != child {
			d2 = candidate.distanceTo(values)
		}
		if dist <= d2 {
			continue
		}
		dist = d2
		result = candidate
	}
	return result
}

// build bulk-loads a balanced tree over nodes. Called only with at least
// one node; ParameterList's constructor rejects the empty case before this
// is ever reached, so the zero-length branch is an unreachable invariant
// guard, not a validated precondition.
func build(nodes []*node) *node {
	switch {
	case len(nodes) == 0:
		panic("climate: build requires at least one node")
	case len(nodes) == 1:
		return nodes[0]
	case len(nodes) <= 10:
		sort.SliceStable(nodes, func(i, j int) bool {
			return cost(nodes[i].space) < cost(nodes[j].space)
		})
		return newSubtree(nodes)
	default:
		return buildLarge(nodes)
	}
}

// buildLarge implements the >10 entries case: for each axis, sort by a
// rotated seven-key lexicographic midpoint vector, bucketize into
// fixed-size chunks, and measure the total bucket cost. The axis with the
// smallest total cost is kept (first-wins on ties, since a strictly-less
// comparison only updates on improvement); its buckets are re-sorted by the
// same rotated vector using absolute-value midpoints and recursively built.
func buildLarge(nodes []*node) *node {
	minCost := int64(math.MaxInt64)
	minAxis := 0
	var minBuckets []*node

	for axis := 0; axis < spaceAxes; axis++ {
		sortNodes(nodes, axis, false)
		buckets := bucketize(nodes)

		var c int64
		for _, b := range buckets {
			c += cost(b.space)
		}
		if c < minCost {
			minCost = c
			minAxis = axis
			minBuckets = buckets
		}
	}

	sortNodes(minBuckets, minAxis, true)

	result := make([]*node, 0, len(minBuckets))
	for _, bucket := range minBuckets {
		result = append(result, build(bucket.children))
	}
	return newSubtree(result)
}

// keyedNode pairs a node with its precomputed sort key so sortNodes can
// reorder safely without recomputing keys mid-sort.
type keyedNode struct {
	n   *node
	key [spaceAxes]int64
}

// sortNodes orders nodes in place by a seven-key lexicographic vector whose
// j-th component is the midpoint of axis (axis+j) mod spaceAxes. When abs
// is true, midpoints are compared by absolute value.
func sortNodes(nodes []*node, axis int, abs bool) {
	keyed := make([]keyedNode, len(nodes))
	for i, n := range nodes {
		var key [spaceAxes]int64
		for j := 0; j < spaceAxes; j++ {
			p := n.space[(axis+j)%spaceAxes]
			mid := (p.Min + p.Max) / 2
			if abs && mid < 0 {
				mid = -mid
			}
			key[j] = mid
		}
		keyed[i] = keyedNode{n: n, key: key}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return lexLess(keyed[i].key, keyed[j].key)
	})

	for i := range nodes {
		nodes[i] = keyed[i].n
	}
}

func lexLess(a, b [spaceAxes]int64) bool {
	for i := 0; i < spaceAxes; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// bucketize splits nodes into fixed-size chunks of bucketSize(len(nodes)),
// wrapping each chunk as one subtree node. A short final chunk still forms
// its own bucket.
func bucketize(nodes []*node) []*node {
	size := bucketSize(len(nodes))

	var buckets []*node
	var buffer []*node
	for _, n := range nodes {
		buffer = append(buffer, n)
		if len(buffer) >= size {
			buckets = append(buckets, newSubtree(buffer))
			buffer = nil
		}
	}
	if len(buffer) != 0 {
		buckets = append(buckets, newSubtree(buffer))
	}
	return buckets
}

// bucketSize is 10^floor(log10(n - 0.01)): 11..100 entries bucket by 10,
// 101..1000 by 100, and so on.
func bucketSize(n int) int {
	exp := math.Floor(math.Log10(float64(n) - 0.01))
	return int(math.Pow(10, exp))
}

func cost(space [spaceAxes]Param) int64 {
	var c int64
	for _, p := range space {
		d := p.Max - p.Min
		if d < 0 {
			d = -d
		}
		c += d
	}
	return c
}
