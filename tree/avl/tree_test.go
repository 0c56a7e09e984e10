package avl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midgard-chain/midgard/util"
)

func TestEmptyTree(t *testing.T) {
	tree := New[IntKey, string]()
	require.Equal(t, 0, tree.Len())
	require.Nil(t, tree.Root())
	_, ok := tree.Get(IntKey(1))
	require.False(t, ok)
	_, err := tree.Remove(IntKey(1))
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.Equal(t, "────┤ empty", tree.PrettyPrint())
}

func TestInsertAndGet(t *testing.T) {
	tree := New[IntKey, string]()
	tree, err := tree.Insert(IntKey(2), "two")
	require.NoError(t, err)
	tree, err = tree.Insert(IntKey(1), "one")
	require.NoError(t, err)
	tree, err = tree.Insert(IntKey(3), "three")
	require.NoError(t, err)

	require.Equal(t, 3, tree.Len())
	for k, want := range map[IntKey]string{1: "one", 2: "two", 3: "three"} {
		got, ok := tree.Get(k)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, err = tree.Insert(IntKey(2), "again")
	require.ErrorIs(t, err, ErrKeyExists)
}

func TestRemove(t *testing.T) {
	tree := New[IntKey, int]()
	var err error
	for i := 0; i < 10; i++ {
		tree, err = tree.Insert(IntKey(i), i*i)
		require.NoError(t, err)
	}

	tree, err = tree.Remove(IntKey(4))
	require.NoError(t, err)
	require.Equal(t, 9, tree.Len())
	_, ok := tree.Get(IntKey(4))
	require.False(t, ok)
	for _, k := range []IntKey{0, 1, 2, 3, 5, 6, 7, 8, 9} {
		v, ok := tree.Get(k)
		require.True(t, ok)
		require.Equal(t, int(k)*int(k), v)
	}

	_, err = tree.Remove(IntKey(4))
	require.ErrorIs(t, err, ErrKeyNotFound)

	// remove an inner node with two children
	tree, err = tree.Remove(IntKey(3))
	require.NoError(t, err)
	require.Equal(t, 8, tree.Len())
	requireSorted(t, tree)
}

func TestVersionsAreIndependent(t *testing.T) {
	v1 := New[IntKey, string]()
	var err error
	for i := 0; i < 100; i++ {
		v1, err = v1.Insert(IntKey(i), "v1")
		require.NoError(t, err)
	}

	v2, err := v1.Insert(IntKey(100), "v2")
	require.NoError(t, err)
	v3, err := v2.Remove(IntKey(0))
	require.NoError(t, err)

	require.Equal(t, 100, v1.Len())
	require.Equal(t, 101, v2.Len())
	require.Equal(t, 100, v3.Len())

	_, ok := v1.Get(IntKey(100))
	require.False(t, ok, "old version must not see the new key")
	_, ok = v2.Get(IntKey(100))
	require.True(t, ok)
	_, ok = v2.Get(IntKey(0))
	require.True(t, ok, "removal in a newer version must not affect the older one")
	_, ok = v3.Get(IntKey(0))
	require.False(t, ok)
}

func TestStructuralSharing(t *testing.T) {
	tree := New[IntKey, int]()
	var err error
	for i := 0; i < 64; i++ {
		tree, err = tree.Insert(IntKey(i), i)
		require.NoError(t, err)
	}

	// inserting into the right spine must leave the left subtree shared
	next, err := tree.Insert(IntKey(64), 64)
	require.NoError(t, err)
	require.Same(t, tree.Root().Left(), next.Root().Left())
}

func TestTreeStaysBalanced(t *testing.T) {
	tree := New[IntKey, int]()
	var err error
	const n = 1023
	for i := 0; i < n; i++ {
		tree, err = tree.Insert(IntKey(i), i)
		require.NoError(t, err)
	}
	require.Equal(t, n, tree.Len())
	// 1.44*log2(n+2) is the AVL height bound, for 1023 keys that is < 15
	require.LessOrEqual(t, depth(tree.Root()), 15)
	requireSorted(t, tree)

	for i := 0; i < n; i += 2 {
		tree, err = tree.Remove(IntKey(i))
		require.NoError(t, err)
	}
	require.Equal(t, n/2, tree.Len())
	require.LessOrEqual(t, depth(tree.Root()), 14)
	requireSorted(t, tree)
}

func TestShuffledInsertionOrder(t *testing.T) {
	keys := make([]IntKey, 256)
	for i := range keys {
		keys[i] = IntKey(i)
	}

	tree := New[IntKey, int]()
	var err error
	for _, k := range util.ShuffleSliceCopy(keys) {
		tree, err = tree.Insert(k, int(k))
		require.NoError(t, err)
	}

	require.Equal(t, len(keys), tree.Len())
	require.LessOrEqual(t, depth(tree.Root()), 13)
	requireSorted(t, tree)
}

func TestPostOrderRoundTrip(t *testing.T) {
	tree := New[IntKey, string]()
	var err error
	for _, k := range []IntKey{5, 2, 8, 1, 3, 7, 9, 4, 6} {
		tree, err = tree.Insert(k, "x")
		require.NoError(t, err)
	}

	type record struct {
		key               IntKey
		value             string
		hasLeft, hasRight bool
	}
	var records []record
	require.NoError(t, tree.TraversePostOrder(func(k IntKey, v string, hasLeft, hasRight bool) error {
		records = append(records, record{k, v, hasLeft, hasRight})
		return nil
	}))
	require.Len(t, records, 9)

	var stack []*Node[IntKey, string]
	for _, r := range records {
		var left, right *Node[IntKey, string]
		if r.hasRight {
			right = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if r.hasLeft {
			left = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, NewBalancedNode(r.key, r.value, left, right))
	}
	require.Len(t, stack, 1)

	rebuilt := NewWithRoot(stack[0])
	require.Equal(t, tree.Len(), rebuilt.Len())
	require.Equal(t, tree.PrettyPrint(), rebuilt.PrettyPrint(), "rebuilt tree must have the exact same shape")
}

func TestPrettyPrint(t *testing.T) {
	tree := New[IntKey, string]()
	var err error
	for _, k := range []IntKey{2, 1, 3} {
		tree, err = tree.Insert(k, "x")
		require.NoError(t, err)
	}
	out := tree.PrettyPrint()
	require.Contains(t, out, "└──1")
	require.Contains(t, out, "┌──3")
}

func requireSorted(t *testing.T, tree *Tree[IntKey, int]) {
	t.Helper()
	prev := IntKey(-1)
	require.NoError(t, tree.Traverse(func(k IntKey, _ int) error {
		require.Greater(t, int(k), int(prev))
		prev = k
		return nil
	}))
}

func depth[K Key[K], V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	l, r := depth(n.Left()), depth(n.Right())
	if l > r {
		return l + 1
	}
	return r + 1
}
