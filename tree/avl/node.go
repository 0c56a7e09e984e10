package avl

// Node is a single immutable entry of the tree. Nodes are shared between
// tree versions and must never be modified after creation.
type Node[K Key[K], V any] struct {
	key    K
	value  V
	left   *Node[K, V]
	right  *Node[K, V]
	height int
}

// NewBalancedNode creates a node over two already balanced subtrees. It is
// meant for reassembling a previously serialized tree, the caller is
// responsible for feeding back the shape produced by TraversePostOrder.
func NewBalancedNode[K Key[K], V any](key K, value V, left, right *Node[K, V]) *Node[K, V] {
	return newNode(key, value, left, right)
}

func (n *Node[K, V]) Key() K {
	return n.key
}

func (n *Node[K, V]) Value() V {
	return n.value
}

func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

func newNode[K Key[K], V any](key K, value V, left, right *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		left:   left,
		right:  right,
		height: 1 + max(left.heightOrZero(), right.heightOrZero()),
	}
}

func (n *Node[K, V]) heightOrZero() int {
	if n == nil {
		return 0
	}
	return n.height
}

func size[K Key[K], V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.left) + size(n.right)
}

func insert[K Key[K], V any](n *Node[K, V], key K, value V) (*Node[K, V], error) {
	if n == nil {
		return newNode(key, value, nil, nil), nil
	}
	switch c := key.Compare(n.key); {
	case c < 0:
		left, err := insert(n.left, key, value)
		if err != nil {
			return nil, err
		}
		return rebalance(newNode(n.key, n.value, left, n.right)), nil
	case c > 0:
		right, err := insert(n.right, key, value)
		if err != nil {
			return nil, err
		}
		return rebalance(newNode(n.key, n.value, n.left, right)), nil
	default:
		return nil, ErrKeyExists
	}
}

func remove[K Key[K], V any](n *Node[K, V], key K) (*Node[K, V], error) {
	if n == nil {
		return nil, ErrKeyNotFound
	}
	switch c := key.Compare(n.key); {
	case c < 0:
		left, err := remove(n.left, key)
		if err != nil {
			return nil, err
		}
		return rebalance(newNode(n.key, n.value, left, n.right)), nil
	case c > 0:
		right, err := remove(n.right, key)
		if err != nil {
			return nil, err
		}
		return rebalance(newNode(n.key, n.value, n.left, right)), nil
	default:
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		rest, successor := removeMin(n.right)
		return rebalance(newNode(successor.key, successor.value, n.left, rest)), nil
	}
}

// removeMin detaches the smallest node of a non-empty subtree and returns
// the remaining subtree together with the detached node.
func removeMin[K Key[K], V any](n *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if n.left == nil {
		return n.right, n
	}
	rest, min := removeMin(n.left)
	return rebalance(newNode(n.key, n.value, rest, n.right)), min
}

func balance[K Key[K], V any](n *Node[K, V]) int {
	return n.left.heightOrZero() - n.right.heightOrZero()
}

func rebalance[K Key[K], V any](n *Node[K, V]) *Node[K, V] {
	switch b := balance(n); {
	case b > 1:
		if balance(n.left) < 0 {
			n = newNode(n.key, n.value, rotateLeft(n.left), n.right)
		}
		return rotateRight(n)
	case b < -1:
		if balance(n.right) > 0 {
			n = newNode(n.key, n.value, n.left, rotateRight(n.right))
		}
		return rotateLeft(n)
	default:
		return n
	}
}

func rotateRight[K Key[K], V any](n *Node[K, V]) *Node[K, V] {
	l := n.left
	return newNode(l.key, l.value, l.left, newNode(n.key, n.value, l.right, n.right))
}

func rotateLeft[K Key[K], V any](n *Node[K, V]) *Node[K, V] {
	r := n.right
	return newNode(r.key, r.value, newNode(n.key, n.value, n.left, r.left), r.right)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
