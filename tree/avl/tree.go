package avl

import (
	"errors"
)

var (
	ErrKeyExists   = errors.New("key already exists")
	ErrKeyNotFound = errors.New("key not found")
)

type (
	// Tree is a persistent AVL tree map indexed according to the function
	// Key.Compare result.
	//
	// Every mutating operation leaves the receiver untouched and returns a
	// new tree value; subtrees not on the mutated path are shared between
	// the versions. Because no node is ever modified after creation, any
	// number of goroutines may read any number of tree versions concurrently
	// without synchronization. The zero value is not usable, use New.
	Tree[K Key[K], V any] struct {
		root *Node[K, V]
	}
)

// New returns an empty tree.
// - K is the type of the node's key (e.g. IntKey)
// - V is the type of the node's value
func New[K Key[K], V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// NewWithRoot returns a tree over a root assembled from balanced nodes,
// see NewBalancedNode.
func NewWithRoot[K Key[K], V any](root *Node[K, V]) *Tree[K, V] {
	return &Tree[K, V]{root: root}
}

// Insert returns a new tree with the key bound to value. The key must not
// be present, inserting an existing key returns ErrKeyExists.
func (t *Tree[K, V]) Insert(key K, value V) (*Tree[K, V], error) {
	root, err := insert(t.root, key, value)
	if err != nil {
		return nil, err
	}
	return &Tree[K, V]{root: root}, nil
}

// Remove returns a new tree without the key. Removing an absent key
// returns ErrKeyNotFound.
func (t *Tree[K, V]) Remove(key K) (*Tree[K, V], error) {
	root, err := remove(t.root, key)
	if err != nil {
		return nil, err
	}
	return &Tree[K, V]{root: root}, nil
}

// Get returns the value bound to the key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch c := key.Compare(n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return size(t.root)
}

func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Traverse visits every entry in key order until fn returns an error.
func (t *Tree[K, V]) Traverse(fn func(key K, value V) error) error {
	return traverseInOrder(t.root, fn)
}

// TraversePostOrder visits children before their parent, reporting which
// children each entry has. Together with NewBalancedNode this allows the
// exact tree shape to be serialized and reassembled.
func (t *Tree[K, V]) TraversePostOrder(fn func(key K, value V, hasLeft, hasRight bool) error) error {
	return traversePostOrder(t.root, fn)
}

func traverseInOrder[K Key[K], V any](n *Node[K, V], fn func(K, V) error) error {
	if n == nil {
		return nil
	}
	if err := traverseInOrder(n.left, fn); err != nil {
		return err
	}
	if err := fn(n.key, n.value); err != nil {
		return err
	}
	return traverseInOrder(n.right, fn)
}

func traversePostOrder[K Key[K], V any](n *Node[K, V], fn func(K, V, bool, bool) error) error {
	if n == nil {
		return nil
	}
	if err := traversePostOrder(n.left, fn); err != nil {
		return err
	}
	if err := traversePostOrder(n.right, fn); err != nil {
		return err
	}
	return fn(n.key, n.value, n.left != nil, n.right != nil)
}
