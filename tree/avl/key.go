package avl

// Key is a constraint for the tree key. Compare returns a negative number
// if the receiver sorts before k, a positive number if it sorts after k
// and 0 if the keys are equal.
type Key[K any] interface {
	Compare(k K) int
}

// IntKey implements the Key interface for int keys.
type IntKey int

func (k IntKey) Compare(k2 IntKey) int {
	return int(k) - int(k2)
}
