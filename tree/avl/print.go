package avl

import "fmt"

// PrettyPrint returns a human-readable string representation of the tree.
func (t *Tree[K, V]) PrettyPrint() string {
	if t == nil || t.root == nil {
		return "────┤ empty"
	}
	out := ""
	output(t.root, "", false, &out)
	return out
}

func output[K Key[K], V any](node *Node[K, V], prefix string, isTail bool, str *string) {
	if node.right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "│\t"
		} else {
			newPrefix += "\t"
		}
		output(node.right, newPrefix, false, str)
	}
	*str += prefix
	if isTail {
		*str += "└──"
	} else {
		*str += "┌──"
	}
	*str += fmt.Sprintf("%v\n", node.key)
	if node.left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "\t"
		} else {
			newPrefix += "│\t"
		}
		output(node.left, newPrefix, true, str)
	}
}
