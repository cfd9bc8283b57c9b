package syntax

// Visit is called for each node in pre-order. Returning false stops the walk.
type Visit func(node Node, depth int, field string) bool

// Walk traverses the subtree rooted at root depth-first in pre-order.
// The root is visited at depth 0 with an empty field name.
func Walk(root *Node, visit Visit) {
	cursor := root.Walk()
	defer cursor.Close()

	depth := 0
	for {
		if !visit(*cursor.Node(), depth, cursor.FieldName()) {
			return
		}
		if cursor.GotoFirstChild() {
			depth++
			continue
		}
		for !cursor.GotoNextSibling() {
			if depth == 0 || !cursor.GotoParent() {
				return
			}
			depth--
		}
	}
}

// Leaves returns the leaf descendants of root in document order, leaving
// out every leaf for which skip returns true.
func Leaves(root *Node, skip func(leaf *Node) bool) []Node {
	var leaves []Node
	Walk(root, func(node Node, _ int, _ string) bool {
		if node.ChildCount() == 0 && (skip == nil || !skip(&node)) {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}
