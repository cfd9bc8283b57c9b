package syntax

import (
	"fmt"
	"strings"
)

// Describe renders node as `(kind (row col) (row col))`.
// Anonymous node kinds are quoted.
func Describe(node *Node) string {
	start, end := node.StartPosition(), node.EndPosition()
	return fmt.Sprintf("(%s (%d %d) (%d %d))", kindLabel(node), start.Row, start.Column, end.Row, end.Column)
}

// DescribeTree renders the subtree rooted at node, one node per line,
// indented by depth and prefixed with the field name when present.
func DescribeTree(node *Node) string {
	var sb strings.Builder
	Walk(node, func(n Node, depth int, field string) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		if field != "" {
			sb.WriteString(field)
			sb.WriteString(": ")
		}
		sb.WriteString(Describe(&n))
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func kindLabel(node *Node) string {
	if node.IsNamed() {
		return node.Kind()
	}
	return fmt.Sprintf("%q", node.Kind())
}
