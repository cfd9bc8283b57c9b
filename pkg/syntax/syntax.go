// Package syntax wraps tree-sitter parsing and querying for the formatter.
//
// Nodes, points, and ranges are the tree-sitter value types re-exported
// under local names so callers outside this package never import the
// binding directly.
package syntax

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Node is a syntax node. Nodes are plain values; copying one is cheap.
type Node = tree_sitter.Node

// Point is a zero-based (row, column) position. Column counts bytes.
type Point = tree_sitter.Point

// Range is a byte span paired with its start and end points.
type Range = tree_sitter.Range

// InputEdit describes a single text edit for tree-sitter node updates.
type InputEdit = tree_sitter.InputEdit

// Tree is a parsed syntax tree.
type Tree = tree_sitter.Tree

// NodeRange returns the range covered by node.
func NodeRange(node *Node) Range {
	return Range{
		StartByte:  node.StartByte(),
		EndByte:    node.EndByte(),
		StartPoint: node.StartPosition(),
		EndPoint:   node.EndPosition(),
	}
}

// Text returns the source text spanned by node.
func Text(node *Node, src []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if end > uint(len(src)) || start > end {
		return ""
	}
	return string(src[start:end])
}
