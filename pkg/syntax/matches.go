package syntax

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Capture is one node bound to a capture index within a match.
type Capture struct {
	Index uint
	Node  Node
}

// Match is one occurrence of a pattern.
type Match struct {
	Pattern  int
	Captures []Capture
}

// Matches holds the result of running a query once over a tree,
// grouped by pattern index in match-discovery order.
type Matches struct {
	byPattern map[int][]Match
	byID      map[uintptr]Node
	count     int
}

// Collect runs q over root and groups the matches by pattern.
// Nodes are copied out of the cursor so they stay valid after it closes.
func Collect(q *Query, root *Node, src []byte) *Matches {
	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	result := &Matches{byPattern: make(map[int][]Match), byID: make(map[uintptr]Node)}
	it := cursor.Matches(q.raw, root, src)
	for m := it.Next(); m != nil; m = it.Next() {
		match := Match{
			Pattern:  int(m.PatternIndex),
			Captures: make([]Capture, 0, len(m.Captures)),
		}
		for _, c := range m.Captures {
			match.Captures = append(match.Captures, Capture{Index: uint(c.Index), Node: c.Node})
			result.byID[c.Node.Id()] = c.Node
		}
		result.byPattern[match.Pattern] = append(result.byPattern[match.Pattern], match)
		result.count++
	}
	return result
}

// ForPattern returns the matches of pattern in discovery order.
func (m *Matches) ForPattern(pattern int) []Match {
	return m.byPattern[pattern]
}

// Len returns the total number of matches.
func (m *Matches) Len() int {
	return m.count
}

// NodeByID returns any node captured by any match.
func (m *Matches) NodeByID(id uintptr) (Node, bool) {
	node, ok := m.byID[id]
	return node, ok
}

// Provider returns a provider over match that can also resolve nodes
// captured by other matches of the same run.
func (m *Matches) Provider(match Match) *Provider {
	return &Provider{captures: match.Captures, all: m}
}

// Provider is a read view over the nodes captured by one match.
type Provider struct {
	captures []Capture
	all      *Matches
}

// NewProvider returns a provider over match's captures only.
func NewProvider(match Match) *Provider {
	return &Provider{captures: match.Captures}
}

// Nodes returns the nodes bound to capture index id, in capture order.
func (p *Provider) Nodes(id uint) []Node {
	var nodes []Node
	for _, c := range p.captures {
		if c.Index == id {
			nodes = append(nodes, c.Node)
		}
	}
	return nodes
}

// NodeByID returns the captured node with the given node id, looking in
// this match first and then in every match of the run.
func (p *Provider) NodeByID(id uintptr) (Node, bool) {
	for _, c := range p.captures {
		if c.Node.Id() == id {
			return c.Node, true
		}
	}
	if p.all != nil {
		return p.all.NodeByID(id)
	}
	return Node{}, false
}

// All returns every capture of the match.
func (p *Provider) All() []Capture {
	return p.captures
}
