package editor

import (
	"gitlab.com/tozd/go/errors"

	"github.com/yaklabco/cookfmt/pkg/syntax"
)

// ErrSyncOrder is returned by SyncLast when the handle has not been synced
// through every edit but the last, or has already seen the last one.
var ErrSyncOrder = errors.Base("handle is not synced through all but the last edit")

// Handle is a node tracked against an editor's edit log.
//
// The node itself is kept unedited and is only used for identity and tree
// navigation. Its coordinates live in the handle and are corrected by
// replaying edits. The synced stamp counts how many log entries have been
// replayed, so no edit is ever applied twice.
type Handle struct {
	node   syntax.Node
	rng    syntax.Range
	synced int
}

// Track starts tracking node. The node's coordinates must be those of the
// text as originally parsed; the handle starts with no edits replayed.
func (e *Editor) Track(node syntax.Node) *Handle {
	return &Handle{node: node, rng: syntax.NodeRange(&node)}
}

// TrackSynced tracks node and replays the full log onto it.
func (e *Editor) TrackSynced(node syntax.Node) *Handle {
	h := e.Track(node)
	e.Sync(h)
	return h
}

// Sync replays every edit the handle has not seen yet.
func (e *Editor) Sync(h *Handle) {
	e.replay(h, len(e.edits))
}

// SyncNonLast replays every unseen edit except the most recent one.
func (e *Editor) SyncNonLast(h *Handle) {
	e.replay(h, len(e.edits)-1)
}

// SyncLast replays only the most recent edit. The handle must already be
// synced through every edit before it.
func (e *Editor) SyncLast(h *Handle) error {
	if len(e.edits) == 0 || h.synced != len(e.edits)-1 {
		return errors.WithDetails(ErrSyncOrder, "synced", h.synced, "edits", len(e.edits))
	}
	e.replay(h, len(e.edits))
	return nil
}

func (e *Editor) replay(h *Handle, through int) {
	for ; h.synced < through; h.synced++ {
		h.rng = Reposition(h.rng, e.edits[h.synced])
	}
}

// Node returns the unedited node for identity and navigation.
func (h *Handle) Node() *syntax.Node {
	return &h.node
}

// ID returns the stable node id.
func (h *Handle) ID() uintptr {
	return h.node.Id()
}

// Kind returns the node kind.
func (h *Handle) Kind() string {
	return h.node.Kind()
}

// Synced returns the number of log entries replayed onto the handle.
func (h *Handle) Synced() int {
	return h.synced
}

// Range returns the handle's current coordinates.
func (h *Handle) Range() syntax.Range {
	return h.rng
}

// StartByte returns the current start byte.
func (h *Handle) StartByte() uint { return h.rng.StartByte }

// EndByte returns the current end byte.
func (h *Handle) EndByte() uint { return h.rng.EndByte }

// StartPoint returns the current start point.
func (h *Handle) StartPoint() syntax.Point { return h.rng.StartPoint }

// EndPoint returns the current end point.
func (h *Handle) EndPoint() syntax.Point { return h.rng.EndPoint }

// Parent returns a synced handle for the node's parent.
func (e *Editor) Parent(h *Handle) (*Handle, bool) {
	parent := h.node.Parent()
	if parent == nil {
		return nil, false
	}
	return e.TrackSynced(*parent), true
}

// Prev returns a synced handle for the closest node preceding h in
// document order: its previous sibling, or that of the nearest ancestor
// that has one.
func (e *Editor) Prev(h *Handle) (*Handle, bool) {
	for node := &h.node; node != nil; node = node.Parent() {
		if prev := node.PrevSibling(); prev != nil {
			return e.TrackSynced(*prev), true
		}
	}
	return nil, false
}
