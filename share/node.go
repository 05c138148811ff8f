package share

import (
	"github.com/wangjh9712/fullbr115/api"
)

// Node is one entry of the share tree together with its expansion state.
// Children are fetched once and retained, so collapsing and re-expanding
// a directory never repeats the listing request.
type Node struct {
	api.ShareFile

	expanded bool
	loading  bool
	saving   bool
	fetched  bool
	children []*Node
}

// Expanded reports whether the node is currently unfolded.
func (n *Node) Expanded() bool {
	return n.expanded
}

// Loading reports whether a listing request for the node is in flight.
func (n *Node) Loading() bool {
	return n.loading
}

// Saving reports whether a save request for the node is in flight.
func (n *Node) Saving() bool {
	return n.saving
}

// Children returns the fetched entries below the node, nil when the node
// was never expanded.
func (n *Node) Children() []*Node {
	return n.children
}

// expandable excludes plain files and disc images, which are savable
// units rather than directories to open.
func (n *Node) expandable() bool {
	return n.IsDir && !n.IsISO()
}

func wrap(entries []api.ShareFile) []*Node {
	nodes := make([]*Node, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, &Node{ShareFile: entry})
	}
	return nodes
}
