// Package share models lazy navigation over a remote 115 share: a tree
// of directories expanded on demand, with single-wrapper shares flattened
// at the root and save submissions reported through a notifier.
package share

import (
	"errors"
	"strings"
	"sync"

	"github.com/wangjh9712/fullbr115/api"
	"github.com/wangjh9712/fullbr115/log"
	"github.com/wangjh9712/fullbr115/util"
)

// rootCID addresses the top of a share listing.
const rootCID = "0"

// ErrSaveInFlight rejects a save for a node whose previous save has not
// resolved yet.
var ErrSaveInFlight = errors.New("a save for this entry is already in flight")

// Service is the slice of the server client the navigator needs.
type Service interface {
	List(cid string) ([]api.ShareFile, error)
	Save(fileIDs []string, newDirName string) (*api.Receipt, error)
}

// Notifier hears about the save lifecycle. Submission is announced before
// the request goes out so a UI can show progress immediately; the outcome
// follows once the request resolves.
type Notifier interface {
	SaveSubmitted(node *Node)
	SaveResolved(node *Node, receipt *api.Receipt, err error)
}

type noopNotifier struct{}

func (noopNotifier) SaveSubmitted(*Node) {}

func (noopNotifier) SaveResolved(*Node, *api.Receipt, error) {}

// Tree navigates one share. The mutex guards node state only, never a
// network call, so one slow listing does not serialize the whole tree.
type Tree struct {
	mu       sync.Mutex
	svc      Service
	notifier Notifier
	root     *Node
}

// NewTree builds an unloaded tree over the share behind svc. A nil
// notifier silences save events.
func NewTree(svc Service, notifier Notifier) *Tree {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Tree{
		svc:      svc,
		notifier: notifier,
		root: &Node{
			ShareFile: api.ShareFile{ID: rootCID, IsDir: true},
		},
	}
}

// Root returns the synthetic root node. Its children are the entries the
// user actually sees.
func (t *Tree) Root() *Node {
	return t.root
}

// Entries returns the top-level listing after Load.
func (t *Tree) Entries() []*Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.children
}

// Load lists the share root. When the share wraps everything in a single
// folder, that one level is elided and the folder's own contents become
// the top-level entries. The elision happens once and never recurses; if
// the inner listing fails the wrapper folder is kept and the share stays
// browsable.
func (t *Tree) Load() error {
	entries, err := t.svc.List(rootCID)
	if err != nil {
		return err
	}

	children := entries
	if len(entries) == 1 && entries[0].IsDir && !entries[0].IsISO() {
		inner, err := t.svc.List(entries[0].ID)
		if err != nil {
			log.Warnf("share: flattening %q failed, keeping the wrapper: %v", entries[0].Name, err)
		} else {
			children = inner
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.root.children = wrap(children)
	t.root.fetched = true
	t.root.expanded = true
	return nil
}

// Expand unfolds a directory, fetching its children on first use. It is
// a no-op for disc images, plain files and nodes already expanded or
// loading. On failure the node stays collapsed and the error is returned
// for reporting.
func (t *Tree) Expand(node *Node) error {
	t.mu.Lock()
	if !node.expandable() || node.expanded || node.loading {
		t.mu.Unlock()
		return nil
	}
	if node.fetched {
		node.expanded = true
		t.mu.Unlock()
		return nil
	}
	node.loading = true
	t.mu.Unlock()

	entries, err := t.svc.List(node.ID)

	t.mu.Lock()
	defer t.mu.Unlock()
	node.loading = false
	if err != nil {
		return err
	}

	node.children = wrap(entries)
	node.fetched = true
	node.expanded = true
	return nil
}

// Collapse folds a node. Fetched children are kept, so the next Expand
// is free.
func (t *Tree) Collapse(node *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	node.expanded = false
}

// ExpandTo unfolds every directory up to the given depth below the root,
// depth 1 being the top-level entries themselves. The first listing
// failure aborts the descent.
func (t *Tree) ExpandTo(depth int) error {
	type frame struct {
		node  *Node
		depth int
	}

	var stack util.Stack[frame]
	for _, entry := range t.Entries() {
		stack.Push(frame{node: entry, depth: 1})
	}

	for stack.Len() > 0 {
		current := stack.Pop()
		if current.depth >= depth || !current.node.expandable() {
			continue
		}

		if err := t.Expand(current.node); err != nil {
			return err
		}
		for _, child := range current.node.Children() {
			stack.Push(frame{node: child, depth: current.depth + 1})
		}
	}

	return nil
}

// Walk visits every loaded node depth first, top-level entries at depth
// 1. Children of collapsed nodes are not visited even when fetched.
func (t *Tree) Walk(visit func(node *Node, depth int)) {
	type frame struct {
		node  *Node
		depth int
	}

	entries := t.Entries()
	var stack util.Stack[frame]
	for i := len(entries) - 1; i >= 0; i-- {
		stack.Push(frame{node: entries[i], depth: 1})
	}

	for stack.Len() > 0 {
		current := stack.Pop()
		visit(current.node, current.depth)

		if !current.node.Expanded() {
			continue
		}
		children := current.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(frame{node: children[i], depth: current.depth + 1})
		}
	}
}

// Save submits one node to the user's drive. Disc images get their own
// destination directory derived from the template; anything else lands in
// the default location unrenamed. At most one save per node is in flight
// at a time.
func (t *Tree) Save(node *Node, template string) (*api.Receipt, error) {
	t.mu.Lock()
	if node.saving {
		t.mu.Unlock()
		return nil, ErrSaveInFlight
	}
	node.saving = true
	t.mu.Unlock()

	t.notifier.SaveSubmitted(node)

	var dirName string
	if node.IsISO() {
		dirName = DirName(template, node.Name)
	}

	receipt, err := t.svc.Save([]string{node.ID}, dirName)

	t.mu.Lock()
	node.saving = false
	t.mu.Unlock()

	t.notifier.SaveResolved(node, receipt, err)
	return receipt, err
}

// DirName renders a destination directory name from a template, with
// {name} standing for the sanitized stem of the entry name.
func DirName(template, name string) string {
	stem := util.SanitizeFilename(util.FileStem(name))
	return strings.ReplaceAll(template, "{name}", stem)
}
