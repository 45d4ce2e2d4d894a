package engine

import (
	"remodel-checklist/pkg/checktree"
)

// Engine tracks checked and expanded state for one checklist tree.
// The tree itself is immutable; only the two state maps change. Every item
// has a checked entry, only parents have an expanded entry.
//
// Unknown ids never fail: mutators no-op and readers return zero values.
// The UI computes ids from the same tree the engine was built from, so a
// miss can only come from a stale reference and is not worth crashing over.
type Engine struct {
	tree     checktree.Tree
	flat     []checktree.Item
	checked  map[string]bool
	expanded map[string]bool
}

// Option customizes engine construction.
type Option func(*Engine)

// WithChecked seeds initial checked state. Entries for ids outside the tree
// are ignored.
func WithChecked(initial map[string]bool) Option {
	return func(e *Engine) {
		for id, v := range initial {
			if _, ok := e.checked[id]; ok {
				e.checked[id] = v
			}
		}
	}
}

// WithExpanded seeds initial expanded state. Entries for non-parent ids are
// ignored.
func WithExpanded(initial map[string]bool) Option {
	return func(e *Engine) {
		for id, v := range initial {
			if _, ok := e.expanded[id]; ok {
				e.expanded[id] = v
			}
		}
	}
}

// New creates an engine for the given tree with everything unchecked and
// collapsed, then applies options.
func New(tree checktree.Tree, opts ...Option) *Engine {
	e := &Engine{
		tree:     tree,
		flat:     checktree.Flatten(tree),
		checked:  make(map[string]bool),
		expanded: make(map[string]bool),
	}

	for _, it := range e.flat {
		e.checked[it.ID] = false
		if checktree.HasChildren(it) {
			e.expanded[it.ID] = false
		}
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Tree returns the immutable tree the engine was built from.
func (e *Engine) Tree() checktree.Tree {
	return e.tree
}
