package engine

import (
	"math"

	"remodel-checklist/pkg/checktree"
)

// ToggleItem flips the checked state of one item and keeps the parent/child
// coupling consistent:
//
//   - toggling a parent cascades its new state down to every direct child;
//   - toggling a leaf recomputes its immediate parent as checked iff all of
//     the parent's direct children are now checked.
//
// The asymmetry is deliberate: a directly toggled parent overrides and
// redefines its children instead of being derived from them.
func (e *Engine) ToggleItem(id string) {
	item, ok := checktree.FindByID(e.tree, id)
	if !ok {
		return
	}

	newState := !e.checked[id]
	e.checked[id] = newState

	if checktree.HasChildren(item) {
		for _, childID := range checktree.ChildIDs(e.tree, id) {
			e.checked[childID] = newState
		}
		return
	}

	parent, ok := checktree.FindParentOf(e.tree, id)
	if !ok {
		return
	}

	allChecked := true
	for _, siblingID := range checktree.ChildIDs(e.tree, parent.ID) {
		if !e.checked[siblingID] {
			allChecked = false
			break
		}
	}
	e.checked[parent.ID] = allChecked
}

// ToggleExpanded flips the expanded state of a parent item. Leaves and
// unknown ids are ignored.
func (e *Engine) ToggleExpanded(id string) {
	if _, ok := e.expanded[id]; !ok {
		return
	}
	e.expanded[id] = !e.expanded[id]
}

// SetItemChecked writes one item's checked state directly, without any
// cascade. Intended for state restoration and programmatic control.
func (e *Engine) SetItemChecked(id string, checked bool) {
	if _, ok := e.checked[id]; !ok {
		return
	}
	e.checked[id] = checked
}

// Reset returns every item to unchecked and every parent to collapsed.
func (e *Engine) Reset() {
	for id := range e.checked {
		e.checked[id] = false
	}
	for id := range e.expanded {
		e.expanded[id] = false
	}
}

// IsItemChecked reports the checked state of an item, false for unknown ids.
func (e *Engine) IsItemChecked(id string) bool {
	return e.checked[id]
}

// IsItemExpanded reports the expanded state of a parent, false for leaves
// and unknown ids.
func (e *Engine) IsItemExpanded(id string) bool {
	return e.expanded[id]
}

// ItemProgress reports completion over the direct children of a parent.
// Leaves and unknown ids report zero.
func (e *Engine) ItemProgress(id string) Progress {
	item, ok := checktree.FindByID(e.tree, id)
	if !ok || !checktree.HasChildren(item) {
		return Progress{}
	}

	p := Progress{Total: len(item.SubItems)}
	for _, child := range item.SubItems {
		if e.checked[child.ID] {
			p.Completed++
		}
	}
	return p
}

// TotalProgress reports completion over the entire flattened tree, parents
// and children alike.
func (e *Engine) TotalProgress() AggregateProgress {
	p := AggregateProgress{Total: len(e.flat)}
	for _, it := range e.flat {
		if e.checked[it.ID] {
			p.Completed++
		}
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// ParentProgress reports completion restricted to items that have children.
func (e *Engine) ParentProgress() AggregateProgress {
	p := AggregateProgress{}
	for _, it := range e.flat {
		if !checktree.HasChildren(it) {
			continue
		}
		p.Total++
		if e.checked[it.ID] {
			p.Completed++
		}
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// CheckedStates returns a copy of the checked map.
func (e *Engine) CheckedStates() map[string]bool {
	out := make(map[string]bool, len(e.checked))
	for id, v := range e.checked {
		out[id] = v
	}
	return out
}

// ExpandedStates returns a copy of the expanded map.
func (e *Engine) ExpandedStates() map[string]bool {
	out := make(map[string]bool, len(e.expanded))
	for id, v := range e.expanded {
		out[id] = v
	}
	return out
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
