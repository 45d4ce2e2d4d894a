// Package checktree provides pure traversal and lookup helpers over
// hierarchical checklist trees. The tree is passed into every call rather
// than held as state, so all functions are side-effect free and restartable.
package checktree

// Flatten linearizes a tree depth-first in pre-order: each parent is emitted
// immediately before its descendants. Every node is visited exactly once
// regardless of depth.
func Flatten(tree Tree) []Item {
	out := make([]Item, 0, len(tree))
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, it := range items {
			out = append(out, it)
			if len(it.SubItems) > 0 {
				walk(it.SubItems)
			}
		}
	}
	walk(tree)
	return out
}

// HasChildren reports whether the item is a parent.
func HasChildren(item Item) bool {
	return len(item.SubItems) > 0
}

// FindByID searches the tree depth-first and returns the first item with the
// given id. The boolean is false when no item matches.
func FindByID(tree Tree, id string) (Item, bool) {
	for _, it := range tree {
		if it.ID == id {
			return it, true
		}
		if found, ok := FindByID(it.SubItems, id); ok {
			return found, ok
		}
	}
	return Item{}, false
}

// ChildIDs returns the ids of the direct children of the item with the given
// id, in order. The result is empty when the id is unknown or a leaf.
func ChildIDs(tree Tree, parentID string) []string {
	parent, ok := FindByID(tree, parentID)
	if !ok || len(parent.SubItems) == 0 {
		return nil
	}
	ids := make([]string, 0, len(parent.SubItems))
	for _, child := range parent.SubItems {
		ids = append(ids, child.ID)
	}
	return ids
}

// FindParentOf returns the immediate parent of the item with the given id.
// Top-level items and unknown ids have no parent.
func FindParentOf(tree Tree, childID string) (Item, bool) {
	for _, it := range tree {
		for _, child := range it.SubItems {
			if child.ID == childID {
				return it, true
			}
		}
		if parent, ok := FindParentOf(it.SubItems, childID); ok {
			return parent, ok
		}
	}
	return Item{}, false
}

// DescendantIDs collects every id in the subtree below the given parent,
// excluding the parent itself, in depth-first order.
func DescendantIDs(tree Tree, parentID string) []string {
	parent, ok := FindByID(tree, parentID)
	if !ok {
		return nil
	}
	var ids []string
	for _, it := range Flatten(parent.SubItems) {
		ids = append(ids, it.ID)
	}
	return ids
}

// ValidateUniqueIDs checks the tree-wide uniqueness invariant. Every id value
// that occurs more than once anywhere in the tree is reported exactly once.
func ValidateUniqueIDs(tree Tree) Validation {
	seen := make(map[string]int)
	order := make([]string, 0)
	for _, it := range Flatten(tree) {
		if seen[it.ID] == 0 {
			order = append(order, it.ID)
		}
		seen[it.ID]++
	}

	var dups []string
	for _, id := range order {
		if seen[id] > 1 {
			dups = append(dups, id)
		}
	}

	return Validation{
		IsValid:    len(dups) == 0,
		Duplicates: dups,
	}
}
